package qalcosonic

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

// Uplink is a received radio payload with its LoRaWAN port. A nil FPort or a
// nil Bytes slice means the value was absent.
type Uplink struct {
	FPort *int
	Bytes []byte
}

// NewUplink builds an uplink with both values present.
func NewUplink(port int, payload []byte) Uplink {
	if payload == nil {
		payload = []byte{}
	}
	return Uplink{FPort: &port, Bytes: payload}
}

// UplinkFromHex builds an uplink from a hex payload. Whitespace, '|' and '_'
// separators and a leading 0x are ignored.
func UplinkFromHex(port int, raw string) (Uplink, error) {
	data, err := decodeHex(raw)
	if err != nil {
		return Uplink{}, err
	}
	return NewUplink(port, data), nil
}

type uplinkJSON struct {
	FPort *int            `json:"fPort"`
	Bytes json.RawMessage `json:"bytes"`
}

// UnmarshalJSON accepts {"fPort": 100, "bytes": [..]}. bytes may also be a
// base64 string.
func (u *Uplink) UnmarshalJSON(data []byte) error {
	var wire uplinkJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	u.FPort = wire.FPort
	u.Bytes = nil
	raw := bytes.TrimSpace(wire.Bytes)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	switch raw[0] {
	case '[':
		var values []int
		if err := json.Unmarshal(raw, &values); err != nil {
			return fmt.Errorf("decode bytes: %w", err)
		}
		out := make([]byte, len(values))
		for i, v := range values {
			if v < 0 || v > 0xFF {
				return fmt.Errorf("decode bytes: value %d at index %d is not a byte", v, i)
			}
			out[i] = byte(v)
		}
		u.Bytes = out
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return fmt.Errorf("decode bytes: %w", err)
		}
		out, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return fmt.Errorf("decode bytes: %w", err)
		}
		u.Bytes = out
	default:
		return fmt.Errorf("decode bytes: unsupported JSON value %s", raw)
	}
	return nil
}

// MarshalJSON renders bytes as an array of integers.
func (u Uplink) MarshalJSON() ([]byte, error) {
	out := struct {
		FPort *int  `json:"fPort"`
		Bytes []int `json:"bytes"`
	}{FPort: u.FPort}
	if u.Bytes != nil {
		out.Bytes = make([]int, len(u.Bytes))
		for i, b := range u.Bytes {
			out.Bytes[i] = int(b)
		}
	}
	return json.Marshal(out)
}

func decodeHex(input string) ([]byte, error) {
	clean := stripWhitespace(input)
	if strings.HasPrefix(clean, "0x") || strings.HasPrefix(clean, "0X") {
		clean = clean[2:]
	}
	if len(clean)%2 != 0 {
		return nil, fmt.Errorf("hex payload must contain an even number of digits, got %d", len(clean))
	}
	decoded := make([]byte, len(clean)/2)
	if _, err := hex.Decode(decoded, []byte(clean)); err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return decoded, nil
}

func stripWhitespace(s string) string {
	builder := strings.Builder{}
	builder.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '|' || r == '_' {
			continue
		}
		builder.WriteRune(r)
	}
	return builder.String()
}
