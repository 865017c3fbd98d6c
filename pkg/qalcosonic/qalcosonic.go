// Package qalcosonic decodes LoRaWAN uplinks from Axioma Qalcosonic E3/E4
// heat and water meters.
package qalcosonic

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/adamh-utopi/Payload-decoders/internal/codec"
	"github.com/adamh-utopi/Payload-decoders/internal/driver"
	"github.com/adamh-utopi/Payload-decoders/internal/frame"
)

// Ports used by the meter.
const (
	PortMetering      = frame.PortMetering
	PortConfiguration = frame.PortConfiguration
)

// Validation errors returned by Decode. Their messages are part of the
// uplink-decoder contract and must not change.
var (
	ErrNullPort      = frame.ErrNullPort
	ErrConfiguration = frame.ErrConfiguration
	ErrInvalidUplink = frame.ErrInvalidUplink
	ErrEmptyBytes    = frame.ErrEmptyBytes
	ErrInvalidHex    = codec.ErrInvalidHex
)

// UnknownLengthError reports a payload whose length matches no known layout.
type UnknownLengthError = driver.UnknownLengthError

// Result captures the outcome of Decode.
type Result struct {
	Variant     string
	PayloadType string
	ByteCount   int
	RawHex      string
	Fields      map[string]any
}

// String renders a human-readable representation of the result.
func (r Result) String() string {
	summary := map[string]any{
		"variant":    r.Variant,
		"byte_count": r.ByteCount,
		"raw_hex":    strings.ToUpper(r.RawHex),
	}
	if len(r.Fields) > 0 {
		summary["fields"] = r.Fields
	}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Sprintf("variant: %s bytes:%d raw:%s (marshal error: %v)", r.Variant, r.ByteCount, r.RawHex, err)
	}
	return string(data)
}

// Output mirrors the result object expected by LoRaWAN network-server decode
// hooks. Exactly one of Data and Errors is populated.
type Output struct {
	Data     map[string]any `json:"data,omitempty" msgpack:"data,omitempty"`
	Errors   []string       `json:"errors,omitempty" msgpack:"errors,omitempty"`
	Warnings []string       `json:"warnings,omitempty" msgpack:"warnings,omitempty"`
}

// OK reports whether the output carries decoded data.
func (o Output) OK() bool {
	return len(o.Errors) == 0 && o.Data != nil
}

// Decode validates the uplink, selects the layout by payload length and
// returns the decoded record.
func Decode(in Uplink) (Result, error) {
	f, err := frame.Parse(in.FPort, in.Bytes)
	if err != nil {
		return Result{}, err
	}
	result := Result{
		Variant:   "unknown",
		ByteCount: f.Length,
		RawHex:    f.Hex,
	}
	drv, err := driver.Lookup(f.Length)
	if err != nil {
		return result, err
	}
	fields, err := drv.Process(&f)
	if err != nil {
		return result, err
	}
	result.Variant = drv.Name()
	result.PayloadType = drv.PayloadType
	result.Fields = fields
	return result, nil
}

// DecodeUplink is the network-server facing form of Decode: failures are
// reported as error strings instead of a Go error.
func DecodeUplink(in Uplink) Output {
	result, err := Decode(in)
	if err != nil {
		return Output{Errors: []string{err.Error()}}
	}
	return Output{Data: result.Fields}
}

// HexToDecimal converts a string of hex digits to an unsigned integer.
func HexToDecimal(s string) (uint64, error) {
	return codec.HexToDecimal(s)
}
