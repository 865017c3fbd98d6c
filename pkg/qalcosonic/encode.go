package qalcosonic

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/vmihailenco/msgpack.v2"
)

// Supported output formats.
const (
	FormatJSON    = "json"
	FormatText    = "text"
	FormatMsgpack = "msgpack"
)

// ParseFormat normalizes a format name. An empty name selects JSON.
func ParseFormat(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatText:
		return FormatText, nil
	case FormatMsgpack:
		return FormatMsgpack, nil
	default:
		return "", fmt.Errorf("unsupported output format %q", name)
	}
}

// Encode renders v in the requested format.
func Encode(v any, format string) ([]byte, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	switch f {
	case FormatText:
		return json.MarshalIndent(v, "", "  ")
	case FormatMsgpack:
		return msgpack.Marshal(v)
	default:
		return json.Marshal(v)
	}
}

// DecodeOutput parses an Output previously produced by Encode.
func DecodeOutput(data []byte, format string) (Output, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return Output{}, err
	}
	var out Output
	switch f {
	case FormatMsgpack:
		err = msgpack.Unmarshal(data, &out)
	default:
		err = json.Unmarshal(data, &out)
	}
	if err != nil {
		return Output{}, fmt.Errorf("decode %s output: %w", f, err)
	}
	return out, nil
}
