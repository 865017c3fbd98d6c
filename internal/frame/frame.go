package frame

import (
	"encoding/hex"
	"errors"
)

const (
	// PortMetering carries meter readings.
	PortMetering = 100
	// PortConfiguration carries device configuration acknowledgements.
	PortConfiguration = 101
)

var (
	ErrNullPort      = errors.New("Unknown or null fPort value")
	ErrConfiguration = errors.New("Configuration message type.")
	ErrInvalidUplink = errors.New("Invalid uplink message.")
	ErrEmptyBytes    = errors.New("Empty hex bytes field")
)

// Frame is a validated metering uplink together with its hex working form.
type Frame struct {
	Port   int
	Raw    []byte
	Hex    string
	Length int
}

// Parse validates the uplink envelope and normalizes the payload to lowercase
// hex. A nil port or nil payload is treated as absent.
func Parse(port *int, raw []byte) (Frame, error) {
	if port == nil {
		return Frame{}, ErrNullPort
	}
	switch *port {
	case PortMetering:
	case PortConfiguration:
		return Frame{}, ErrConfiguration
	default:
		return Frame{}, ErrInvalidUplink
	}
	if raw == nil {
		return Frame{}, ErrEmptyBytes
	}
	return Frame{
		Port:   *port,
		Raw:    raw,
		Hex:    hex.EncodeToString(raw),
		Length: len(raw),
	}, nil
}

// Slice returns the hex digits in [start, end).
func (f Frame) Slice(start, end int) string {
	return f.Hex[start:end]
}
