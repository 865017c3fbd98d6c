package driver

import (
	"fmt"

	"github.com/adamh-utopi/Payload-decoders/internal/frame"
	"github.com/adamh-utopi/Payload-decoders/internal/records"
)

// Variant identifies one of the fixed Qalcosonic payload layouts. The layout is
// implied by the payload length alone.
type Variant int

const (
	VariantUnknown Variant = iota
	VariantBasicLT
	VariantBasicWithHeat
	VariantBasicWithCool
	VariantNordic
	VariantNordicWithCool
)

// Payload lengths in bytes.
const (
	LengthBasicLT        = 35
	LengthBasicWithHeat  = 41
	LengthBasicWithCool  = 45
	LengthNordic         = 48
	LengthNordicWithCool = 30
)

// Driver decodes one payload layout.
type Driver struct {
	Variant     Variant
	PayloadType string
	Length      int
	Fields      []records.Field
}

// UnknownLengthError reports a payload whose length matches no layout.
type UnknownLengthError struct {
	Length int
}

func (e *UnknownLengthError) Error() string {
	return fmt.Sprintf("Unknown payload length/type: %d bytes", e.Length)
}

// Lookup returns the driver for a payload of the given length.
func Lookup(length int) (Driver, error) {
	switch length {
	case LengthBasicLT:
		return basicLT, nil
	case LengthBasicWithHeat:
		return basicWithHeat, nil
	case LengthBasicWithCool:
		return basicWithCool, nil
	case LengthNordic:
		return nordic, nil
	case LengthNordicWithCool:
		return nordicWithCool, nil
	default:
		return Driver{}, &UnknownLengthError{Length: length}
	}
}

// All returns every known driver ordered by variant.
func All() []Driver {
	return []Driver{basicLT, basicWithHeat, basicWithCool, nordic, nordicWithCool}
}

// String returns the variant identifier.
func (v Variant) String() string {
	switch v {
	case VariantBasicLT:
		return "BasicLT"
	case VariantBasicWithHeat:
		return "BasicWithHeat"
	case VariantBasicWithCool:
		return "BasicWithCool"
	case VariantNordic:
		return "Nordic"
	case VariantNordicWithCool:
		return "NordicWithCool"
	default:
		return "unknown"
	}
}

// Name returns the canonical driver name.
func (d Driver) Name() string { return d.Variant.String() }

// Process decodes the frame into a flat record tagged with payloadtype.
func (d Driver) Process(f *frame.Frame) (map[string]any, error) {
	if f.Length != d.Length {
		return nil, fmt.Errorf("%s expects %d bytes, got %d", d.Name(), d.Length, f.Length)
	}
	fields, err := records.Extract(f.Hex, d.Fields)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.Name(), err)
	}
	fields[KeyPayloadType] = d.PayloadType
	return fields, nil
}
