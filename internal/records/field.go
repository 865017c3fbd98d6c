package records

import (
	"fmt"

	"github.com/adamh-utopi/Payload-decoders/internal/codec"
	"github.com/adamh-utopi/Payload-decoders/internal/status"
)

// Kind selects how a field's hex digits turn into a value.
type Kind int

const (
	// KindUint is a little-endian unsigned integer, emitted as uint64.
	KindUint Kind = iota
	// KindScaled is a little-endian unsigned integer multiplied by Scale and
	// rounded to Precision decimals, emitted as float64.
	KindScaled
	// KindErrorCode is a single byte read as-is and resolved through the
	// error-code table, emitted as status.ErrorCode.
	KindErrorCode
)

func (k Kind) String() string {
	switch k {
	case KindUint:
		return "uint"
	case KindScaled:
		return "scaled"
	case KindErrorCode:
		return "errorcode"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Field describes one value inside a payload. Start and End are offsets into
// the hex string (two digits per byte), End exclusive.
type Field struct {
	Key       string
	Start     int
	End       int
	Kind      Kind
	Scale     float64
	Precision int
}

// Uint declares a plain little-endian integer field.
func Uint(key string, start, end int) Field {
	return Field{Key: key, Start: start, End: end, Kind: KindUint, Scale: 1}
}

// Scaled declares a little-endian field multiplied by scale and rounded to
// precision decimals.
func Scaled(key string, start, end int, scale float64, precision int) Field {
	return Field{Key: key, Start: start, End: end, Kind: KindScaled, Scale: scale, Precision: precision}
}

// ErrorCode declares the one-byte error status field.
func ErrorCode(key string, start int) Field {
	return Field{Key: key, Start: start, End: start + 2, Kind: KindErrorCode}
}

// Value decodes the field from a full hex payload.
func (f Field) Value(hexPayload string) (any, error) {
	if f.Start < 0 || f.End > len(hexPayload) || f.Start >= f.End {
		return nil, fmt.Errorf("field %s: range [%d:%d] outside payload of %d digits", f.Key, f.Start, f.End, len(hexPayload))
	}
	slice := hexPayload[f.Start:f.End]
	if f.Kind == KindErrorCode {
		return status.Lookup(slice), nil
	}
	be, err := codec.ReverseHex(slice)
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", f.Key, err)
	}
	raw, err := codec.HexToDecimal(be)
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", f.Key, err)
	}
	switch f.Kind {
	case KindUint:
		return raw, nil
	case KindScaled:
		return codec.RoundTo(float64(raw)*f.Scale, f.Precision), nil
	default:
		return nil, fmt.Errorf("field %s: unsupported kind %s", f.Key, f.Kind)
	}
}

// Extract decodes every field in order into a new map.
func Extract(hexPayload string, fields []Field) (map[string]any, error) {
	out := make(map[string]any, len(fields)+1)
	for _, f := range fields {
		v, err := f.Value(hexPayload)
		if err != nil {
			return nil, err
		}
		out[f.Key] = v
	}
	return out, nil
}

// Span returns the number of hex digits covered by fields, assuming they are
// contiguous from offset zero.
func Span(fields []Field) int {
	end := 0
	for _, f := range fields {
		if f.End > end {
			end = f.End
		}
	}
	return end
}
