package qalcosonic

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/adamh-utopi/Payload-decoders/internal/status"
)

// ErrorCode is the decoded meter error status.
type ErrorCode = status.ErrorCode

// FieldSet offers typed helpers on top of a decoded record.
type FieldSet struct {
	data map[string]any
}

// FieldSet returns a FieldSet wrapper for the result's fields.
func (r Result) FieldSet() FieldSet {
	return FieldSet{data: r.Fields}
}

// FieldSet returns a FieldSet wrapper for the output's data.
func (o Output) FieldSet() FieldSet {
	return FieldSet{data: o.Data}
}

// Map exposes the underlying map for callers that still need raw access.
func (fs FieldSet) Map() map[string]any {
	return fs.data
}

// Raw returns the stored value without conversions.
func (fs FieldSet) Raw(key string) (any, bool) {
	if fs.data == nil {
		return nil, false
	}
	v, ok := fs.data[key]
	return v, ok
}

// PayloadType returns the layout tag of the record.
func (fs FieldSet) PayloadType() (string, error) {
	return fs.String("payloadtype")
}

// Float returns the field coerced to float64.
func (fs FieldSet) Float(key string) (float64, error) {
	v, ok := fs.Raw(key)
	if !ok {
		return 0, fmt.Errorf("field %q missing", key)
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("field %q is not numeric: %w", key, err)
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, fmt.Errorf("field %q is not numeric: %w", key, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("field %q has unsupported type %T", key, v)
	}
}

// Uint returns the field coerced to uint64. Negative or fractional values are
// rejected.
func (fs FieldSet) Uint(key string) (uint64, error) {
	v, ok := fs.Raw(key)
	if !ok {
		return 0, fmt.Errorf("field %q missing", key)
	}
	switch n := v.(type) {
	case uint64:
		return n, nil
	case uint32:
		return uint64(n), nil
	case int:
		if n < 0 {
			return 0, fmt.Errorf("field %q is negative", key)
		}
		return uint64(n), nil
	case int64:
		if n < 0 {
			return 0, fmt.Errorf("field %q is negative", key)
		}
		return uint64(n), nil
	case float64:
		if n < 0 || n != float64(uint64(n)) {
			return 0, fmt.Errorf("field %q is not an unsigned integer: %v", key, n)
		}
		return uint64(n), nil
	case json.Number:
		u, err := strconv.ParseUint(n.String(), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("field %q is not an unsigned integer: %w", key, err)
		}
		return u, nil
	case string:
		u, err := strconv.ParseUint(n, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("field %q is not an unsigned integer: %w", key, err)
		}
		return u, nil
	default:
		return 0, fmt.Errorf("field %q has unsupported type %T", key, v)
	}
}

// String returns the field as a string.
func (fs FieldSet) String(key string) (string, error) {
	v, ok := fs.Raw(key)
	if !ok {
		return "", fmt.Errorf("field %q missing", key)
	}
	switch s := v.(type) {
	case string:
		return s, nil
	case fmt.Stringer:
		return s.String(), nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

// ErrorCode returns the meter error status. Records decoded from JSON carry
// it as a {code, description} object.
func (fs FieldSet) ErrorCode() (ErrorCode, error) {
	const key = "errorcodes"
	v, ok := fs.Raw(key)
	if !ok {
		return ErrorCode{}, fmt.Errorf("field %q missing", key)
	}
	switch ec := v.(type) {
	case ErrorCode:
		return ec, nil
	case *ErrorCode:
		return *ec, nil
	case map[string]any:
		code, _ := ec["code"].(string)
		desc, _ := ec["description"].(string)
		if code == "" {
			return ErrorCode{}, fmt.Errorf("field %q has no code", key)
		}
		if desc == "" {
			desc = status.Describe(code)
		}
		return ErrorCode{Code: code, Description: desc}, nil
	case map[interface{}]interface{}:
		converted := make(map[string]any, len(ec))
		for k, val := range ec {
			if ks, ok := k.(string); ok {
				converted[ks] = val
			}
		}
		return FieldSet{data: map[string]any{key: converted}}.ErrorCode()
	default:
		return ErrorCode{}, fmt.Errorf("field %q has unsupported type %T", key, v)
	}
}

// Time interprets the field as seconds since the Unix epoch.
func (fs FieldSet) Time(key string) (time.Time, error) {
	secs, err := fs.Uint(key)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(int64(secs), 0).UTC(), nil
}
