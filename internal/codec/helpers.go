package codec

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned when a primitive receives text that is not a
// sequence of hex digits.
var ErrInvalidHex = errors.New("Invalid hex string input")

// ReverseHex reinterprets a little-endian hex slice as big-endian by reversing
// the order of its two-digit byte groups.
func ReverseHex(s string) (string, error) {
	if !isHex(s) || len(s)%2 != 0 {
		return "", ErrInvalidHex
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := len(s) - 2; i >= 0; i -= 2 {
		b.WriteString(s[i : i+2])
	}
	return b.String(), nil
}

// HexToDecimal parses s as an unsigned base-16 integer.
func HexToDecimal(s string) (uint64, error) {
	if !isHex(s) {
		return 0, ErrInvalidHex
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, errors.Join(ErrInvalidHex, err)
	}
	return v, nil
}

// Scale multiplies v by scale. Any scale other than 1 rounds the product to
// three decimal places.
func Scale(v uint64, scale float64) float64 {
	if scale == 1 {
		return float64(v)
	}
	return RoundTo(float64(v)*scale, 3)
}

// RoundTo rounds value to the given number of decimal places.
func RoundTo(value float64, decimals int) float64 {
	pow := math.Pow10(decimals)
	return math.Round(value*pow) / pow
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
