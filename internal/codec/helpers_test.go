package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReverseHex(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"00000001", "01000000"},
		{"a1b2c3", "c3b2a1"},
		{"ff", "ff"},
		{"0102030405060708", "0807060504030201"},
	}
	for _, tc := range cases {
		got, err := ReverseHex(tc.in)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}
}

func TestReverseHexRoundTrip(t *testing.T) {
	for _, s := range []string{"00", "1234", "deadbeef", "0a0B0c0D0e", "ffeeddccbbaa99887766"} {
		once, err := ReverseHex(s)
		require.NoError(t, err)
		twice, err := ReverseHex(once)
		require.NoError(t, err)
		require.Equal(t, s, twice)
	}
}

func TestReverseHexRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "zz", "12 4", "0x12", "123"} {
		_, err := ReverseHex(s)
		require.ErrorIs(t, err, ErrInvalidHex, "input %q", s)
	}
}

func TestHexToDecimal(t *testing.T) {
	v, err := HexToDecimal("01000000")
	require.NoError(t, err)
	require.Equal(t, uint64(16777216), v)

	v, err = HexToDecimal("FF")
	require.NoError(t, err)
	require.Equal(t, uint64(255), v)

	_, err = HexToDecimal("12g4")
	require.True(t, errors.Is(err, ErrInvalidHex))

	_, err = HexToDecimal("")
	require.ErrorIs(t, err, ErrInvalidHex)

	_, err = HexToDecimal("1ffffffffffffffff")
	require.ErrorIs(t, err, ErrInvalidHex)
}

func TestScale(t *testing.T) {
	require.Equal(t, float64(1234), Scale(1234, 1))
	require.Equal(t, 23.45, Scale(2345, 0.01))
	require.Equal(t, 1.235, Scale(1235, 0.001))
	require.Equal(t, 0.0, Scale(0, 0.01))
	require.Equal(t, 0.001, Scale(1, 0.001))
}

func TestRoundTo(t *testing.T) {
	require.Equal(t, 12.3, RoundTo(12.34, 1))
	require.Equal(t, 12.4, RoundTo(12.35000001, 1))
	require.Equal(t, 0.123, RoundTo(0.1234, 3))
	require.Equal(t, 7.0, RoundTo(7, 2))
}
