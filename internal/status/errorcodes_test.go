package status

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupKnownCodes(t *testing.T) {
	want := map[string]string{
		"00": "No error",
		"04": "Power low",
		"08": "Permanent error",
		"10": "Empty spool + temporary error",
		"14": "Power low + temporary error + empty spool",
		"18": "Empty spool + temporary error + permanent error",
		"1c": "Power low + permanent error + empty spool + temporary error",
	}
	for code, desc := range want {
		got := Lookup(code)
		require.Equal(t, code, got.Code)
		require.Equal(t, desc, got.Description)
		require.True(t, Known(code))
	}
}

func TestLookupIsTotal(t *testing.T) {
	known := map[string]bool{"00": true, "04": true, "08": true, "10": true, "14": true, "18": true, "1c": true}
	for i := 0; i < 256; i++ {
		code := fmt.Sprintf("%02x", i)
		got := Describe(code)
		if known[code] {
			require.NotEqual(t, Unknown, got, code)
			continue
		}
		require.Equal(t, Unknown, got, code)
	}
}

func TestLookupUppercase(t *testing.T) {
	got := Lookup("1C")
	require.Equal(t, "1C", got.Code)
	require.Equal(t, "Power low + permanent error + empty spool + temporary error", got.Description)
}

func TestErrorCodeString(t *testing.T) {
	require.Equal(t, "04 (Power low)", Lookup("04").String())
}
