package status

import "strings"

// ErrorCode is the meter error byte as transmitted together with its
// human-readable meaning.
type ErrorCode struct {
	Code        string `json:"code" msgpack:"code"`
	Description string `json:"description" msgpack:"description"`
}

// String renders the code as "<code> (<description>)".
func (e ErrorCode) String() string {
	return e.Code + " (" + e.Description + ")"
}

// Unknown is reported for codes missing from the table. It is a valid result,
// not a decoding failure.
const Unknown = "Unknown"

var errorCodeDefs = []struct {
	code        string
	description string
}{
	{"00", "No error"},
	{"04", "Power low"},
	{"08", "Permanent error"},
	{"10", "Empty spool + temporary error"},
	{"14", "Power low + temporary error + empty spool"},
	{"18", "Empty spool + temporary error + permanent error"},
	{"1c", "Power low + permanent error + empty spool + temporary error"},
}

// Describe maps a two-digit hex code to its description.
func Describe(code string) string {
	lower := strings.ToLower(code)
	for _, def := range errorCodeDefs {
		if def.code == lower {
			return def.description
		}
	}
	return Unknown
}

// Lookup returns the code together with its description. The code is kept as
// given.
func Lookup(code string) ErrorCode {
	return ErrorCode{Code: code, Description: Describe(code)}
}

// Known reports whether code appears in the error table.
func Known(code string) bool {
	return Describe(code) != Unknown
}
