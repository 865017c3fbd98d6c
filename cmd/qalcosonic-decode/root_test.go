package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamh-utopi/Payload-decoders/pkg/qalcosonic"
)

const basicLTHex = "6B1F59651C325106003A6A0A00C7C500008B12004B2200FA075B191953090090ED0000"

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDecodeArgument(t *testing.T) {
	out, err := run(t, "", basicLTHex)
	require.NoError(t, err)
	assert.Contains(t, out, `"payloadtype":"BasicLT"`)
	assert.Contains(t, out, `"timestamp":1700339563`)
}

func TestDecodeArgumentWrongPort(t *testing.T) {
	out, err := run(t, "", "--port", "5", basicLTHex)
	require.NoError(t, err)
	assert.JSONEq(t, `{"errors": ["Invalid uplink message."]}`, out)
}

func TestDecodeArgumentBadHex(t *testing.T) {
	_, err := run(t, "", "zz")
	assert.Error(t, err)
}

func TestInteractiveMixedInput(t *testing.T) {
	stdin := strings.Join([]string{
		basicLTHex,
		"",
		`{"fPort": 101, "bytes": [1, 2, 3]}`,
		"not hex",
		`{"fPort": 100, "bytes": "AAAA"}`,
	}, "\n")
	out, err := run(t, stdin)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], `"payloadtype":"BasicLT"`)
	assert.JSONEq(t, `{"errors": ["Configuration message type."]}`, lines[1])
	assert.JSONEq(t, `{"errors": ["Unknown payload length/type: 3 bytes"]}`, lines[2])
}

func TestMsgpackFormat(t *testing.T) {
	out, err := run(t, "", "--format", "msgpack", basicLTHex)
	require.NoError(t, err)
	decoded, err := qalcosonic.DecodeOutput([]byte(out), qalcosonic.FormatMsgpack)
	require.NoError(t, err)
	pt, err := decoded.FieldSet().PayloadType()
	require.NoError(t, err)
	assert.Equal(t, "BasicLT", pt)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	cfg := "port: 101\nformat: text\nlog_level: ERROR\nlog_file_path: " + filepath.Join(dir, "decode.log") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o600))

	out, err := run(t, "", "--config", path, basicLTHex)
	require.NoError(t, err)
	assert.Contains(t, out, "\"errors\": [\n")
	assert.Contains(t, out, "Configuration message type.")

	out, err = run(t, "", "--config", path, "--port", "100", basicLTHex)
	require.NoError(t, err)
	assert.Contains(t, out, `"payloadtype": "BasicLT"`)
}

func TestUnsupportedFormat(t *testing.T) {
	_, err := run(t, "", "--format", "xml", basicLTHex)
	assert.Error(t, err)
}
