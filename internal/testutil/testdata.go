package testutil

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// LoadJSON loads a JSON fixture from testdata relative to the repo root.
func LoadJSON(t *testing.T, rel string, v any) {
	t.Helper()
	data := readTestdata(t, rel)
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("decode %s: %v", rel, err)
	}
}

// LoadHex returns a trimmed hex string from testdata relative path.
func LoadHex(t *testing.T, rel string) string {
	t.Helper()
	data := readTestdata(t, rel)
	return strings.TrimSpace(string(data))
}

// LoadPayload decodes a hex fixture into raw payload bytes.
func LoadPayload(t *testing.T, rel string) []byte {
	t.Helper()
	payload, err := hex.DecodeString(LoadHex(t, rel))
	if err != nil {
		t.Fatalf("hex decode %s: %v", rel, err)
	}
	return payload
}

// Fixtures lists the base names of all files with the given extension in a
// testdata subdirectory.
func Fixtures(t *testing.T, dir, ext string) []string {
	t.Helper()
	for _, root := range candidates(dir) {
		matches, err := filepath.Glob(filepath.Join(root, "*"+ext))
		if err != nil || len(matches) == 0 {
			continue
		}
		names := make([]string, 0, len(matches))
		for _, m := range matches {
			names = append(names, strings.TrimSuffix(filepath.Base(m), ext))
		}
		return names
	}
	t.Fatalf("no %s fixtures under testdata/%s", ext, dir)
	return nil
}

func readTestdata(t *testing.T, rel string) []byte {
	t.Helper()
	for _, path := range candidates(rel) {
		if data, err := os.ReadFile(path); err == nil {
			return data
		}
	}
	t.Fatalf("unable to locate testdata file %s", rel)
	return nil
}

func candidates(rel string) []string {
	return []string{
		filepath.Join("testdata", rel),
		filepath.Join("..", "testdata", rel),
		filepath.Join("..", "..", "testdata", rel),
	}
}
