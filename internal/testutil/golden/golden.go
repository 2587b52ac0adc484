// Package golden compares rendered output against files in testdata.
package golden

import (
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Update rewrites golden files instead of comparing: go test ./... -update.
var Update = flag.Bool("update", false, "update golden files")

// TestdataDir returns the testdata directory next to the calling test file.
func TestdataDir(t *testing.T) string {
	t.Helper()

	_, filename, _, ok := runtime.Caller(1)
	if !ok {
		t.Fatalf("runtime.Caller failed")
	}

	return filepath.Join(filepath.Dir(filename), "testdata")
}

// Read returns the golden content, or "" when the file does not exist.
func Read(t *testing.T, testdataDir, name string) string {
	t.Helper()
	safeName(t, name)

	path := filepath.Join(testdataDir, name+".golden")

	data, err := os.ReadFile(path) //nolint:gosec // testdata path controlled by test
	if err != nil {
		if os.IsNotExist(err) {
			return ""
		}

		t.Fatalf("read golden %s: %v", path, err)
	}

	return string(data)
}

// Write stores content as the golden file.
func Write(t *testing.T, testdataDir, name, content string) {
	t.Helper()
	safeName(t, name)

	if err := os.MkdirAll(testdataDir, 0o750); err != nil {
		t.Fatalf("mkdir testdata: %v", err)
	}

	path := filepath.Join(testdataDir, name+".golden")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write golden %s: %v", path, err)
	}
}

// Assert compares got with the golden file, or rewrites it under -update.
func Assert(t *testing.T, testdataDir, name, got string) {
	t.Helper()

	if *Update {
		Write(t, testdataDir, name, got)
		return
	}

	assert.Equal(t, Read(t, testdataDir, name), got, "golden %s (run with -update to refresh)", name)
}

func safeName(t *testing.T, name string) {
	t.Helper()

	if strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		t.Fatalf("invalid golden name %q", name)
	}
}
