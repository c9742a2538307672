package testsupport

import (
	"os"
	"testing"
)

// LoadFixture reads a test fixture from disk.
func LoadFixture(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// MustLoadFixture reads a fixture and fails the test when it is missing.
func MustLoadFixture(tb testing.TB, path string) []byte {
	tb.Helper()
	data, err := LoadFixture(path)
	if err != nil {
		tb.Fatalf("read fixture %s: %v", path, err)
	}
	return data
}
