package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteEnvelope writes a span envelope JSON document to a temp file and
// returns its path.
func WriteEnvelope(t testing.TB, raw string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "envelope.json")
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write envelope: %v", err)
	}
	return path
}
