package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testEnvelope = `{
  "input": "Show.S01E02.My.Episode.mkv",
  "markers": [{"name": "path", "start": 0, "end": 26}],
  "matches": [
    {"tag": "title", "tags": ["title"], "value": "Show", "start": 0, "end": 4},
    {"tag": "season", "value": "1", "start": 5, "end": 8},
    {"tag": "episodeNumber", "value": "2", "start": 8, "end": 11}
  ]
}`

// writeTestConfig writes a config file with a private cache directory and
// quiet logging, returning its path.
func writeTestConfig(t *testing.T, cacheEnabled bool) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := fmt.Sprintf(
		"[cache]\nenabled = %v\ndir = %q\n\n[logging]\nformat = \"text\"\nlevel = \"error\"\n",
		cacheEnabled,
		filepath.Join(dir, "cache"),
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func runCLI(t *testing.T, args []string, configPath, stdin string) (string, string, error) {
	t.Helper()

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if stdin != "" {
		cmd.SetIn(strings.NewReader(stdin))
	}
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
