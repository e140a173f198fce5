package main

import (
	"testing"

	"titlekit/internal/testsupport"
)

func TestRunCommandEmitsEpisodeTitle(t *testing.T) {
	cfgPath := writeTestConfig(t, false)
	specPath := testsupport.WriteEnvelope(t, testEnvelope)

	out, _, err := runCLI(t, []string{"run", specPath, "--json"}, cfgPath, "")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	requireContains(t, out, `"tag": "episodeTitle"`)
	requireContains(t, out, `"value": "My Episode"`)
	requireContains(t, out, `"input": "Show.S01E02.My.Episode.mkv"`)
}

func TestRunCommandReadsStdin(t *testing.T) {
	cfgPath := writeTestConfig(t, false)

	out, _, err := runCLI(t, []string{"run", "-", "--json"}, cfgPath, testEnvelope)
	if err != nil {
		t.Fatalf("run from stdin: %v", err)
	}
	requireContains(t, out, `"tag": "episodeTitle"`)
}

func TestRunCommandRejectsBlankEnvelope(t *testing.T) {
	cfgPath := writeTestConfig(t, false)

	_, _, err := runCLI(t, []string{"run", "-"}, cfgPath, "   \n")
	if err == nil {
		t.Fatal("expected validation error for blank envelope")
	}
}

func TestRunCommandCachesResult(t *testing.T) {
	cfgPath := writeTestConfig(t, true)
	specPath := testsupport.WriteEnvelope(t, testEnvelope)

	first, _, err := runCLI(t, []string{"run", specPath, "--json"}, cfgPath, "")
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, _, err := runCLI(t, []string{"run", specPath, "--json"}, cfgPath, "")
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if first != second {
		t.Fatalf("cached output diverged:\n%s\nvs\n%s", first, second)
	}

	out, _, err := runCLI(t, []string{"cache", "stats"}, cfgPath, "")
	if err != nil {
		t.Fatalf("cache stats: %v", err)
	}
	requireContains(t, out, "Entries: 1")
}

func TestRunCommandNoCacheBypassesStore(t *testing.T) {
	cfgPath := writeTestConfig(t, true)
	specPath := testsupport.WriteEnvelope(t, testEnvelope)

	if _, _, err := runCLI(t, []string{"run", specPath, "--json", "--no-cache"}, cfgPath, ""); err != nil {
		t.Fatalf("run: %v", err)
	}

	out, _, err := runCLI(t, []string{"cache", "stats"}, cfgPath, "")
	if err != nil {
		t.Fatalf("cache stats: %v", err)
	}
	requireContains(t, out, "Entries: 0")
}
