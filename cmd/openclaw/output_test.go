package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"openclaw/internal/normalizer"
)

func testSuggestion(t *testing.T, intent string) *normalizer.Suggestion {
	t.Helper()
	s, err := normalizer.New(nil).Normalize(context.Background(), intent)
	if err != nil {
		t.Fatalf("Normalize(%q): %v", intent, err)
	}
	return s
}

func TestRenderSuggestionText(t *testing.T) {
	s := testSuggestion(t, "rollback the deploy")

	out, err := renderSuggestionText(s)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"Raw Intent: rollback the deploy",
		"Method: pattern_matching",
		"Confidence: 0.87",
		"Tools: C50",
		"Canonical Spec:",
		`"citizen": "RollbackGuardian"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteBatch_JSONArray(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	results := []*normalizer.Suggestion{
		testSuggestion(t, "rollback the deploy"),
		testSuggestion(t, "run a consensus round"),
	}
	if err := writeBatch(results, "json", path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded []normalizer.Suggestion
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not a JSON array: %v", err)
	}
	if len(decoded) != 2 {
		t.Errorf("expected 2 results, got %d", len(decoded))
	}
}

func TestWriteBatch_TextSummary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	results := []*normalizer.Suggestion{testSuggestion(t, "rollback")}
	if err := writeBatch(results, "text", path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Processed 1 intents") {
		t.Errorf("unexpected text summary: %s", data)
	}
}

func TestWriteSingle_UnwritableOutput(t *testing.T) {
	s := testSuggestion(t, "rollback")
	err := writeSingle(s, "json", filepath.Join(t.TempDir(), "missing", "dir", "out.json"))
	if err == nil {
		t.Error("expected error for unwritable output path")
	}
}
