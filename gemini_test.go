package main

import (
	"context"
	"os"
	"testing"
)

func TestParseSuggestions(t *testing.T) {
	text := `[
		{"word": "ORBIT", "clue": "Path around a planet"},
		{"word": "co met", "clue": "Icy wanderer"},
		{"word": "X", "clue": "too short"}
	]`

	entries, err := parseSuggestions(text)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Word != "ORBIT" {
		t.Fatalf("expected ORBIT, got %s", entries[0].Word)
	}
	if entries[1].Word != "COMET" {
		t.Fatalf("expected stripped COMET, got %s", entries[1].Word)
	}
}

func TestParseSuggestionsRejectsGarbage(t *testing.T) {
	if _, err := parseSuggestions("I cannot help with that."); err == nil {
		t.Fatal("expected an error for a non-JSON response")
	}
	if _, err := parseSuggestions(`[{"word":"A","clue":"x"}]`); err == nil {
		t.Fatal("expected an error when every suggestion is unusable")
	}
}

func TestSuggestEntries(t *testing.T) {
	projectID := os.Getenv("GCP_PROJECT_ID")
	if projectID == "" {
		t.Skip("GCP_PROJECT_ID not set, skipping integration test")
	}

	ctx := context.Background()
	client, err := NewGeminiClient(ctx, projectID, "")
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	defer client.Close()

	entries, err := client.SuggestEntries(ctx, "astronomy", 10)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("expected at least one suggestion")
	}

	for _, e := range entries {
		t.Logf("%s — %s", e.Word, e.Clue)
	}
}
