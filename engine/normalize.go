package engine

import (
	"encoding/json"
	"strings"
)

// Field aliases accepted in raw input, checked in order.
var (
	wordKeys = []string{"word", "answer", "solution", "text", "entry"}
	clueKeys = []string{"clue", "question", "prompt", "hint", "definition"}
)

// Normalize decodes a raw JSON value into the canonical entry list.
// The value must be an array of objects; anything else fails with
// InvalidInputShape. Entries whose word has fewer than MinWordLen letters
// after stripping, more than MaxWordLen, or whose clue is empty after
// trimming are dropped. An empty surviving list fails with NoValidEntries.
func Normalize(raw []byte) ([]Entry, error) {
	var items []map[string]any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errf(KindInvalidInputShape, "input must be a JSON array of objects with word and clue fields")
	}
	return NormalizeValues(items)
}

// NormalizeValues is Normalize for already-decoded objects.
func NormalizeValues(items []map[string]any) ([]Entry, error) {
	if items == nil {
		return nil, errf(KindInvalidInputShape, "input must be a JSON array of objects with word and clue fields")
	}

	entries := make([]Entry, 0, len(items))
	for i, item := range items {
		word := normalizeWord(firstString(item, wordKeys))
		clue := strings.TrimSpace(firstString(item, clueKeys))

		if len(word) < MinWordLen || len(word) > MaxWordLen || clue == "" {
			continue
		}
		entries = append(entries, Entry{Word: word, Clue: clue, OriginalIndex: i})
	}

	if len(entries) == 0 {
		return nil, errf(KindNoValidEntries, "no usable entries: each needs a word of %d-%d letters and a clue", MinWordLen, MaxWordLen)
	}
	return entries, nil
}

// firstString returns the value of the first present key. Non-string
// values coerce to the empty string.
func firstString(item map[string]any, keys []string) string {
	for _, key := range keys {
		if v, ok := item[key]; ok {
			s, _ := v.(string)
			return s
		}
	}
	return ""
}

// normalizeWord uppercases and keeps only the letters A-Z.
func normalizeWord(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
