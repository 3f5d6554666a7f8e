package main

import (
	"time"

	"github.com/tylr-r/crossword-studio/engine"
)

// WordList is a saved, normalized list of (answer, clue) pairs that puzzles
// can be generated from.
type WordList struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Entries   []engine.Entry `json:"entries"`
	CreatedAt time.Time      `json:"created_at"`
}

// Puzzle is a finished layout kept for retrieval and PDF export.
type Puzzle struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Seed      int64          `json:"seed"`
	Layout    *engine.Layout `json:"layout"`
	CreatedAt time.Time      `json:"created_at"`
}
