// Package engine lays out crossword puzzles. It turns a list of
// (answer, clue) pairs into a compact grid where every answer appears once,
// crossings share letters, and no unintended words form between parallel
// answers, then numbers the grid and orders the clue lists.
//
// The engine is a pure library: no I/O, no globals, no shared state between
// calls. Normalize cleans raw JSON input; CreatePuzzle runs the
// backtracking search and returns a Layout or a typed Error.
package engine
