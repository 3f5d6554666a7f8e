package engine

import "math"

// Tuning constants. These are part of the engine's contract.
const (
	MinWords    = 5
	MaxWords    = 25
	MinWordLen  = 2
	MaxWordLen  = 12
	MinGridSize = 10
	MaxGridSize = 25

	MaxAttempts    = 80
	EarlyExitScore = 0.85
	CrossingBonus  = 0.02
)

// gridSize picks the working-square side from the total letter count.
// Aiming near 50% density keeps the search loose enough for the adjacency
// rules while staying compact after trimming.
func gridSize(entries []Entry) int {
	total := 0
	for _, e := range entries {
		total += len(e.Word)
	}
	side := int(math.Ceil(math.Sqrt(float64(2 * total))))
	if side < MinGridSize {
		side = MinGridSize
	}
	if side > MaxGridSize {
		side = MaxGridSize
	}
	return side
}
