package engine

import "sort"

// buildLayout assigns crossword numbers to the trimmed result and produces
// the final layout bundle. Numbers are handed out in row-major order: a
// letter cell is numbered iff at least one placement starts there, and
// every placement starting on the cell adopts its number.
func buildLayout(t *trimmed, requested int) *Layout {
	rows := len(t.cells)
	cols := 0
	if rows > 0 {
		cols = len(t.cells[0])
	}

	starts := make(map[[2]int][]int)
	for i, pl := range t.placements {
		key := [2]int{pl.Row, pl.Col}
		starts[key] = append(starts[key], i)
	}

	grid := make([][]string, rows)
	numbers := make([][]int, rows)
	next := 1
	for r := 0; r < rows; r++ {
		grid[r] = make([]string, cols)
		numbers[r] = make([]int, cols)
		for c := 0; c < cols; c++ {
			letter := t.cells[r][c].letter
			if letter == 0 {
				continue
			}
			grid[r][c] = string(letter)
			if started := starts[[2]int{r, c}]; len(started) > 0 {
				numbers[r][c] = next
				for _, i := range started {
					t.placements[i].Number = next
				}
				next++
			}
		}
	}

	var across, down []ClueRef
	for _, pl := range t.placements {
		ref := ClueRef{Number: pl.Number, Clue: pl.Clue, Length: len(pl.Word)}
		if pl.Direction == Across {
			across = append(across, ref)
		} else {
			down = append(down, ref)
		}
	}
	sort.Slice(across, func(a, b int) bool { return across[a].Number < across[b].Number })
	sort.Slice(down, func(a, b int) bool { return down[a].Number < down[b].Number })

	return &Layout{
		Grid:           grid,
		Placements:     t.placements,
		NumbersMap:     numbers,
		AcrossClues:    across,
		DownClues:      down,
		RequestedCount: requested,
		Rows:           rows,
		Cols:           cols,
	}
}
