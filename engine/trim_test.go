package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrimBoard(t *testing.T) {
	b := newBoard(10)
	b.place("CAT", 5, 5, Across)
	b.place("TAR", 5, 7, Down)
	placements := []Placement{
		{Word: "CAT", Row: 5, Col: 5, Direction: Across, EntryIndex: 0},
		{Word: "TAR", Row: 5, Col: 7, Direction: Down, EntryIndex: 1},
	}

	tr := trimBoard(b, placements)

	require.Len(t, tr.cells, 3)
	require.Len(t, tr.cells[0], 3)
	require.Equal(t, byte('C'), tr.cells[0][0].letter)
	require.Equal(t, byte('T'), tr.cells[0][2].letter)
	require.Equal(t, byte('R'), tr.cells[2][2].letter)
	require.Equal(t, byte(0), tr.cells[1][0].letter)

	require.Equal(t, 0, tr.placements[0].Row)
	require.Equal(t, 0, tr.placements[0].Col)
	require.Equal(t, 0, tr.placements[1].Row)
	require.Equal(t, 2, tr.placements[1].Col)

	// The input placements are left untouched.
	require.Equal(t, 5, placements[0].Row)
}

func TestTrimmedScore(t *testing.T) {
	b := newBoard(10)
	b.place("CAT", 5, 5, Across)
	b.place("TAR", 5, 7, Down)
	tr := trimBoard(b, nil)

	// 3x3 rectangle, 5 letters, one crossing.
	require.InDelta(t, 5.0/9.0+CrossingBonus, tr.score(), 1e-9)
}

func TestBuildLayoutNumbering(t *testing.T) {
	b := newBoard(10)
	b.place("CAT", 5, 5, Across)
	b.place("TAR", 5, 7, Down)
	tr := trimBoard(b, []Placement{
		{Word: "CAT", Clue: "Feline", Row: 5, Col: 5, Direction: Across, EntryIndex: 0},
		{Word: "TAR", Clue: "Sticky black", Row: 5, Col: 7, Direction: Down, EntryIndex: 1},
	})

	layout := buildLayout(tr, 2)

	require.Equal(t, 3, layout.Rows)
	require.Equal(t, 3, layout.Cols)
	require.Equal(t, "C", layout.Grid[0][0])
	require.Equal(t, "", layout.Grid[1][0])

	// CAT starts first in row-major order, TAR two cells later.
	require.Equal(t, 1, layout.NumbersMap[0][0])
	require.Equal(t, 2, layout.NumbersMap[0][2])
	require.Equal(t, 0, layout.NumbersMap[0][1])

	require.Equal(t, []ClueRef{{Number: 1, Clue: "Feline", Length: 3}}, layout.AcrossClues)
	require.Equal(t, []ClueRef{{Number: 2, Clue: "Sticky black", Length: 3}}, layout.DownClues)

	require.Equal(t, 1, layout.Placements[0].Number)
	require.Equal(t, 2, layout.Placements[1].Number)
}

func TestBuildLayoutSharedStart(t *testing.T) {
	// TAB across and TAR down both start on the same T.
	b := newBoard(10)
	b.place("TAB", 4, 4, Across)
	b.place("TAR", 4, 4, Down)
	tr := trimBoard(b, []Placement{
		{Word: "TAB", Clue: "Small flap", Row: 4, Col: 4, Direction: Across, EntryIndex: 0},
		{Word: "TAR", Clue: "Sticky black", Row: 4, Col: 4, Direction: Down, EntryIndex: 1},
	})

	layout := buildLayout(tr, 2)

	require.Equal(t, 1, layout.NumbersMap[0][0])
	require.Equal(t, 1, layout.Placements[0].Number)
	require.Equal(t, 1, layout.Placements[1].Number)
	require.Equal(t, 1, layout.AcrossClues[0].Number)
	require.Equal(t, 1, layout.DownClues[0].Number)
}
