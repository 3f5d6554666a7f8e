package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildOverlaps(t *testing.T) {
	entries := []Entry{
		{Word: "CAT"},
		{Word: "TAR"},
		{Word: "XYZ"},
	}
	ov := buildOverlaps(entries)

	// CAT vs TAR: A at (1,1), T at (2,0).
	require.Equal(t, []coincidence{{a: 1, b: 1}, {a: 2, b: 0}}, ov.between(0, 1))
	// Reversed pair mirrors the positions.
	require.Equal(t, []coincidence{{a: 0, b: 2}, {a: 1, b: 1}}, ov.between(1, 0))

	// XYZ shares nothing with either word.
	require.Empty(t, ov.between(0, 2))
	require.Empty(t, ov.between(2, 1))

	require.Equal(t, []int{2, 2, 0}, ov.totals)
}

func TestBuildOverlapsRepeatedLetters(t *testing.T) {
	entries := []Entry{
		{Word: "TOOT"},
		{Word: "OBOE"},
	}
	ov := buildOverlaps(entries)

	// Each O of TOOT matches both Os of OBOE: 2*2 coincidences.
	require.Len(t, ov.between(0, 1), 4)
	require.Equal(t, 4, ov.totals[0])
}

func TestGridSize(t *testing.T) {
	// 5 entries of 2 letters: ceil(sqrt(20)) = 5, clamped up to 10.
	small := make([]Entry, 5)
	for i := range small {
		small[i] = Entry{Word: "AB"}
	}
	require.Equal(t, MinGridSize, gridSize(small))

	// 25 words of 12 letters: ceil(sqrt(600)) = 25, the ceiling.
	big := make([]Entry, 25)
	for i := range big {
		big[i] = Entry{Word: "ABCDEFGHIJKL"}
	}
	require.Equal(t, MaxGridSize, gridSize(big))

	// 10 words of 8 letters: ceil(sqrt(160)) = 13.
	mid := make([]Entry, 10)
	for i := range mid {
		mid[i] = Entry{Word: "ABCDEFGH"}
	}
	require.Equal(t, 13, gridSize(mid))
}
