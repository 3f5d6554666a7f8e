package engine

// coincidence is one shared letter between two words: position a in the
// first word equals position b in the second.
type coincidence struct {
	a, b int
}

// overlapTable holds every letter coincidence between every ordered pair of
// entries, plus the per-entry total used by the seed and candidate
// heuristics. Derived once per generation; never mutated afterwards.
type overlapTable struct {
	pairs  map[[2]int][]coincidence
	totals []int
}

// buildOverlaps computes the coincidence lists for all ordered pairs (i, j)
// with i != j.
func buildOverlaps(entries []Entry) *overlapTable {
	t := &overlapTable{
		pairs:  make(map[[2]int][]coincidence),
		totals: make([]int, len(entries)),
	}

	for i := range entries {
		for j := range entries {
			if i == j {
				continue
			}
			var list []coincidence
			for ai := 0; ai < len(entries[i].Word); ai++ {
				for bi := 0; bi < len(entries[j].Word); bi++ {
					if entries[i].Word[ai] == entries[j].Word[bi] {
						list = append(list, coincidence{a: ai, b: bi})
					}
				}
			}
			if list != nil {
				t.pairs[[2]int{i, j}] = list
				t.totals[i] += len(list)
			}
		}
	}
	return t
}

// between returns the coincidences between entries i and j, in that order.
func (t *overlapTable) between(i, j int) []coincidence {
	return t.pairs[[2]int{i, j}]
}
