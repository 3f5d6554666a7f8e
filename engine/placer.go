package engine

import (
	"math/rand"
	"sort"
)

// placer runs one generation's backtracking search. The board and the
// placements list are scratch state rebuilt on every attempt; entries and
// the overlap table are shared across attempts.
type placer struct {
	entries  []Entry
	overlaps *overlapTable
	rnd      *rand.Rand

	board  *board
	placed []Placement
	used   []bool
}

func newPlacer(entries []Entry, overlaps *overlapTable, rnd *rand.Rand) *placer {
	return &placer{entries: entries, overlaps: overlaps, rnd: rnd}
}

// option is one candidate position derived from a letter coincidence.
type option struct {
	row, col int
	dir      Direction
}

// attempt runs one full search from an empty board. On success it returns
// the trimmed result; placements in the returned value are already
// translated to trimmed coordinates.
func (p *placer) attempt() (*trimmed, bool) {
	side := gridSize(p.entries)
	p.board = newBoard(side)
	p.placed = p.placed[:0]
	p.used = make([]bool, len(p.entries))

	seed := p.pickSeed()
	word := p.entries[seed].Word
	row := side / 2
	col := (side - len(word)) / 2
	if col < 0 {
		col = 0
	}
	if !p.board.canPlace(word, row, col, Across) {
		return nil, false
	}
	p.commit(seed, option{row: row, col: col, dir: Across})

	if !p.solve() {
		return nil, false
	}
	return trimBoard(p.board, p.placed), true
}

// pickSeed selects the entry with the highest overlap total, preferring the
// longer word on ties. Remaining ties fall to the shuffled scan order.
func (p *placer) pickSeed() int {
	order := p.rnd.Perm(len(p.entries))
	best := order[0]
	for _, i := range order[1:] {
		ti, tb := p.overlaps.totals[i], p.overlaps.totals[best]
		if ti > tb || (ti == tb && len(p.entries[i].Word) > len(p.entries[best].Word)) {
			best = i
		}
	}
	return best
}

// solve places the remaining entries recursively. Only entries sharing a
// letter with a committed placement are candidates at a given step; the
// rest wait for more anchors.
func (p *placer) solve() bool {
	if len(p.placed) == len(p.entries) {
		return true
	}

	for _, idx := range p.candidates() {
		word := p.entries[idx].Word
		for _, o := range p.options(idx) {
			if !p.board.canPlace(word, o.row, o.col, o.dir) {
				continue
			}
			p.commit(idx, o)
			if p.solve() {
				return true
			}
			p.revert()
		}
	}
	return false
}

// candidates returns the unplaced entries that share at least one letter
// with a committed placement, in descending order of (coincidence count
// against the committed set, overlap total, word length). Ties keep a
// per-attempt shuffled order.
func (p *placer) candidates() []int {
	type scored struct {
		idx, score int
	}
	var cands []scored
	for i := range p.entries {
		if p.used[i] {
			continue
		}
		score := 0
		for _, pl := range p.placed {
			score += len(p.overlaps.between(i, pl.EntryIndex))
		}
		if score > 0 {
			cands = append(cands, scored{idx: i, score: score})
		}
	}

	p.rnd.Shuffle(len(cands), func(a, b int) {
		cands[a], cands[b] = cands[b], cands[a]
	})
	sort.SliceStable(cands, func(a, b int) bool {
		ca, cb := cands[a], cands[b]
		if ca.score != cb.score {
			return ca.score > cb.score
		}
		ta, tb := p.overlaps.totals[ca.idx], p.overlaps.totals[cb.idx]
		if ta != tb {
			return ta > tb
		}
		return len(p.entries[ca.idx].Word) > len(p.entries[cb.idx].Word)
	})

	out := make([]int, len(cands))
	for i, c := range cands {
		out[i] = c.idx
	}
	return out
}

// options derives every crossing position for the candidate from the
// coincidence lists against each committed placement, deduplicated by
// (row, col, direction) in first-seen order.
func (p *placer) options(idx int) []option {
	var opts []option
	seen := make(map[option]struct{})
	for _, pl := range p.placed {
		for _, co := range p.overlaps.between(idx, pl.EntryIndex) {
			var o option
			if pl.Direction == Across {
				o = option{row: pl.Row - co.a, col: pl.Col + co.b, dir: Down}
			} else {
				o = option{row: pl.Row + co.b, col: pl.Col - co.a, dir: Across}
			}
			if _, dup := seen[o]; dup {
				continue
			}
			seen[o] = struct{}{}
			opts = append(opts, o)
		}
	}
	return opts
}

func (p *placer) commit(idx int, o option) {
	e := p.entries[idx]
	p.board.place(e.Word, o.row, o.col, o.dir)
	p.placed = append(p.placed, Placement{
		Word:       e.Word,
		Clue:       e.Clue,
		Row:        o.row,
		Col:        o.col,
		Direction:  o.dir,
		EntryIndex: idx,
	})
	p.used[idx] = true
}

func (p *placer) revert() {
	last := p.placed[len(p.placed)-1]
	p.placed = p.placed[:len(p.placed)-1]
	p.board.unplace(last.Word, last.Row, last.Col, last.Direction)
	p.used[last.EntryIndex] = false
}
