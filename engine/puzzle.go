package engine

import (
	"fmt"
	"math/rand"
	"sort"
	"time"
)

// Options controls one generation. OnProgress receives human-readable phase
// strings; it is advisory only and a panic inside it never reaches the
// search. Seed makes the run reproducible; zero seeds from the clock.
type Options struct {
	OnProgress func(string)
	Seed       int64
}

func (o Options) progress(format string, args ...any) {
	if o.OnProgress == nil {
		return
	}
	defer func() {
		recover()
	}()
	o.OnProgress(fmt.Sprintf(format, args...))
}

// CreatePuzzle lays out count of the given entries on a crossword grid.
// When more entries than count are supplied, a random subset is drawn.
// Up to MaxAttempts independent searches run; every full layout is scored
// and the best kept, exiting early at EarlyExitScore. The engine holds no
// state between calls.
func CreatePuzzle(entries []Entry, count int, opts Options) (*Layout, error) {
	if count < MinWords {
		return nil, errf(KindCountBelowMinimum, "a puzzle needs at least %d words, got a request for %d", MinWords, count)
	}
	if count > MaxWords {
		return nil, errf(KindCountExceedsAvailable, "a puzzle holds at most %d words, got a request for %d", MaxWords, count)
	}
	if len(entries) < MinWords {
		return nil, errf(KindNotEnoughEntries, "at least %d entries are needed, got %d", MinWords, len(entries))
	}
	if count > len(entries) {
		return nil, errf(KindCountExceedsAvailable, "requested %d words but only %d entries are available", count, len(entries))
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))

	subset := pickSubset(entries, count, rnd)
	opts.progress("Preparing %d entries", len(subset))

	overlaps := buildOverlaps(subset)
	p := newPlacer(subset, overlaps, rnd)

	var best *trimmed
	bestScore := -1.0
	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		opts.progress("Layout attempt %d of %d", attempt, MaxAttempts)
		result, ok := p.attempt()
		if !ok {
			continue
		}
		if s := result.score(); s > bestScore {
			best, bestScore = result, s
			if s >= EarlyExitScore {
				break
			}
		}
	}

	if best == nil {
		return nil, errf(KindUnplaceable, "could not fit all %d words on the grid; try fewer words or more shared letters", count)
	}

	opts.progress("Numbering the grid")
	return buildLayout(best, count), nil
}

// pickSubset draws count entries uniformly, preserving input order.
func pickSubset(entries []Entry, count int, rnd *rand.Rand) []Entry {
	if count >= len(entries) {
		return append([]Entry(nil), entries...)
	}
	idx := rnd.Perm(len(entries))[:count]
	sort.Ints(idx)
	subset := make([]Entry, count)
	for i, j := range idx {
		subset[i] = entries[j]
	}
	return subset
}
