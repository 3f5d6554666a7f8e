package main

import (
	"log"

	"github.com/tylr-r/crossword-studio/engine"
)

// runGeneration executes one layout job on its own goroutine. Progress and
// the terminal event stream through the broadcaster; the job record carries
// the outcome for polling clients that missed the stream.
func (s *Server) runGeneration(job *jobTracker, name string, entries []engine.Entry, count int, seed int64) {
	layout, err := engine.CreatePuzzle(entries, count, engine.Options{
		Seed: seed,
		OnProgress: func(msg string) {
			s.sse.Publish(job.ID(), map[string]string{"type": "progress", "message": msg})
		},
	})
	if err != nil {
		kind := string(engine.KindOf(err))
		job.fail(kind, err.Error())
		s.sse.Publish(job.ID(), map[string]string{"type": "error", "kind": kind, "message": err.Error()})
		log.Printf("generation %s failed (%s): %v", job.ID(), kind, err)
		return
	}

	puzzle := s.store.SavePuzzle(&Puzzle{Name: name, Seed: seed, Layout: layout})
	job.finish(puzzle.ID)
	s.sse.Publish(job.ID(), map[string]string{"type": "done", "puzzle_id": puzzle.ID})
	log.Printf("generation %s done: puzzle %s (%dx%d)", job.ID(), puzzle.ID, layout.Rows, layout.Cols)
}
