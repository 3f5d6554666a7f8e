package main

import (
	"fmt"
	"sync"
	"testing"

	"github.com/tylr-r/crossword-studio/engine"
)

func testEntries() []engine.Entry {
	return []engine.Entry{
		{Word: "CAT", Clue: "Feline", OriginalIndex: 0},
		{Word: "TAR", Clue: "Sticky black", OriginalIndex: 1},
		{Word: "ART", Clue: "Museum piece", OriginalIndex: 2},
		{Word: "RAT", Clue: "Rodent", OriginalIndex: 3},
		{Word: "TAB", Clue: "Small flap", OriginalIndex: 4},
	}
}

func TestStoreWordLists(t *testing.T) {
	s := NewStore()

	wl := s.SaveWordList(&WordList{Name: "Animals", Entries: testEntries()})
	if wl.ID == "" {
		t.Fatal("expected generated ID")
	}
	if wl.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}

	got := s.GetWordList(wl.ID)
	if got == nil || got.Name != "Animals" {
		t.Fatalf("expected to retrieve the saved list, got %+v", got)
	}

	if s.GetWordList("nonexistent") != nil {
		t.Fatal("expected nil for unknown ID")
	}

	if !s.DeleteWordList(wl.ID) {
		t.Fatal("expected delete to succeed")
	}
	if s.DeleteWordList(wl.ID) {
		t.Fatal("expected second delete to fail")
	}
	if s.GetWordList(wl.ID) != nil {
		t.Fatal("expected list gone after delete")
	}
}

func TestStoreListOrder(t *testing.T) {
	s := NewStore()

	for i := range 5 {
		s.SaveWordList(&WordList{Name: fmt.Sprintf("list-%d", i), Entries: testEntries()})
	}

	lists := s.ListWordLists()
	if len(lists) != 5 {
		t.Fatalf("expected 5 lists, got %d", len(lists))
	}
	for i := 1; i < len(lists); i++ {
		if lists[i].CreatedAt.After(lists[i-1].CreatedAt) {
			t.Fatal("expected newest first ordering")
		}
	}
}

func TestStorePuzzles(t *testing.T) {
	s := NewStore()

	layout, err := engine.CreatePuzzle(testEntries(), 5, engine.Options{Seed: 1})
	if err != nil {
		t.Fatalf("create puzzle: %v", err)
	}

	p := s.SavePuzzle(&Puzzle{Name: "Animals", Seed: 1, Layout: layout})
	if p.ID == "" {
		t.Fatal("expected generated ID")
	}

	got := s.GetPuzzle(p.ID)
	if got == nil || got.Layout == nil {
		t.Fatal("expected to retrieve the saved puzzle with its layout")
	}

	if len(s.ListPuzzles()) != 1 {
		t.Fatal("expected one puzzle listed")
	}
}

func TestStoreJobs(t *testing.T) {
	s := NewStore()

	job := s.CreateJob()
	if job.ID() == "" {
		t.Fatal("expected generated ID")
	}
	if snap := job.Snapshot(); snap.Status != JobRunning {
		t.Fatalf("expected running, got %s", snap.Status)
	}

	job.finish("puzzle123")
	snap := job.Snapshot()
	if snap.Status != JobDone || snap.PuzzleID != "puzzle123" {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}

	job2 := s.CreateJob()
	job2.fail("Unplaceable", "no layout found")
	snap = job2.Snapshot()
	if snap.Status != JobFailed || snap.ErrorKind != "Unplaceable" {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}

	if s.GetJob(job.ID()) == nil {
		t.Fatal("expected to find job by ID")
	}
	if s.GetJob("nonexistent") != nil {
		t.Fatal("expected nil for unknown job")
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			wl := s.SaveWordList(&WordList{Name: fmt.Sprintf("list-%d", i), Entries: testEntries()})
			s.GetWordList(wl.ID)
			s.ListWordLists()
			job := s.CreateJob()
			job.finish("done")
			s.GetJob(job.ID())
		}(i)
	}
	wg.Wait()

	if len(s.ListWordLists()) != 100 {
		t.Fatalf("expected 100 lists, got %d", len(s.ListWordLists()))
	}
}
