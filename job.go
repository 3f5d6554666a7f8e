package main

import (
	"sync"
	"time"
)

// Job statuses.
const (
	JobRunning = "running"
	JobDone    = "done"
	JobFailed  = "failed"
)

// Job is the serializable state of one generation run.
type Job struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	PuzzleID  string    `json:"puzzle_id,omitempty"`
	ErrorKind string    `json:"error_kind,omitempty"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// jobTracker guards a Job between the worker goroutine that updates it and
// the handlers that read snapshots.
type jobTracker struct {
	mu  sync.Mutex
	job Job
}

// finish marks the job successful with the stored puzzle's ID.
func (t *jobTracker) finish(puzzleID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.job.Status = JobDone
	t.job.PuzzleID = puzzleID
}

// fail marks the job failed with an error kind and message.
func (t *jobTracker) fail(kind, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.job.Status = JobFailed
	t.job.ErrorKind = kind
	t.job.Error = message
}

// Snapshot returns a copy safe to serialize while the worker runs.
func (t *jobTracker) Snapshot() Job {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.job
}

// ID never changes after creation, so it can be read without the lock.
func (t *jobTracker) ID() string {
	return t.job.ID
}
