package typegen

import (
	"sync"
	"time"
)

// Status of the most recent generation run
type Status string

const (
	StatusNeverRun Status = "never-run"
	StatusSuccess  Status = "success"
	StatusError    Status = "error"
)

// Outcome describes the most recent generation run
type Outcome struct {
	LastGenerated *time.Time `json:"lastGenerated"`
	Status        Status     `json:"status"`
	ErrorMessage  string     `json:"errorMessage,omitempty"`
	RunID         string     `json:"runId,omitempty"`
}

// Stats holds the outcome of the last run. Last write wins; no history is kept.
// The lock guards readers against a concurrent write; it does not serialize runs.
type Stats struct {
	mu      sync.RWMutex
	outcome Outcome
}

// NewStats returns a tracker in the never-run state
func NewStats() *Stats {
	return &Stats{outcome: Outcome{Status: StatusNeverRun}}
}

// RecordSuccess marks a successful run finished at t
func (s *Stats) RecordSuccess(t time.Time, runID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outcome = Outcome{LastGenerated: &t, Status: StatusSuccess, RunID: runID}
}

// RecordError marks a failed run finished at t
func (s *Stats) RecordError(t time.Time, runID, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outcome = Outcome{LastGenerated: &t, Status: StatusError, ErrorMessage: message, RunID: runID}
}

// Current returns a copy of the last outcome
func (s *Stats) Current() Outcome {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.outcome
	if out.LastGenerated != nil {
		t := *out.LastGenerated
		out.LastGenerated = &t
	}
	if out.Status == "" {
		out.Status = StatusNeverRun
	}
	return out
}
