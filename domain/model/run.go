package model

import "time"

// RunResult is the final state of a recorded engine run.
type RunResult string

const (
	RunRunning   RunResult = "running"
	RunSucceeded RunResult = "succeeded"
	RunFailed    RunResult = "failed"
)

// Run records one engine operation issued by the CLI.
type Run struct {
	ID         string
	Operation  StackOperation
	Project    string
	Stack      string
	Result     RunResult
	Summary    ChangeSummary
	LiveURL    string
	Error      string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Elapsed returns the run duration, zero while running.
func (r *Run) Elapsed() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
