package entity

import "github.com/diegoclair/attendance-reminder-bot/internal/domain"

// RunResult is what a reminder run reports back to its caller.
type RunResult struct {
	Success      bool       `json:"success"`
	Message      string     `json:"message"`
	Detail       string     `json:"detail,omitempty"`
	RunID        string     `json:"runId"`
	SentCount    int        `json:"sentCount"`
	SkippedCount int        `json:"skippedCount"`
	FailedCount  int        `json:"failedCount"`
	Outcomes     []*Outcome `json:"outcomes"`
}

// Outcome is the fate of one (user, kind) pair during a run.
type Outcome struct {
	UserID      string              `json:"userId,omitempty"`
	DisplayName string              `json:"displayName,omitempty"`
	Kind        domain.ReminderKind `json:"kind"`
	Status      string              `json:"status"`
	Reason      string              `json:"reason,omitempty"`
}

// Tally recomputes the counters from the outcomes.
func (r *RunResult) Tally() {
	r.SentCount, r.SkippedCount, r.FailedCount = 0, 0, 0
	for _, o := range r.Outcomes {
		switch o.Status {
		case domain.StatusSent:
			r.SentCount++
		case domain.StatusSkipped:
			r.SkippedCount++
		case domain.StatusFailed:
			r.FailedCount++
		}
	}
}
