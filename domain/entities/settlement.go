package entities

import (
	"time"

	"github.com/google/uuid"
)

// Verdict is the outcome of evaluating one leg against a final score
type Verdict string

const (
	VerdictWon     Verdict = "won"
	VerdictLost    Verdict = "lost"
	VerdictPushed  Verdict = "pushed"
	VerdictPending Verdict = "pending"
)

// SettlementResult is the outcome of settling one bet
type SettlementResult struct {
	Status BetStatus
	Payout float64
	Reason string
}

// SettlementRun records one pass of the pending-bet poll loop. It is the
// explicit scheduler state surfaced to admin stats; there is no global
// mutable counter anywhere.
type SettlementRun struct {
	ID           string     `db:"id"`
	StartedAt    time.Time  `db:"started_at"`
	FinishedAt   *time.Time `db:"finished_at"`
	Checked      int        `db:"checked"`
	Settled      int        `db:"settled"`
	StillPending int        `db:"still_pending"`
	NeedsReview  int        `db:"needs_review"`
	Errors       int        `db:"errors"`
	CreatedAt    time.Time  `db:"created_at"`
}

// NewSettlementRun starts a new run record with a fresh identifier
func NewSettlementRun() *SettlementRun {
	return &SettlementRun{
		ID:        uuid.New().String(),
		StartedAt: time.Now().UTC(),
	}
}

// Finish stamps the run's completion time
func (r *SettlementRun) Finish() {
	now := time.Now().UTC()
	r.FinishedAt = &now
}
