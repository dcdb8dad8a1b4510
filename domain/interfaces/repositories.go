package interfaces

import (
	"context"

	"bookie/domain/entities"
)

// BetRepository defines the interface for bet data access
type BetRepository interface {
	// Create stores a new bet (and its legs, for parlays)
	Create(ctx context.Context, bet *entities.Bet) error

	// GetByID retrieves a bet by its ID, legs included
	GetByID(ctx context.Context, id int64) (*entities.Bet, error)

	// ListPending returns all bets still awaiting settlement
	ListPending(ctx context.Context) ([]*entities.Bet, error)

	// MarkSettled persists a terminal status, payout and reason. The
	// write is guarded on the bet still being pending; if another writer
	// got there first it returns entities.ErrAlreadySettled.
	MarkSettled(ctx context.Context, bet *entities.Bet) error

	// MarkNeedsReview flags a bet whose stored data cannot be settled
	MarkNeedsReview(ctx context.Context, betID int64, reason string) error
}

// SettlementRunRepository defines the interface for poll-run bookkeeping
type SettlementRunRepository interface {
	// Record stores a completed settlement run
	Record(ctx context.Context, run *entities.SettlementRun) error

	// ListRecent returns the most recent runs, newest first
	ListRecent(ctx context.Context, limit int) ([]*entities.SettlementRun, error)
}
