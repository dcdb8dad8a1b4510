package events

import "bookie/domain/entities"

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeBetSettled             EventType = "bet_settled"
	EventTypeBetNeedsReview         EventType = "bet_needs_review"
	EventTypeSettlementRunCompleted EventType = "settlement_run_completed"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// BetSettledEvent is published when a bet transitions into a terminal state
type BetSettledEvent struct {
	BetID   int64
	UserID  int64
	BetType entities.BetType
	Status  entities.BetStatus
	Stake   float64
	Payout  float64
	Reason  string
}

func (e BetSettledEvent) Type() EventType {
	return EventTypeBetSettled
}

// BetNeedsReviewEvent is published when a bet's stored data is unusable
// and an operator has to look at it
type BetNeedsReviewEvent struct {
	BetID  int64
	Reason string
}

func (e BetNeedsReviewEvent) Type() EventType {
	return EventTypeBetNeedsReview
}

// SettlementRunCompletedEvent summarizes one poll of the pending bets
type SettlementRunCompletedEvent struct {
	RunID        string
	Checked      int
	Settled      int
	StillPending int
	NeedsReview  int
	Errors       int
}

func (e SettlementRunCompletedEvent) Type() EventType {
	return EventTypeSettlementRunCompleted
}
