package interfaces

import (
	"context"

	"bookie/domain/entities"
	"bookie/domain/events"
)

// GameResultProvider fetches final scores from the odds provider.
// Implementations return entities.ErrResultUnavailable when the provider
// has no record for the event yet.
type GameResultProvider interface {
	FetchResult(ctx context.Context, eventID string) (*entities.GameResult, error)
}

// EventPublisher publishes domain events to interested subscribers
type EventPublisher interface {
	Publish(event events.Event) error
}

// ResultNotifier delivers human-facing notice of a settled bet. It is a
// narrow collaborator; delivery failures are logged, never fatal.
type ResultNotifier interface {
	NotifySettled(ctx context.Context, bet *entities.Bet, result *entities.SettlementResult) error
}
