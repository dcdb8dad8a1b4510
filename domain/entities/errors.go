package entities

import "errors"

var (
	// ErrResultUnavailable indicates the odds provider has no record for
	// the event yet. Callers treat it as "still pending", not a failure.
	ErrResultUnavailable = errors.New("game result unavailable")

	// ErrInvalidBetData indicates a bet record is missing the typed
	// selection fields its bet type requires. The bet is routed to
	// needs_review instead of being guessed at.
	ErrInvalidBetData = errors.New("invalid bet data")

	// ErrAlreadySettled indicates another writer settled the bet first.
	ErrAlreadySettled = errors.New("bet already settled")
)
