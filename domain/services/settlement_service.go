package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookie/domain/entities"
	"bookie/domain/events"
	"bookie/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

const (
	storageWriteAttempts = 3
	storageRetryBackoff  = 250 * time.Millisecond
)

// SettlementService orchestrates leg evaluation, parlay aggregation and
// persistence for bet settlement
type SettlementService struct {
	betRepo        interfaces.BetRepository
	runRepo        interfaces.SettlementRunRepository
	resultProvider interfaces.GameResultProvider
	evaluator      *LegEvaluator
	publisher      interfaces.EventPublisher
	notifier       interfaces.ResultNotifier
	retryBackoff   time.Duration
}

// NewSettlementService creates a new SettlementService. The notifier may
// be nil when no delivery channel is configured.
func NewSettlementService(
	betRepo interfaces.BetRepository,
	runRepo interfaces.SettlementRunRepository,
	resultProvider interfaces.GameResultProvider,
	publisher interfaces.EventPublisher,
	notifier interfaces.ResultNotifier,
) *SettlementService {
	return &SettlementService{
		betRepo:        betRepo,
		runRepo:        runRepo,
		resultProvider: resultProvider,
		evaluator:      NewLegEvaluator(),
		publisher:      publisher,
		notifier:       notifier,
		retryBackoff:   storageRetryBackoff,
	}
}

// Settle determines and persists the outcome of a single bet. Calling it
// on an already-terminal bet is a no-op returning the stored result, so
// the scheduler double-processing a bet cannot pay it twice.
func (s *SettlementService) Settle(ctx context.Context, bet *entities.Bet) (*entities.SettlementResult, error) {
	if bet.IsTerminal() {
		return storedResult(bet), nil
	}

	if err := bet.Validate(); err != nil {
		return s.routeToReview(ctx, bet, err)
	}

	legs := bet.SettlementLegs()
	verdicts := make([]entities.Verdict, len(legs))
	reasons := make([]string, len(legs))

	for i, leg := range legs {
		result, err := s.resultProvider.FetchResult(ctx, leg.EventID)
		if err != nil && !errors.Is(err, entities.ErrResultUnavailable) {
			return nil, fmt.Errorf("failed to fetch result for event %s: %w", leg.EventID, err)
		}
		verdicts[i], reasons[i] = s.evaluator.EvaluateLeg(leg, result)
	}

	result := aggregate(bet, legs, verdicts, reasons)
	if result.Status == entities.BetStatusPending {
		return result, nil
	}

	bet.Status = result.Status
	bet.ResultAmount = &result.Payout
	bet.SettlementReason = &result.Reason
	now := time.Now().UTC()
	bet.SettledAt = &now

	err := withRetry(ctx, storageWriteAttempts, s.retryBackoff, func() error {
		return s.betRepo.MarkSettled(ctx, bet)
	})
	if errors.Is(err, entities.ErrAlreadySettled) {
		// Lost the race: another writer settled first. The stored result
		// is authoritative.
		stored, getErr := s.betRepo.GetByID(ctx, bet.ID)
		if getErr != nil {
			return nil, fmt.Errorf("bet %d settled concurrently and reload failed: %w", bet.ID, getErr)
		}
		return storedResult(stored), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to persist settlement for bet %d: %w", bet.ID, err)
	}

	s.publish(events.BetSettledEvent{
		BetID:   bet.ID,
		UserID:  bet.UserID,
		BetType: bet.BetType,
		Status:  result.Status,
		Stake:   bet.Stake,
		Payout:  result.Payout,
		Reason:  result.Reason,
	})

	log.WithFields(log.Fields{
		"betID":  bet.ID,
		"type":   bet.BetType,
		"status": result.Status,
		"payout": result.Payout,
	}).Info("bet settled")

	return result, nil
}

// PollPendingBets runs one settlement pass over every pending bet. A
// single bet's failure is counted and logged, never allowed to abort the
// batch. The run record is persisted for the admin stats surface.
func (s *SettlementService) PollPendingBets(ctx context.Context) (*entities.SettlementRun, error) {
	run := entities.NewSettlementRun()

	bets, err := s.betRepo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending bets: %w", err)
	}

	for _, bet := range bets {
		run.Checked++

		result, err := s.Settle(ctx, bet)
		if err != nil {
			run.Errors++
			log.WithFields(log.Fields{
				"betID": bet.ID,
				"error": err,
			}).Warn("failed to settle bet, will retry next poll")
			continue
		}

		switch result.Status {
		case entities.BetStatusPending:
			run.StillPending++
		case entities.BetStatusNeedsReview:
			run.NeedsReview++
		default:
			run.Settled++
			s.notify(ctx, bet, result)
		}
	}

	run.Finish()

	if err := withRetry(ctx, storageWriteAttempts, s.retryBackoff, func() error {
		return s.runRepo.Record(ctx, run)
	}); err != nil {
		log.WithField("error", err).Error("failed to record settlement run")
	}

	s.publish(events.SettlementRunCompletedEvent{
		RunID:        run.ID,
		Checked:      run.Checked,
		Settled:      run.Settled,
		StillPending: run.StillPending,
		NeedsReview:  run.NeedsReview,
		Errors:       run.Errors,
	})

	return run, nil
}

// RecentRuns exposes poll-run history to the admin stats surface
func (s *SettlementService) RecentRuns(ctx context.Context, limit int) ([]*entities.SettlementRun, error) {
	return s.runRepo.ListRecent(ctx, limit)
}

// routeToReview marks a structurally broken bet for operator attention
// instead of guessing at its selection
func (s *SettlementService) routeToReview(ctx context.Context, bet *entities.Bet, cause error) (*entities.SettlementResult, error) {
	reason := cause.Error()

	if err := s.betRepo.MarkNeedsReview(ctx, bet.ID, reason); err != nil {
		return nil, fmt.Errorf("failed to flag bet %d for review: %w", bet.ID, err)
	}
	bet.Status = entities.BetStatusNeedsReview
	bet.SettlementReason = &reason

	s.publish(events.BetNeedsReviewEvent{BetID: bet.ID, Reason: reason})

	log.WithFields(log.Fields{
		"betID":  bet.ID,
		"reason": reason,
	}).Warn("bet flagged for review")

	return &entities.SettlementResult{
		Status: entities.BetStatusNeedsReview,
		Payout: 0,
		Reason: reason,
	}, nil
}

// aggregate combines per-leg verdicts into a bet-level result.
// Precedence: any lost leg sinks the bet; any pending leg holds it; what
// remains is all won or pushed.
func aggregate(bet *entities.Bet, legs []*entities.BetLeg, verdicts []entities.Verdict, reasons []string) *entities.SettlementResult {
	for i, v := range verdicts {
		if v == entities.VerdictLost {
			return &entities.SettlementResult{
				Status: entities.BetStatusLost,
				Payout: 0,
				Reason: reasons[i],
			}
		}
	}
	for _, v := range verdicts {
		if v == entities.VerdictPending {
			return &entities.SettlementResult{
				Status: entities.BetStatusPending,
				Reason: reasonAwaitingScore,
			}
		}
	}

	// Pushed legs drop out of a parlay's multiplier rather than counting
	// as losses; a straight bet (one leg) that pushed returns the stake.
	var wonOdds []int
	reason := ""
	for i, v := range verdicts {
		if reason != "" {
			reason += "; "
		}
		reason += reasons[i]
		if v == entities.VerdictWon {
			wonOdds = append(wonOdds, legs[i].Odds)
		}
	}

	if len(wonOdds) == 0 {
		return &entities.SettlementResult{
			Status: entities.BetStatusPushed,
			Payout: entities.RoundCents(bet.Stake),
			Reason: reason,
		}
	}

	var payout float64
	if bet.IsParlay() {
		payout = entities.RoundCents(bet.Stake * entities.ParlayMultiplier(wonOdds))
	} else {
		payout = entities.WinPayout(bet.Stake, bet.Odds)
	}

	return &entities.SettlementResult{
		Status: entities.BetStatusWon,
		Payout: payout,
		Reason: reason,
	}
}

func storedResult(bet *entities.Bet) *entities.SettlementResult {
	result := &entities.SettlementResult{Status: bet.Status}
	if bet.ResultAmount != nil {
		result.Payout = *bet.ResultAmount
	}
	if bet.SettlementReason != nil {
		result.Reason = *bet.SettlementReason
	}
	return result
}

func (s *SettlementService) publish(event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(event); err != nil {
		log.WithFields(log.Fields{
			"eventType": event.Type(),
			"error":     err,
		}).Error("failed to publish event")
	}
}

func (s *SettlementService) notify(ctx context.Context, bet *entities.Bet, result *entities.SettlementResult) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifySettled(ctx, bet, result); err != nil {
		log.WithFields(log.Fields{
			"betID": bet.ID,
			"error": err,
		}).Warn("failed to deliver settlement notification")
	}
}

// withRetry retries transient storage write failures with a flat backoff.
// The final error is returned; the bet simply stays pending for the next
// poll.
func withRetry(ctx context.Context, attempts int, backoff time.Duration, fn func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		err = fn()
		if err == nil || errors.Is(err, entities.ErrAlreadySettled) {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
	return err
}
