package application

import (
	"context"
	"sync"

	"bookie/domain/entities"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// Settler is the slice of SettlementService the worker drives
type Settler interface {
	PollPendingBets(ctx context.Context) (*entities.SettlementRun, error)
}

// SettlementWorker triggers settlement polls on a cron schedule. At most
// one poll runs at a time; a tick that fires while the previous poll is
// still going is skipped rather than stacked.
type SettlementWorker struct {
	settler  Settler
	schedule string
	cron     *cron.Cron

	mu      sync.Mutex
	running bool
}

// NewSettlementWorker creates a new settlement worker. The schedule is a
// six-field cron expression with seconds.
func NewSettlementWorker(settler Settler, schedule string) *SettlementWorker {
	return &SettlementWorker{
		settler:  settler,
		schedule: schedule,
	}
}

// Start begins the cron loop and returns once it is scheduled. When ctx
// is cancelled the cron stops accepting ticks and any in-flight poll is
// allowed to finish so no bet is left half-written.
func (w *SettlementWorker) Start(ctx context.Context) error {
	w.cron = cron.New(cron.WithSeconds())

	_, err := w.cron.AddFunc(w.schedule, func() {
		w.RunOnce(ctx)
	})
	if err != nil {
		return err
	}

	w.cron.Start()
	log.WithField("schedule", w.schedule).Info("settlement worker started")

	go func() {
		<-ctx.Done()
		stopCtx := w.cron.Stop()
		<-stopCtx.Done()
		log.Info("settlement worker stopped")
	}()

	return nil
}

// RunOnce executes a single settlement poll, skipping if one is already
// in flight
func (w *SettlementWorker) RunOnce(ctx context.Context) {
	if !w.tryAcquire() {
		log.Warn("previous settlement poll still running, skipping tick")
		return
	}
	defer w.release()

	run, err := w.settler.PollPendingBets(ctx)
	if err != nil {
		log.WithError(err).Error("settlement poll failed")
		return
	}

	log.WithFields(log.Fields{
		"runID":        run.ID,
		"checked":      run.Checked,
		"settled":      run.Settled,
		"stillPending": run.StillPending,
		"needsReview":  run.NeedsReview,
		"errors":       run.Errors,
	}).Info("settlement poll completed")
}

func (w *SettlementWorker) tryAcquire() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return false
	}
	w.running = true
	return true
}

func (w *SettlementWorker) release() {
	w.mu.Lock()
	w.running = false
	w.mu.Unlock()
}
