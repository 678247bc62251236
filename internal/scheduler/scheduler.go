package scheduler

import (
	"context"
	"log/slog"
	"time"

	portssvc "github.com/SscSPs/share_registry_app/internal/core/ports/services"
	"github.com/robfig/cron/v3"
)

// Scheduler runs the periodic recovery sweep that abandons stale pending
// ledger intents.
type Scheduler struct {
	cron      *cron.Cron
	ledgerSvc portssvc.LedgerSvcFacade
	logger    *slog.Logger
}

func NewScheduler(ledgerSvc portssvc.LedgerSvcFacade, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:      cron.New(cron.WithLocation(time.UTC)),
		ledgerSvc: ledgerSvc,
		logger:    logger,
	}
}

// Register adds the sweep job on the given cron schedule.
func (s *Scheduler) Register(schedule string) error {
	_, err := s.cron.AddFunc(schedule, s.runSweep)
	return err
}

func (s *Scheduler) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	repaired, err := s.ledgerSvc.RecoverStalePending(ctx)
	if err != nil {
		s.logger.Error("Pending sweep failed", slog.String("error", err.Error()))
		return
	}
	if repaired > 0 {
		s.logger.Info("Pending sweep repaired transactions", slog.Int64("count", repaired))
	}
}

// Start launches the cron loop in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
