package workers

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"ldexchange_backend/internal/logger"
	"ldexchange_backend/internal/scrape"
)

// ScrapeScheduler runs ingestion cycles on a cron interval.
type ScrapeScheduler struct {
	cron   *cron.Cron
	worker *scrape.Worker
	spec   string
}

func NewScrapeScheduler(worker *scrape.Worker, intervalHours int) *ScrapeScheduler {
	return &ScrapeScheduler{
		cron:   cron.New(),
		worker: worker,
		spec:   fmt.Sprintf("@every %dh", intervalHours),
	}
}

// Start registers the cycle and kicks one off immediately so a fresh
// deployment has listings before the first tick.
func (s *ScrapeScheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.worker.RunCycle(ctx)
	})
	if err != nil {
		return fmt.Errorf("registering scrape cycle: %w", err)
	}

	s.cron.Start()
	logger.Info("scrape scheduler started", "spec", s.spec)

	go s.worker.RunCycle(ctx)
	return nil
}

func (s *ScrapeScheduler) Stop() {
	s.cron.Stop()
	logger.Info("scrape scheduler stopped")
}
