package workers

import (
	"context"
	"time"

	"ldexchange_backend/internal/logger"
	"ldexchange_backend/internal/repositories"
)

const (
	maintenanceInterval = 1 * time.Hour
	pendingJobRetention = 7 * 24 * time.Hour
	scrapedJobRetention = 60 * 24 * time.Hour
)

// MaintenanceWorker keeps stored state converged with read-time rules:
// expired direct posts get marked, stale scraped listings and abandoned
// pending jobs get purged, lapsed boosts get cleared.
type MaintenanceWorker struct {
	jobRepo     repositories.JobRepository
	pendingRepo repositories.PendingJobRepository
	profileRepo repositories.FreelancerRepository
}

func NewMaintenanceWorker(
	jobRepo repositories.JobRepository,
	pendingRepo repositories.PendingJobRepository,
	profileRepo repositories.FreelancerRepository,
) *MaintenanceWorker {
	return &MaintenanceWorker{
		jobRepo:     jobRepo,
		pendingRepo: pendingRepo,
		profileRepo: profileRepo,
	}
}

// Start runs the sweep loop until ctx is cancelled.
func (w *MaintenanceWorker) Start(ctx context.Context) {
	go w.sweepLoop(ctx)
}

func (w *MaintenanceWorker) sweepLoop(ctx context.Context) {
	ticker := time.NewTicker(maintenanceInterval)
	defer ticker.Stop()

	// One pass on startup so a restarted server converges immediately.
	w.Sweep()

	for {
		select {
		case <-ctx.Done():
			logger.Info("maintenance worker stopped")
			return
		case <-ticker.C:
			w.Sweep()
		}
	}
}

// Sweep runs all maintenance passes once.
func (w *MaintenanceWorker) Sweep() {
	now := time.Now()

	if n, err := w.jobRepo.MarkExpired(now); err != nil {
		logger.Error("marking expired jobs failed", "error", err)
	} else if n > 0 {
		logger.Info("marked expired jobs", "count", n)
	}

	if n, err := w.jobRepo.DeleteScrapedBefore(now.Add(-scrapedJobRetention)); err != nil {
		logger.Error("purging stale scraped jobs failed", "error", err)
	} else if n > 0 {
		logger.Info("purged stale scraped jobs", "count", n)
	}

	if n, err := w.pendingRepo.DeleteOlderThan(now.Add(-pendingJobRetention)); err != nil {
		logger.Error("purging abandoned pending jobs failed", "error", err)
	} else if n > 0 {
		logger.Info("purged abandoned pending jobs", "count", n)
	}

	if n, err := w.profileRepo.ClearExpiredBoosts(now); err != nil {
		logger.Error("clearing expired boosts failed", "error", err)
	} else if n > 0 {
		logger.Info("cleared expired boosts", "count", n)
	}
}
