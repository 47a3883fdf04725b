package scrape

import (
	"context"
	"time"

	"ldexchange_backend/internal/logger"
	"ldexchange_backend/internal/models"
	"ldexchange_backend/internal/repositories"
)

// scrapedJobLifetime bounds how long an ingested listing stays visible.
// Boards do not report closings, so age is the only signal.
const scrapedJobLifetime = 60 * 24 * time.Hour

// Worker runs ingestion cycles across all registered sources.
type Worker struct {
	sources      []Source
	jobRepo      repositories.JobRepository
	maxPerSource int

	now func() time.Time
}

func NewWorker(sources []Source, jobRepo repositories.JobRepository, maxPerSource int) *Worker {
	return &Worker{
		sources:      sources,
		jobRepo:      jobRepo,
		maxPerSource: maxPerSource,
		now:          time.Now,
	}
}

// RunCycle fetches every source and upserts what it finds. A failing
// source never aborts the cycle; the others still run.
func (w *Worker) RunCycle(ctx context.Context) {
	for _, source := range w.sources {
		listings, err := source.Fetch(ctx, w.maxPerSource)
		if err != nil {
			logger.Error("scrape source failed", "source", source.Name(), "error", err)
			continue
		}

		created, updated := 0, 0
		for _, listing := range listings {
			wasNew, err := w.ingest(source.Name(), listing)
			if err != nil {
				logger.Error("scrape ingest failed", "source", source.Name(), "url", listing.URL, "error", err)
				continue
			}
			if wasNew {
				created++
			} else {
				updated++
			}
		}

		logger.Info("scrape cycle finished",
			"source", source.Name(),
			"fetched", len(listings),
			"created", created,
			"refreshed", updated,
		)
	}
}

// ingest upserts one listing keyed on its source URL. Re-seeing a known
// listing only refreshes scrapedAt; retention is driven by postedAt, so
// the refresh records when the board last showed the listing and nothing
// more.
func (w *Worker) ingest(sourceName string, listing Listing) (bool, error) {
	now := w.now()

	existing, err := w.jobRepo.FindBySourceURL(listing.URL)
	if err == nil {
		existing.ScrapedAt = &now
		return false, w.jobRepo.Save(existing)
	}
	if err != repositories.ErrJobNotFound {
		return false, err
	}

	postedAt := listing.PostedAt
	if postedAt.IsZero() {
		postedAt = now
	}

	job := &models.Job{
		Title:           listing.Title,
		Company:         listing.Company,
		Location:        listing.Location,
		LocationType:    DetectLocationType(listing.Location, listing.Description),
		Description:     listing.Description,
		Requirements:    []string{},
		Category:        DetectCategory(listing.Title, listing.Description),
		ExperienceLevel: DetectExperienceLevel(listing.Title, listing.Description),
		EmploymentType:  DetectEmploymentType(listing.Title, listing.Description),
		SourceURL:       listing.URL,
		SourceSite:      sourceName,
		PostedAt:        postedAt,
		ExpiresAt:       postedAt.Add(scrapedJobLifetime),
		ScrapedAt:       &now,
		IsFeatured:      false,
		IsDirectPost:    false,
		Status:          models.JobStatusActive,
	}
	return true, w.jobRepo.Create(job)
}
