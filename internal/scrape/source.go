// Package scrape ingests listings from external job boards into the
// same jobs collection paid postings live in. Scraped listings carry
// their board's name as provenance and a bounded lifetime; they are
// never featured and never paid.
package scrape

import (
	"context"
	"net/http"
	"time"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Listing is a raw parsed job before normalization.
type Listing struct {
	Title       string
	Company     string
	Location    string
	Description string
	URL         string
	PostedAt    time.Time
}

// Source is one external job board.
type Source interface {
	// Name is a human-readable identifier, also stored as sourceSite.
	Name() string
	// Fetch returns up to maxJobs relevant listings.
	Fetch(ctx context.Context, maxJobs int) ([]Listing, error)
}

// Registry returns all available sources sharing one HTTP client.
func Registry(client *http.Client) []Source {
	return []Source{
		NewWeWorkRemotely(client),
		NewELearningIndustry(client),
	}
}

// NewHTTPClient builds the shared client for board fetches.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}
