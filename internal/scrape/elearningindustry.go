package scrape

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// ELearningIndustry scrapes the board's HTML listing page. The board is
// L&D-only, so no keyword filter is needed.
type ELearningIndustry struct {
	client  *http.Client
	baseURL string
}

func NewELearningIndustry(client *http.Client) *ELearningIndustry {
	return &ELearningIndustry{
		client:  client,
		baseURL: "https://elearningindustry.com/jobs",
	}
}

func (e *ELearningIndustry) Name() string {
	return "eLearning Industry"
}

func (e *ELearningIndustry) Fetch(ctx context.Context, maxJobs int) ([]Listing, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("elearningindustry: building request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("elearningindustry: fetching listing page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("elearningindustry: unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("elearningindustry: parsing HTML: %w", err)
	}

	return e.parseListings(doc, maxJobs), nil
}

func (e *ELearningIndustry) parseListings(doc *goquery.Document, maxJobs int) []Listing {
	var listings []Listing

	doc.Find("article.job-listing").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if len(listings) >= maxJobs {
			return false
		}

		title := strings.TrimSpace(s.Find(".job-title a").Text())
		href, _ := s.Find(".job-title a").Attr("href")
		if title == "" || href == "" {
			return true
		}

		listings = append(listings, Listing{
			Title:       title,
			Company:     strings.TrimSpace(s.Find(".job-company").Text()),
			Location:    strings.TrimSpace(s.Find(".job-location").Text()),
			Description: strings.TrimSpace(s.Find(".job-excerpt").Text()),
			URL:         absoluteURL(e.baseURL, href),
			PostedAt:    time.Now(),
		})
		return true
	})

	return listings
}

func absoluteURL(base, href string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return baseURL.ResolveReference(ref).String()
}
