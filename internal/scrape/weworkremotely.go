package scrape

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// WeWorkRemotely ingests the board's RSS feed. The feed covers every
// category, so listings are keyword-filtered down to L&D roles.
type WeWorkRemotely struct {
	client  *http.Client
	feedURL string
}

func NewWeWorkRemotely(client *http.Client) *WeWorkRemotely {
	return &WeWorkRemotely{
		client:  client,
		feedURL: "https://weworkremotely.com/remote-jobs.rss",
	}
}

func (w *WeWorkRemotely) Name() string {
	return "We Work Remotely"
}

type wwrFeed struct {
	Channel struct {
		Items []wwrItem `xml:"item"`
	} `xml:"channel"`
}

type wwrItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Category    string `xml:"category"`
	PubDate     string `xml:"pubDate"`
}

func (w *WeWorkRemotely) Fetch(ctx context.Context, maxJobs int) ([]Listing, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("weworkremotely: building request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weworkremotely: fetching feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weworkremotely: feed returned status %d", resp.StatusCode)
	}

	var feed wwrFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("weworkremotely: parsing feed: %w", err)
	}

	var listings []Listing
	for _, item := range feed.Channel.Items {
		if len(listings) >= maxJobs {
			break
		}
		if !IsLDRelated(item.Title + " " + item.Description + " " + item.Category) {
			continue
		}

		// Feed titles come as "Company: Job Title".
		company, title, ok := strings.Cut(item.Title, ":")
		if !ok {
			title = item.Title
			company = ""
		}

		postedAt := time.Now()
		if parsed, err := time.Parse(time.RFC1123Z, item.PubDate); err == nil {
			postedAt = parsed
		}

		listings = append(listings, Listing{
			Title:       strings.TrimSpace(title),
			Company:     strings.TrimSpace(company),
			Location:    "Remote",
			Description: strings.TrimSpace(item.Description),
			URL:         strings.TrimSpace(item.Link),
			PostedAt:    postedAt,
		})
	}

	return listings, nil
}
