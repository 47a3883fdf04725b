package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eliSamplePage = `<!DOCTYPE html>
<html><body>
  <article class="job-listing">
    <h2 class="job-title"><a href="/jobs/senior-id-acme">Senior Instructional Designer</a></h2>
    <span class="job-company">Acme Learning</span>
    <span class="job-location">Remote (US)</span>
    <p class="job-excerpt">Design courses for enterprise customers.</p>
  </article>
  <article class="job-listing">
    <h2 class="job-title"><a href="https://boards.example.com/globex/lms-admin">LMS Administrator</a></h2>
    <span class="job-company">Globex</span>
    <span class="job-location">Chicago, IL</span>
    <p class="job-excerpt">Run our Docebo instance.</p>
  </article>
  <article class="job-listing">
    <h2 class="job-title"><a href="/jobs/broken"></a></h2>
  </article>
</body></html>`

func TestELearningIndustryFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(eliSamplePage))
	}))
	defer server.Close()

	source := NewELearningIndustry(server.Client())
	source.baseURL = server.URL

	listings, err := source.Fetch(context.Background(), 50)
	require.NoError(t, err)

	// The entry with no title is skipped.
	require.Len(t, listings, 2)

	assert.Equal(t, "Senior Instructional Designer", listings[0].Title)
	assert.Equal(t, "Acme Learning", listings[0].Company)
	assert.Equal(t, "Remote (US)", listings[0].Location)
	assert.Equal(t, server.URL+"/jobs/senior-id-acme", listings[0].URL)

	// Absolute hrefs pass through untouched.
	assert.Equal(t, "https://boards.example.com/globex/lms-admin", listings[1].URL)
}

func TestELearningIndustryFetchRespectsMax(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(eliSamplePage))
	}))
	defer server.Close()

	source := NewELearningIndustry(server.Client())
	source.baseURL = server.URL

	listings, err := source.Fetch(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, listings, 1)
}
