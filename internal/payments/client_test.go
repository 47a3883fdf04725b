package payments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCheckoutSession(t *testing.T) {
	var captured *http.Request
	var form map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		require.NoError(t, r.ParseForm())
		form = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "cs_test_1", "url": "https://pay.example.com/c/cs_test_1"}`))
	}))
	defer server.Close()

	client := NewClient("sk_test_abc", server.URL)
	session, err := client.CreateCheckoutSession(context.Background(), SessionParams{
		ProductName: "Featured Job Posting",
		UnitAmount:  19900,
		Currency:    "usd",
		SuccessURL:  "https://site.example.com/success",
		CancelURL:   "https://site.example.com/cancel",
		Metadata: map[string]string{
			MetaType: "job_posting",
			MetaTier: "featured",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "cs_test_1", session.ID)
	assert.Equal(t, "https://pay.example.com/c/cs_test_1", session.URL)

	assert.Equal(t, "/checkout/sessions", captured.URL.Path)
	assert.Equal(t, "Bearer sk_test_abc", captured.Header.Get("Authorization"))
	assert.NotEmpty(t, captured.Header.Get("Idempotency-Key"))

	assert.Equal(t, "payment", form["mode"][0])
	assert.Equal(t, "19900", form["line_items[0][amount]"][0])
	assert.Equal(t, "usd", form["line_items[0][currency]"][0])
	assert.Equal(t, "job_posting", form["metadata[type]"][0])
	assert.Equal(t, "featured", form["metadata[tier]"][0])
}

func TestCreateCheckoutSessionProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"message": "amount too small"}}`))
	}))
	defer server.Close()

	client := NewClient("sk_test_abc", server.URL)
	_, err := client.CreateCheckoutSession(context.Background(), SessionParams{UnitAmount: 1, Currency: "usd"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount too small")
}

func TestCreateCheckoutSessionUnconfigured(t *testing.T) {
	client := NewClient("", "")
	assert.False(t, client.Configured())

	_, err := client.CreateCheckoutSession(context.Background(), SessionParams{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
