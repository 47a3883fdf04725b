package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotConfigured means the secret key is missing. Checkout must fail
// before any provider I/O happens.
var ErrNotConfigured = errors.New("payments: secret key is not configured")

const defaultAPIBaseURL = "https://api.payments.example.com/v1"

// Client talks to the provider's hosted-checkout API.
type Client struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a provider client. baseURL may be empty to use the
// production endpoint; tests point it at a local stub.
func NewClient(secretKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultAPIBaseURL
	}
	return &Client{
		secretKey:  secretKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Configured reports whether a secret key is present.
func (c *Client) Configured() bool {
	return c.secretKey != ""
}

// SessionParams describes a one-time-payment checkout session with a
// single line item.
type SessionParams struct {
	ProductName        string
	ProductDescription string
	UnitAmount         int64 // cents
	Currency           string
	SuccessURL         string
	CancelURL          string
	Metadata           map[string]string
}

type providerError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// CreateCheckoutSession creates a hosted-checkout session and returns the
// session id and redirect URL.
func (c *Client) CreateCheckoutSession(ctx context.Context, params SessionParams) (*CheckoutSession, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("line_items[0][name]", params.ProductName)
	form.Set("line_items[0][description]", params.ProductDescription)
	form.Set("line_items[0][amount]", strconv.FormatInt(params.UnitAmount, 10))
	form.Set("line_items[0][currency]", params.Currency)
	form.Set("line_items[0][quantity]", "1")
	form.Set("success_url", params.SuccessURL)
	form.Set("cancel_url", params.CancelURL)
	for k, v := range params.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", k), v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("payments: building session request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("payments: session request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("payments: reading session response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var perr providerError
		if json.Unmarshal(body, &perr) == nil && perr.Error.Message != "" {
			return nil, fmt.Errorf("payments: provider error: %s", perr.Error.Message)
		}
		return nil, fmt.Errorf("payments: provider returned status %d", resp.StatusCode)
	}

	var session CheckoutSession
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("payments: decoding session response: %w", err)
	}
	return &session, nil
}
