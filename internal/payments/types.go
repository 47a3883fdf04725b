// Package payments is the boundary to the hosted-checkout payment
// provider: session creation on the way out, signed event callbacks on
// the way back in. Nothing outside this package touches the provider's
// wire formats.
package payments

import (
	"encoding/json"
	"fmt"
)

// Event types the fulfillment flow cares about. Anything else is
// acknowledged and ignored.
const (
	EventCheckoutCompleted = "checkout.session.completed"
	EventPaymentFailed     = "payment_intent.payment_failed"
)

// Metadata keys round-tripped through the provider. The provider
// constrains metadata to a flat string-to-string map, so this is the only
// state correlating a callback to the original purchase intent.
const (
	MetaType         = "type"
	MetaTier         = "tier"
	MetaPendingJobID = "pendingJobId"
	MetaJobTitle     = "jobTitle"
	MetaCompanyName  = "companyName"
	MetaProfileID    = "profileId"
)

// CheckoutSession is the provider's session object, both as returned from
// session creation and as embedded in a completed-checkout event.
type CheckoutSession struct {
	ID            string            `json:"id"`
	URL           string            `json:"url"`
	CustomerEmail string            `json:"customer_email"`
	Metadata      map[string]string `json:"metadata"`
}

// Event is the webhook envelope.
type Event struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

// CheckoutSession decodes the event payload as a checkout session.
func (e *Event) CheckoutSession() (*CheckoutSession, error) {
	var session CheckoutSession
	if err := json.Unmarshal(e.Data.Object, &session); err != nil {
		return nil, fmt.Errorf("payments: decoding session from event %s: %w", e.ID, err)
	}
	return &session, nil
}
