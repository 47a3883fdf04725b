package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SignatureHeader is the HTTP header carrying the callback signature.
const SignatureHeader = "Signature"

// ErrInvalidSignature covers every verification failure: malformed
// header, wrong secret, stale timestamp. Callers must not distinguish.
var ErrInvalidSignature = errors.New("payments: invalid webhook signature")

// DefaultTolerance bounds how old a signed callback may be. Replays past
// this window are rejected even with a valid MAC.
const DefaultTolerance = 5 * time.Minute

// ConstructEvent verifies the signature header over payload and decodes
// the event envelope. This is the single authenticity boundary for the
// whole fulfillment path.
func ConstructEvent(payload []byte, header, secret string) (Event, error) {
	return constructEvent(payload, header, secret, DefaultTolerance, time.Now())
}

func constructEvent(payload []byte, header, secret string, tolerance time.Duration, now time.Time) (Event, error) {
	ts, sig, err := parseSignatureHeader(header)
	if err != nil {
		return Event{}, ErrInvalidSignature
	}

	if now.Sub(time.Unix(ts, 0)) > tolerance {
		return Event{}, ErrInvalidSignature
	}

	expected := computeSignature(ts, payload, secret)
	received, err := hex.DecodeString(sig)
	if err != nil || !hmac.Equal(expected, received) {
		return Event{}, ErrInvalidSignature
	}

	var event Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return Event{}, fmt.Errorf("payments: decoding event: %w", err)
	}
	return event, nil
}

// parseSignatureHeader splits "t=<unix>,v1=<hex>".
func parseSignatureHeader(header string) (ts int64, sig string, err error) {
	for _, part := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch key {
		case "t":
			ts, err = strconv.ParseInt(value, 10, 64)
			if err != nil {
				return 0, "", err
			}
		case "v1":
			sig = value
		}
	}
	if ts == 0 || sig == "" {
		return 0, "", errors.New("payments: malformed signature header")
	}
	return ts, sig, nil
}

// computeSignature is HMAC-SHA256 over "<timestamp>.<payload>".
func computeSignature(ts int64, payload []byte, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", ts)
	mac.Write(payload)
	return mac.Sum(nil)
}

// SignPayload produces a valid signature header for payload at the given
// time. The provider does this on its side; tests use it to forge
// deliveries.
func SignPayload(payload []byte, secret string, at time.Time) string {
	ts := at.Unix()
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(computeSignature(ts, payload, secret)))
}
