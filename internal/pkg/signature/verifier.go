// Package signature authenticates payment provider webhook deliveries.
package signature

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/piresc/giving/internal/pkg/apperrors"
	"github.com/piresc/giving/internal/pkg/models"
	"github.com/stripe/stripe-go/v74/webhook"
)

// HeaderName is the request header carrying the signature
const HeaderName = "Stripe-Signature"

// DefaultTolerance is the accepted clock skew between signing and receipt
const DefaultTolerance = webhook.DefaultTolerance

var (
	ErrMissingSignature = errors.New("missing signature header")
	ErrMalformedEvent   = errors.New("malformed event envelope")
)

// Verifier checks the keyed digest over "timestamp.payload" and decodes the event
type Verifier struct {
	secret    string
	tolerance time.Duration
}

// NewVerifier creates a verifier for the given shared secret
func NewVerifier(secret string, tolerance time.Duration) *Verifier {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Verifier{
		secret:    secret,
		tolerance: tolerance,
	}
}

// Verify authenticates payload against header and returns the typed event.
// Every failure is an authentication error and nothing is mutated.
func (v *Verifier) Verify(payload []byte, header string) (*models.Event, error) {
	if header == "" {
		return nil, apperrors.Authentication("verify signature", ErrMissingSignature)
	}

	if err := webhook.ValidatePayloadWithTolerance(payload, header, v.secret, v.tolerance); err != nil {
		return nil, apperrors.Authentication("verify signature", err)
	}

	var event models.Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, apperrors.Authentication("decode event", fmt.Errorf("%w: %v", ErrMalformedEvent, err))
	}
	if event.ID == "" || event.Type == "" {
		return nil, apperrors.Authentication("decode event", ErrMalformedEvent)
	}
	event.Raw = json.RawMessage(payload)

	return &event, nil
}

// Sign builds a signature header for payload as the provider would at time at
func Sign(payload []byte, secret string, at time.Time) string {
	sig := webhook.ComputeSignature(at, payload, secret)
	return fmt.Sprintf("t=%d,v1=%s", at.Unix(), hex.EncodeToString(sig))
}
