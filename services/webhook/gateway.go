package webhook

import (
	"context"

	"github.com/piresc/giving/internal/pkg/models"
)

// EventVerifier authenticates a raw delivery
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/giving/services/webhook EventVerifier,PaymentProvider,Notifier
type EventVerifier interface {
	Verify(payload []byte, header string) (*models.Event, error)
}

// PaymentProvider reads authoritative state from the payment processor
type PaymentProvider interface {
	RetrieveSubscription(ctx context.Context, subscriptionID string) (*models.SubscriptionSnapshot, error)
}

// Notifier requests donor acknowledgments from the mailer
type Notifier interface {
	SendAcknowledgment(ctx context.Context, req models.AcknowledgmentRequest) error
}
