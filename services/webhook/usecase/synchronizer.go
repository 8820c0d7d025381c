package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/piresc/giving/internal/pkg/apperrors"
	"github.com/piresc/giving/internal/pkg/logger"
	"github.com/piresc/giving/internal/pkg/models"
	"github.com/piresc/giving/services/webhook"
)

// Synchronizer copies the provider's authoritative subscription state onto the local mirror
type Synchronizer struct {
	provider  webhook.PaymentProvider
	donations webhook.RecurringDonationRepo
	now       func() time.Time
}

func NewSynchronizer(provider webhook.PaymentProvider, donations webhook.RecurringDonationRepo, now func() time.Time) *Synchronizer {
	if now == nil {
		now = time.Now
	}
	return &Synchronizer{
		provider:  provider,
		donations: donations,
		now:       now,
	}
}

// RefreshSubscription fetches the subscription and applies status and next payment date.
// A provider failure fails the caller so the event is retried.
func (s *Synchronizer) RefreshSubscription(ctx context.Context, subscriptionID string) (*models.SubscriptionSnapshot, error) {
	snapshot, err := s.provider.RetrieveSubscription(ctx, subscriptionID)
	if err != nil {
		return nil, apperrors.Classify("retrieve subscription", err)
	}

	if err := s.donations.ApplySnapshot(ctx, snapshot, s.now()); err != nil {
		if errors.Is(err, apperrors.ErrRecurringDonationNotFound) {
			logger.WarnCtx(ctx, "No recurring donation to refresh", logger.String("subscription_id", subscriptionID))
			return snapshot, nil
		}
		return nil, apperrors.Classify("apply subscription snapshot", err)
	}

	return snapshot, nil
}
