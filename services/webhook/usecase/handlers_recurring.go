package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/piresc/giving/internal/pkg/apperrors"
	"github.com/piresc/giving/internal/pkg/logger"
	"github.com/piresc/giving/internal/pkg/models"
)

var (
	errMissingInvoice      = errors.New("missing invoice id")
	errMissingSubscription = errors.New("missing subscription id")
	errMissingContact      = errors.New("subscription metadata has no contact_id")
	errMissingPrice        = errors.New("subscription has no priced item")
)

func (uc *webhookUC) handleInvoicePaymentSucceeded(ctx context.Context, event *models.Event, inv *models.InvoiceObject) error {
	op := string(event.Type)
	if inv.ID == "" {
		return apperrors.Validation(op, errMissingInvoice)
	}
	if inv.Subscription == "" {
		logger.DebugCtx(ctx, "Invoice has no subscription, nothing to record", logger.String("invoice_id", inv.ID))
		return nil
	}
	subscriptionID := string(inv.Subscription)

	donation, err := uc.donations.GetBySubscriptionID(ctx, subscriptionID)
	if err != nil && !errors.Is(err, apperrors.ErrRecurringDonationNotFound) {
		return apperrors.Classify(op, err)
	}

	meta := inv.SubscriptionMetadata()
	fund := valueOr(meta[models.MetadataFundDesignation], uc.defaultFund())
	contactID := models.StringPtr(meta[models.MetadataContactID])
	if donation != nil {
		fund = donation.FundDesignation
		contactID = models.StringPtr(donation.ContactID)
	}

	paidAt := event.CreatedAt()
	if inv.StatusTransitions.PaidAt > 0 {
		paidAt = time.Unix(inv.StatusTransitions.PaidAt, 0).UTC()
	}

	invoiceID := inv.ID
	txn := &models.Transaction{
		ProviderChargeID:       models.StringPtr(string(inv.Charge)),
		ProviderInvoiceID:      &invoiceID,
		ProviderSubscriptionID: &subscriptionID,
		ProviderCustomerID:     models.StringPtr(string(inv.Customer)),
		ContactID:              contactID,
		Amount:                 models.MinorToMajor(inv.AmountPaid, inv.Currency),
		Currency:               models.NormalizeCurrency(inv.Currency),
		FundDesignation:        fund,
		Category:               recurringCategory,
		PaymentMethod:          models.PaymentMethodCardRecurring,
		Status:                 models.TransactionStatusSucceeded,
		IsRecurring:            true,
		IsAnonymous:            parseFlag(meta[models.MetadataIsAnonymous]),
		Metadata:               models.JSONMap(meta),
		TransactedAt:           paidAt,
	}

	inserted, err := uc.txns.AppendInvoicePayment(ctx, txn)
	if err != nil {
		return apperrors.Classify(op, err)
	}

	fields := []logger.Field{logger.String("invoice_id", inv.ID), logger.String("subscription_id", subscriptionID)}
	if inserted {
		logger.InfoCtx(ctx, "Recorded recurring payment", fields...)
	} else {
		logger.InfoCtx(ctx, "Recurring payment already recorded", fields...)
	}

	if donation == nil {
		logger.WarnCtx(ctx, "Invoice paid for unknown subscription, skipping refresh", fields...)
		return nil
	}

	_, err = uc.sync.RefreshSubscription(ctx, subscriptionID)
	return err
}

func (uc *webhookUC) handleInvoicePaymentFailed(ctx context.Context, event *models.Event, inv *models.InvoiceObject) error {
	if inv.Subscription == "" {
		return nil
	}
	subscriptionID := string(inv.Subscription)

	status, err := uc.donations.UpdateStatus(ctx, subscriptionID, models.RecurringStatusPastDue, uc.now())
	if err != nil {
		return apperrors.Classify(string(event.Type), err)
	}

	if status == models.RecurringStatusCancelled {
		logger.InfoCtx(ctx, "Ignoring failed invoice for cancelled subscription", logger.String("subscription_id", subscriptionID))
	}
	return nil
}

func (uc *webhookUC) handleSubscriptionCreated(ctx context.Context, event *models.Event, sub *models.SubscriptionObject) error {
	op := string(event.Type)
	if sub.ID == "" {
		return apperrors.Validation(op, errMissingSubscription)
	}

	contactID := sub.Metadata[models.MetadataContactID]
	if contactID == "" {
		return apperrors.Validation(op, errMissingContact)
	}

	price := sub.FirstPrice()
	if price == nil {
		return apperrors.Validation(op, errMissingPrice)
	}

	status, ok := models.MapProviderSubscriptionStatus(sub.Status)
	if !ok {
		return apperrors.Validation(op, fmt.Errorf("unknown subscription status %q", sub.Status))
	}

	intervalType, intervalCount := "month", 1
	if price.Recurring != nil {
		intervalType = valueOr(price.Recurring.Interval, intervalType)
		if price.Recurring.IntervalCount > 0 {
			intervalCount = price.Recurring.IntervalCount
		}
	}

	currency := valueOr(price.Currency, sub.Currency)
	startedAt := event.CreatedAt()
	if sub.Created > 0 {
		startedAt = time.Unix(sub.Created, 0).UTC()
	}

	donation := &models.RecurringDonation{
		ContactID:              contactID,
		ProviderSubscriptionID: sub.ID,
		Amount:                 models.MinorToMajor(price.UnitAmount, currency),
		Currency:               models.NormalizeCurrency(currency),
		IntervalType:           intervalType,
		IntervalCount:          intervalCount,
		FundDesignation:        valueOr(sub.Metadata[models.MetadataFundDesignation], uc.defaultFund()),
		Status:                 status,
		StartedAt:              startedAt,
		NextPaymentDate:        unixPtr(sub.CurrentPeriodEnd),
	}
	if status == models.RecurringStatusCancelled {
		at := uc.now().UTC()
		donation.CancelledAt = &at
	}

	created, err := uc.donations.Create(ctx, donation)
	if err != nil {
		return apperrors.Classify(op, err)
	}
	if created {
		logger.InfoCtx(ctx, "Created recurring donation",
			logger.String("subscription_id", sub.ID), logger.String("contact_id", contactID))
	}
	return nil
}

func (uc *webhookUC) handleSubscriptionUpdated(ctx context.Context, event *models.Event, sub *models.SubscriptionObject) error {
	op := string(event.Type)
	if sub.ID == "" {
		return apperrors.Validation(op, errMissingSubscription)
	}

	status, ok := models.MapProviderSubscriptionStatus(sub.Status)
	if !ok {
		return apperrors.Validation(op, fmt.Errorf("unknown subscription status %q", sub.Status))
	}

	snapshot := &models.SubscriptionSnapshot{
		SubscriptionID: sub.ID,
		Status:         status,
		ProviderStatus: sub.Status,
		Metadata:       sub.Metadata,
	}
	if sub.CurrentPeriodEnd > 0 {
		snapshot.CurrentPeriodEnd = time.Unix(sub.CurrentPeriodEnd, 0).UTC()
	}

	if err := uc.donations.ApplySnapshot(ctx, snapshot, uc.now()); err != nil {
		return apperrors.Classify(op, err)
	}
	return nil
}

func (uc *webhookUC) handleSubscriptionDeleted(ctx context.Context, event *models.Event, sub *models.SubscriptionObject) error {
	if sub.ID == "" {
		return apperrors.Validation(string(event.Type), errMissingSubscription)
	}

	if err := uc.donations.Cancel(ctx, sub.ID, uc.now()); err != nil {
		return apperrors.Classify(string(event.Type), err)
	}

	logger.InfoCtx(ctx, "Cancelled recurring donation", logger.String("subscription_id", sub.ID))
	return nil
}

func unixPtr(sec int64) *time.Time {
	if sec <= 0 {
		return nil
	}
	t := time.Unix(sec, 0).UTC()
	return &t
}
