package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/piresc/giving/internal/pkg/apperrors"
	"github.com/piresc/giving/internal/pkg/logger"
	"github.com/piresc/giving/internal/pkg/models"
	"github.com/piresc/giving/internal/utils"
)

const (
	recurringCategory    = "Recurring Donation"
	defaultFailureReason = "Payment failed"
)

var (
	errMissingPaymentIntent = errors.New("missing payment intent id")
	errMissingCharge        = errors.New("missing charge id")
)

func (uc *webhookUC) handlePaymentIntentSucceeded(ctx context.Context, event *models.Event, pi *models.PaymentIntentObject) error {
	if pi.ID == "" {
		return apperrors.Validation(string(event.Type), errMissingPaymentIntent)
	}
	if pi.Invoice != "" {
		logger.DebugCtx(ctx, "Payment intent belongs to an invoice, recorded by the invoice event",
			logger.String("payment_intent_id", pi.ID))
		return nil
	}

	txn := uc.paymentIntentTransaction(event, pi, models.TransactionStatusSucceeded)
	if txn.ContactID == nil && !txn.IsAnonymous && pi.ReceiptEmail != "" {
		txn.ContactID = uc.resolveContact(ctx, pi.ReceiptEmail, pi.Metadata[models.MetadataDonorName])
	}

	stored, err := uc.txns.UpsertPaymentIntent(ctx, txn)
	if err != nil {
		return apperrors.Classify(string(event.Type), err)
	}

	uc.acknowledge(ctx, stored)
	return nil
}

func (uc *webhookUC) handlePaymentIntentFailed(ctx context.Context, event *models.Event, pi *models.PaymentIntentObject) error {
	if pi.ID == "" {
		return apperrors.Validation(string(event.Type), errMissingPaymentIntent)
	}
	if pi.Invoice != "" {
		return nil
	}

	reason := defaultFailureReason
	if pi.LastPaymentError != nil && pi.LastPaymentError.Message != "" {
		reason = pi.LastPaymentError.Message
	}

	txn := uc.paymentIntentTransaction(event, pi, models.TransactionStatusFailed)
	txn.Notes = &reason
	txn.FailureReason = &reason

	if _, err := uc.txns.UpsertPaymentIntent(ctx, txn); err != nil {
		return apperrors.Classify(string(event.Type), err)
	}
	return nil
}

func (uc *webhookUC) handleChargeSucceeded(ctx context.Context, event *models.Event, ch *models.ChargeObject) error {
	return uc.applyCharge(ctx, event, ch, models.ChargeOutcome{
		Status:     models.TransactionStatusSucceeded,
		ReceiptURL: models.StringPtr(ch.ReceiptURL),
		FeeAmount:  models.MinorToMajor(ch.ApplicationFeeAmount, ch.Currency),
	})
}

func (uc *webhookUC) handleChargeFailed(ctx context.Context, event *models.Event, ch *models.ChargeObject) error {
	reason := ch.FailureMessage
	if reason == "" {
		reason = defaultFailureReason
	}
	return uc.applyCharge(ctx, event, ch, models.ChargeOutcome{
		Status:        models.TransactionStatusFailed,
		FailureReason: &reason,
	})
}

func (uc *webhookUC) applyCharge(ctx context.Context, event *models.Event, ch *models.ChargeObject, outcome models.ChargeOutcome) error {
	if ch.ID == "" {
		return apperrors.Validation(string(event.Type), errMissingCharge)
	}
	if ch.Invoice != "" {
		logger.DebugCtx(ctx, "Charge belongs to an invoice, recorded by the invoice event",
			logger.String("charge_id", ch.ID))
		return nil
	}
	if ch.PaymentIntent == "" {
		return apperrors.Validation(string(event.Type), errMissingPaymentIntent)
	}

	outcome.PaymentIntentID = string(ch.PaymentIntent)
	outcome.ChargeID = ch.ID

	if err := uc.txns.ApplyChargeOutcome(ctx, outcome, uc.now()); err != nil {
		return apperrors.Classify(string(event.Type), err)
	}
	return nil
}

// paymentIntentTransaction maps a payment intent and its form metadata onto a ledger row
func (uc *webhookUC) paymentIntentTransaction(event *models.Event, pi *models.PaymentIntentObject, status models.TransactionStatus) *models.Transaction {
	meta := pi.Metadata
	paymentIntentID := pi.ID
	fund := valueOr(meta[models.MetadataFundDesignation], uc.defaultFund())

	return &models.Transaction{
		ProviderPaymentIntentID: &paymentIntentID,
		ProviderCustomerID:      models.StringPtr(string(pi.Customer)),
		ContactID:               models.StringPtr(meta[models.MetadataContactID]),
		Amount:                  models.MinorToMajor(pi.Amount, pi.Currency),
		Currency:                models.NormalizeCurrency(pi.Currency),
		FundDesignation:         fund,
		Category:                valueOr(meta[models.MetadataCategory], fund),
		PaymentMethod:           models.PaymentMethodCard,
		Status:                  status,
		IsAnonymous:             parseFlag(meta[models.MetadataIsAnonymous]),
		Notes:                   models.StringPtr(meta[models.MetadataNotes]),
		Metadata:                models.JSONMap(meta),
		TransactedAt:            event.CreatedAt(),
	}
}

// resolveContact finds or creates the contact for email. Failures leave the row unlinked.
func (uc *webhookUC) resolveContact(ctx context.Context, email, name string) *string {
	fields := []logger.Field{logger.String("email", utils.MaskEmail(email))}

	if !utils.IsValidEmail(email) {
		logger.WarnCtx(ctx, "Ignoring invalid receipt email", fields...)
		return nil
	}

	id, found, err := uc.contacts.FindByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		logger.WarnCtx(ctx, "Contact lookup failed", append(fields, logger.Err(err))...)
		return nil
	}
	if found {
		return &id
	}

	id, err = uc.contacts.Create(ctx, models.NewContactFields(email, name))
	if err != nil {
		logger.WarnCtx(ctx, "Contact creation failed", append(fields, logger.Err(err))...)
		return nil
	}

	logger.InfoCtx(ctx, "Created contact for donor", append(fields, logger.String("contact_id", id))...)
	return &id
}

// acknowledge requests a thank-you once per transaction. Failures never fail the event.
func (uc *webhookUC) acknowledge(ctx context.Context, txn *models.Transaction) {
	if txn == nil || txn.Status != models.TransactionStatusSucceeded || txn.IsAnonymous ||
		txn.ContactID == nil || *txn.ContactID == "" || txn.AcknowledgmentSent {
		return
	}

	req := models.AcknowledgmentRequest{
		ContactID:       *txn.ContactID,
		TransactionID:   txn.ID,
		Amount:          txn.Amount.StringFixed(2),
		Currency:        txn.Currency,
		FundDesignation: txn.FundDesignation,
		TransactedAt:    txn.TransactedAt.UTC().Format(time.RFC3339),
	}
	if txn.ProviderPaymentIntentID != nil {
		req.PaymentIntentID = *txn.ProviderPaymentIntentID
	}

	fields := []logger.Field{logger.String("transaction_id", txn.ID), logger.String("contact_id", req.ContactID)}

	if err := uc.notifier.SendAcknowledgment(ctx, req); err != nil {
		logger.WarnCtx(ctx, "Failed to request donor acknowledgment", append(fields, logger.Err(err))...)
		return
	}
	if err := uc.txns.MarkAcknowledged(ctx, txn.ID, uc.now()); err != nil {
		logger.WarnCtx(ctx, "Failed to record acknowledgment", append(fields, logger.Err(err))...)
	}
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func parseFlag(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
