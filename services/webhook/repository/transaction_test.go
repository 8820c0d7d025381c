package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/giving/internal/pkg/apperrors"
	"github.com/piresc/giving/internal/pkg/models"
)

var transactionRowColumns = []string{
	"id", "provider_payment_intent_id", "provider_charge_id", "provider_invoice_id",
	"provider_subscription_id", "provider_customer_id", "contact_id", "amount", "currency", "fund_designation",
	"category", "payment_method", "status", "is_recurring", "is_anonymous", "notes", "failure_reason", "receipt_url",
	"fee_amount", "acknowledgment_sent", "acknowledgment_sent_at", "metadata", "transacted_at", "created_at", "updated_at",
}

func TestUpsertPaymentIntent(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewTransactionRepository(&models.Config{}, db)

	now := time.Now().UTC()
	txn := &models.Transaction{
		ID:                      "txn-1",
		ProviderPaymentIntentID: models.StringPtr("pi_123"),
		ContactID:               models.StringPtr("c1"),
		Amount:                  decimal.RequireFromString("50.00"),
		Currency:                "USD",
		FundDesignation:         "General",
		Category:                "Donation",
		PaymentMethod:           models.PaymentMethodCard,
		Status:                  models.TransactionStatusSucceeded,
		Metadata:                models.JSONMap{"contact_id": "c1"},
		TransactedAt:            now,
	}

	rows := sqlmock.NewRows(transactionRowColumns).AddRow(
		"txn-1", "pi_123", nil, nil,
		nil, nil, "c1", "50.00", "USD", "General",
		"Donation", "Stripe", "succeeded", false, false, nil, nil, nil,
		"0", false, nil, []byte(`{"contact_id":"c1"}`), now, now, now,
	)
	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (provider_payment_intent_id) WHERE provider_payment_intent_id IS NOT NULL DO UPDATE")).
		WillReturnRows(rows)

	stored, err := repo.UpsertPaymentIntent(context.Background(), txn)
	require.NoError(t, err)
	assert.Equal(t, "txn-1", stored.ID)
	assert.Equal(t, models.TransactionStatusSucceeded, stored.Status)
	assert.True(t, decimal.RequireFromString("50").Equal(stored.Amount))
	assert.Equal(t, "c1", *stored.ContactID)
	assert.Equal(t, "c1", stored.Metadata["contact_id"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyChargeOutcome(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	update := regexp.QuoteMeta("UPDATE transactions SET")

	t.Run("succeeded charge carries its fee", func(t *testing.T) {
		db, mock, cleanup := setupMockDB(t)
		defer cleanup()
		repo := NewTransactionRepository(&models.Config{}, db)

		fee := decimal.RequireFromString("1.75")
		mock.ExpectExec(update).
			WithArgs("pi_123", "ch_1", "https://receipt", fee, "succeeded", nil, at).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.ApplyChargeOutcome(context.Background(), models.ChargeOutcome{
			PaymentIntentID: "pi_123",
			ChargeID:        "ch_1",
			Status:          models.TransactionStatusSucceeded,
			ReceiptURL:      models.StringPtr("https://receipt"),
			FeeAmount:       fee,
		}, at)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed charge leaves fee alone", func(t *testing.T) {
		db, mock, cleanup := setupMockDB(t)
		defer cleanup()
		repo := NewTransactionRepository(&models.Config{}, db)

		mock.ExpectExec(update).
			WithArgs("pi_123", "ch_2", nil, nil, "failed", "card declined", at).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.ApplyChargeOutcome(context.Background(), models.ChargeOutcome{
			PaymentIntentID: "pi_123",
			ChargeID:        "ch_2",
			Status:          models.TransactionStatusFailed,
			FailureReason:   models.StringPtr("card declined"),
		}, at)
		assert.NoError(t, err)
	})

	t.Run("unknown payment intent", func(t *testing.T) {
		db, mock, cleanup := setupMockDB(t)
		defer cleanup()
		repo := NewTransactionRepository(&models.Config{}, db)

		mock.ExpectExec(update).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.ApplyChargeOutcome(context.Background(), models.ChargeOutcome{
			PaymentIntentID: "pi_missing",
			ChargeID:        "ch_3",
			Status:          models.TransactionStatusSucceeded,
		}, at)
		assert.ErrorIs(t, err, apperrors.ErrTransactionNotFound)
	})
}

func TestAppendInvoicePayment(t *testing.T) {
	insert := regexp.QuoteMeta("ON CONFLICT (provider_invoice_id) WHERE provider_invoice_id IS NOT NULL DO NOTHING")
	txn := func() *models.Transaction {
		return &models.Transaction{
			ProviderInvoiceID:      models.StringPtr("in_1"),
			ProviderSubscriptionID: models.StringPtr("sub_1"),
			Amount:                 decimal.RequireFromString("25.00"),
			Currency:               "USD",
			Status:                 models.TransactionStatusSucceeded,
			IsRecurring:            true,
		}
	}

	testCases := []struct {
		name       string
		result     error
		affected   int64
		wantInsert bool
		wantErr    bool
	}{
		{name: "new invoice", affected: 1, wantInsert: true},
		{name: "replayed invoice", affected: 0, wantInsert: false},
		{name: "database failure", result: errors.New("deadlock"), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock, cleanup := setupMockDB(t)
			defer cleanup()
			repo := NewTransactionRepository(&models.Config{}, db)

			exp := mock.ExpectExec(insert)
			if tc.result != nil {
				exp.WillReturnError(tc.result)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tc.affected))
			}

			row := txn()
			inserted, err := repo.AppendInvoicePayment(context.Background(), row)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantInsert, inserted)
			assert.NotEmpty(t, row.ID)
		})
	}
}

func TestMarkDisputed(t *testing.T) {
	at := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	dispute := models.Dispute{
		ChargeID:  "ch_1",
		DisputeID: "dp_1",
		Reason:    "fraudulent",
		Amount:    decimal.RequireFromString("50.00"),
		Currency:  "USD",
	}

	t.Run("flags the charge", func(t *testing.T) {
		db, mock, cleanup := setupMockDB(t)
		defer cleanup()
		repo := NewTransactionRepository(&models.Config{}, db)

		mock.ExpectExec(regexp.QuoteMeta("status = 'disputed'")).
			WithArgs("ch_1", "(dp_1)", "Dispute created (dp_1): fraudulent. Amount: 50.00 USD", at).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.MarkDisputed(context.Background(), dispute, at))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown charge", func(t *testing.T) {
		db, mock, cleanup := setupMockDB(t)
		defer cleanup()
		repo := NewTransactionRepository(&models.Config{}, db)

		mock.ExpectExec(regexp.QuoteMeta("status = 'disputed'")).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM transactions WHERE provider_charge_id = $1")).
			WithArgs("ch_1").
			WillReturnError(sql.ErrNoRows)

		assert.ErrorIs(t, repo.MarkDisputed(context.Background(), dispute, at), apperrors.ErrTransactionNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed charge is not disputed", func(t *testing.T) {
		db, mock, cleanup := setupMockDB(t)
		defer cleanup()
		repo := NewTransactionRepository(&models.Config{}, db)

		mock.ExpectExec(regexp.QuoteMeta("WHERE provider_charge_id = $1 AND status IN ('succeeded', 'disputed')")).
			WithArgs("ch_1", "(dp_1)", "Dispute created (dp_1): fraudulent. Amount: 50.00 USD", at).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM transactions WHERE provider_charge_id = $1")).
			WithArgs("ch_1").
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("failed"))

		err := repo.MarkDisputed(context.Background(), dispute, at)
		assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
		assert.True(t, apperrors.Is(apperrors.Classify("charge.dispute.created", err), apperrors.KindLogic))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMarkAcknowledged(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewTransactionRepository(&models.Config{}, db)

	at := time.Now().UTC()
	mock.ExpectExec(regexp.QuoteMeta("WHERE id = $1 AND acknowledgment_sent = false")).
		WithArgs("txn-1", at).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.MarkAcknowledged(context.Background(), "txn-1", at))
	assert.NoError(t, mock.ExpectationsWereMet())
}
