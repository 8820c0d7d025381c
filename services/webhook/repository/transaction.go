package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/giving/internal/pkg/apperrors"
	"github.com/piresc/giving/internal/pkg/models"
)

const transactionColumns = `id, provider_payment_intent_id, provider_charge_id, provider_invoice_id,
	provider_subscription_id, provider_customer_id, contact_id, amount, currency, fund_designation,
	category, payment_method, status, is_recurring, is_anonymous, notes, failure_reason, receipt_url,
	fee_amount, acknowledgment_sent, acknowledgment_sent_at, metadata, transacted_at, created_at, updated_at`

// TransactionRepo persists giving ledger rows
type TransactionRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewTransactionRepository(cfg *models.Config, db *sqlx.DB) *TransactionRepo {
	return &TransactionRepo{
		cfg: cfg,
		db:  db,
	}
}

// UpsertPaymentIntent creates or merges the row keyed by the payment intent.
// Status only moves up the pending < failed < succeeded < disputed order, and
// notes on a disputed row are left alone so dispute history survives replays.
func (r *TransactionRepo) UpsertPaymentIntent(ctx context.Context, txn *models.Transaction) (*models.Transaction, error) {
	query := `
		INSERT INTO transactions (
			id, provider_payment_intent_id, provider_customer_id, contact_id, amount, currency,
			fund_designation, category, payment_method, status, is_recurring, is_anonymous,
			notes, failure_reason, metadata, transacted_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $17)
		ON CONFLICT (provider_payment_intent_id) WHERE provider_payment_intent_id IS NOT NULL DO UPDATE SET
			provider_customer_id = COALESCE(EXCLUDED.provider_customer_id, transactions.provider_customer_id),
			contact_id = COALESCE(EXCLUDED.contact_id, transactions.contact_id),
			amount = EXCLUDED.amount,
			currency = EXCLUDED.currency,
			fund_designation = EXCLUDED.fund_designation,
			category = EXCLUDED.category,
			is_anonymous = EXCLUDED.is_anonymous,
			metadata = transactions.metadata || EXCLUDED.metadata,
			status = CASE
				WHEN transaction_status_rank(EXCLUDED.status) > transaction_status_rank(transactions.status)
				THEN EXCLUDED.status ELSE transactions.status END,
			notes = CASE
				WHEN transactions.status = 'disputed' THEN transactions.notes
				WHEN transaction_status_rank(EXCLUDED.status) > transaction_status_rank(transactions.status) THEN EXCLUDED.notes
				WHEN transaction_status_rank(EXCLUDED.status) = transaction_status_rank(transactions.status)
				THEN COALESCE(EXCLUDED.notes, transactions.notes)
				ELSE transactions.notes END,
			failure_reason = CASE
				WHEN transaction_status_rank(EXCLUDED.status) >= transaction_status_rank(transactions.status)
				THEN COALESCE(EXCLUDED.failure_reason, transactions.failure_reason)
				ELSE transactions.failure_reason END,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + transactionColumns

	if txn.ID == "" {
		txn.ID = uuid.NewString()
	}
	now := time.Now().UTC()

	var stored models.Transaction
	err := r.db.QueryRowxContext(ctx, query,
		txn.ID,
		txn.ProviderPaymentIntentID,
		txn.ProviderCustomerID,
		txn.ContactID,
		txn.Amount,
		txn.Currency,
		txn.FundDesignation,
		txn.Category,
		txn.PaymentMethod,
		string(txn.Status),
		txn.IsRecurring,
		txn.IsAnonymous,
		txn.Notes,
		txn.FailureReason,
		txn.Metadata,
		txn.TransactedAt,
		now,
	).StructScan(&stored)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert payment intent transaction: %w", err)
	}

	return &stored, nil
}

// ApplyChargeOutcome records the charge against its payment intent row
func (r *TransactionRepo) ApplyChargeOutcome(ctx context.Context, outcome models.ChargeOutcome, at time.Time) error {
	query := `
		UPDATE transactions SET
			provider_charge_id = CASE
				WHEN transaction_status_rank($5) >= transaction_status_rank(status) THEN $2
				ELSE provider_charge_id END,
			receipt_url = COALESCE($3, receipt_url),
			fee_amount = COALESCE($4, fee_amount),
			status = CASE
				WHEN transaction_status_rank($5) > transaction_status_rank(status) THEN $5
				ELSE status END,
			failure_reason = CASE
				WHEN $5 = 'failed' AND transaction_status_rank(status) <= 1 THEN COALESCE($6, failure_reason)
				ELSE failure_reason END,
			updated_at = $7
		WHERE provider_payment_intent_id = $1
	`

	var fee interface{}
	if outcome.Status == models.TransactionStatusSucceeded {
		fee = outcome.FeeAmount
	}

	result, err := r.db.ExecContext(ctx, query,
		outcome.PaymentIntentID,
		outcome.ChargeID,
		outcome.ReceiptURL,
		fee,
		string(outcome.Status),
		outcome.FailureReason,
		at.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to apply charge outcome: %w", err)
	}

	return requireRow(result, apperrors.ErrTransactionNotFound)
}

// AppendInvoicePayment adds the row for one paid invoice; a replayed invoice id inserts nothing
func (r *TransactionRepo) AppendInvoicePayment(ctx context.Context, txn *models.Transaction) (bool, error) {
	query := `
		INSERT INTO transactions (
			id, provider_charge_id, provider_invoice_id, provider_subscription_id, provider_customer_id,
			contact_id, amount, currency, fund_designation, category, payment_method, status,
			is_recurring, is_anonymous, notes, metadata, transacted_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $18)
		ON CONFLICT (provider_invoice_id) WHERE provider_invoice_id IS NOT NULL DO NOTHING
	`

	if txn.ID == "" {
		txn.ID = uuid.NewString()
	}

	result, err := r.db.ExecContext(ctx, query,
		txn.ID,
		txn.ProviderChargeID,
		txn.ProviderInvoiceID,
		txn.ProviderSubscriptionID,
		txn.ProviderCustomerID,
		txn.ContactID,
		txn.Amount,
		txn.Currency,
		txn.FundDesignation,
		txn.Category,
		txn.PaymentMethod,
		string(txn.Status),
		txn.IsRecurring,
		txn.IsAnonymous,
		txn.Notes,
		txn.Metadata,
		txn.TransactedAt,
		time.Now().UTC(),
	)
	if err != nil {
		return false, fmt.Errorf("failed to append invoice payment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return rows == 1, nil
}

// MarkDisputed flags the charge's row and appends the dispute note unless already present.
// Only succeeded (or already disputed) rows move; a pending or failed row yields
// ErrInvalidTransition so the event is retried once the charge succeeds.
func (r *TransactionRepo) MarkDisputed(ctx context.Context, dispute models.Dispute, at time.Time) error {
	query := `
		UPDATE transactions SET
			status = 'disputed',
			notes = CASE
				WHEN strpos(COALESCE(notes, ''), $2) > 0 THEN notes
				WHEN notes IS NULL OR notes = '' THEN $3
				ELSE notes || E'\n' || $3 END,
			updated_at = $4
		WHERE provider_charge_id = $1 AND status IN ('succeeded', 'disputed')
	`

	result, err := r.db.ExecContext(ctx, query, dispute.ChargeID, dispute.Marker(), dispute.Note(), at.UTC())
	if err != nil {
		return fmt.Errorf("failed to mark transaction disputed: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows > 0 {
		return nil
	}

	var status models.TransactionStatus
	err = r.db.QueryRowContext(ctx, `SELECT status FROM transactions WHERE provider_charge_id = $1 LIMIT 1`, dispute.ChargeID).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.ErrTransactionNotFound
		}
		return fmt.Errorf("failed to read disputed transaction: %w", err)
	}
	return fmt.Errorf("dispute on %s transaction: %w", status, apperrors.ErrInvalidTransition)
}

// MarkAcknowledged sets the acknowledgment flag once
func (r *TransactionRepo) MarkAcknowledged(ctx context.Context, transactionID string, at time.Time) error {
	query := `
		UPDATE transactions
		SET acknowledgment_sent = true, acknowledgment_sent_at = $2, updated_at = $2
		WHERE id = $1 AND acknowledgment_sent = false
	`

	if _, err := r.db.ExecContext(ctx, query, transactionID, at.UTC()); err != nil {
		return fmt.Errorf("failed to mark acknowledgment sent: %w", err)
	}
	return nil
}

func requireRow(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
