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

const recurringDonationColumns = `id, contact_id, provider_subscription_id, amount, currency, interval_type,
	interval_count, fund_designation, status, started_at, next_payment_date, cancelled_at, created_at, updated_at`

// RecurringDonationRepo persists subscription mirrors
type RecurringDonationRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewRecurringDonationRepository(cfg *models.Config, db *sqlx.DB) *RecurringDonationRepo {
	return &RecurringDonationRepo{
		cfg: cfg,
		db:  db,
	}
}

// Create inserts the donation unless its subscription is already mirrored
func (r *RecurringDonationRepo) Create(ctx context.Context, d *models.RecurringDonation) (bool, error) {
	query := `
		INSERT INTO recurring_donations (
			id, contact_id, provider_subscription_id, amount, currency, interval_type, interval_count,
			fund_designation, status, started_at, next_payment_date, cancelled_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
		ON CONFLICT (provider_subscription_id) DO NOTHING
	`

	if d.ID == "" {
		d.ID = uuid.NewString()
	}

	result, err := r.db.ExecContext(ctx, query,
		d.ID,
		d.ContactID,
		d.ProviderSubscriptionID,
		d.Amount,
		d.Currency,
		d.IntervalType,
		d.IntervalCount,
		d.FundDesignation,
		string(d.Status),
		d.StartedAt,
		d.NextPaymentDate,
		d.CancelledAt,
		time.Now().UTC(),
	)
	if err != nil {
		return false, fmt.Errorf("failed to create recurring donation: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return rows == 1, nil
}

// GetBySubscriptionID returns the donation mirroring subscriptionID
func (r *RecurringDonationRepo) GetBySubscriptionID(ctx context.Context, subscriptionID string) (*models.RecurringDonation, error) {
	query := `SELECT ` + recurringDonationColumns + ` FROM recurring_donations WHERE provider_subscription_id = $1`

	var d models.RecurringDonation
	err := r.db.GetContext(ctx, &d, query, subscriptionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrRecurringDonationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recurring donation: %w", err)
	}

	return &d, nil
}

// UpdateStatus sets status unless the donation is cancelled and returns the stored status
func (r *RecurringDonationRepo) UpdateStatus(ctx context.Context, subscriptionID string, status models.RecurringStatus, at time.Time) (models.RecurringStatus, error) {
	query := `
		UPDATE recurring_donations SET
			status = CASE WHEN status = 'cancelled' THEN status ELSE $2 END,
			updated_at = $3
		WHERE provider_subscription_id = $1
		RETURNING status
	`

	var stored string
	err := r.db.QueryRowxContext(ctx, query, subscriptionID, string(status), at.UTC()).Scan(&stored)
	if errors.Is(err, sql.ErrNoRows) {
		return "", apperrors.ErrRecurringDonationNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to update recurring donation status: %w", err)
	}

	return models.RecurringStatus(stored), nil
}

// ApplySnapshot writes the provider's view of the subscription, keeping cancelled terminal.
// An empty snapshot status leaves the stored status unchanged.
func (r *RecurringDonationRepo) ApplySnapshot(ctx context.Context, snapshot *models.SubscriptionSnapshot, at time.Time) error {
	query := `
		UPDATE recurring_donations SET
			status = CASE WHEN status = 'cancelled' OR $2 = '' THEN status ELSE $2 END,
			next_payment_date = COALESCE($3, next_payment_date),
			cancelled_at = CASE WHEN $2 = 'cancelled' THEN COALESCE(cancelled_at, $4) ELSE cancelled_at END,
			updated_at = $4
		WHERE provider_subscription_id = $1
	`

	var nextPayment *time.Time
	if !snapshot.CurrentPeriodEnd.IsZero() {
		t := snapshot.CurrentPeriodEnd.UTC()
		nextPayment = &t
	}

	result, err := r.db.ExecContext(ctx, query,
		snapshot.SubscriptionID,
		string(snapshot.Status),
		nextPayment,
		at.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to apply subscription snapshot: %w", err)
	}

	return requireRow(result, apperrors.ErrRecurringDonationNotFound)
}

// Cancel marks the donation cancelled; the first cancellation time wins
func (r *RecurringDonationRepo) Cancel(ctx context.Context, subscriptionID string, at time.Time) error {
	query := `
		UPDATE recurring_donations SET
			status = 'cancelled',
			cancelled_at = COALESCE(cancelled_at, $2),
			updated_at = $2
		WHERE provider_subscription_id = $1
	`

	result, err := r.db.ExecContext(ctx, query, subscriptionID, at.UTC())
	if err != nil {
		return fmt.Errorf("failed to cancel recurring donation: %w", err)
	}

	return requireRow(result, apperrors.ErrRecurringDonationNotFound)
}
