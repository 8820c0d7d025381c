package repository

import (
	"context"
	"database/sql"
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

func TestRecurringDonationCreate(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewRecurringDonationRepository(&models.Config{}, db)

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (provider_subscription_id) DO NOTHING")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	created, err := repo.Create(context.Background(), &models.RecurringDonation{
		ContactID:              "c1",
		ProviderSubscriptionID: "sub_1",
		Amount:                 decimal.RequireFromString("25.00"),
		Currency:               "USD",
		IntervalType:           "month",
		IntervalCount:          1,
		Status:                 models.RecurringStatusActive,
		StartedAt:              time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBySubscriptionID(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewRecurringDonationRepository(&models.Config{}, db)

	mock.ExpectQuery("^SELECT (.+) FROM recurring_donations WHERE provider_subscription_id").
		WithArgs("sub_missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetBySubscriptionID(context.Background(), "sub_missing")
	assert.ErrorIs(t, err, apperrors.ErrRecurringDonationNotFound)
}

func TestUpdateStatus(t *testing.T) {
	at := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	update := regexp.QuoteMeta("status = CASE WHEN status = 'cancelled' THEN status ELSE $2 END")

	t.Run("cancelled stays cancelled", func(t *testing.T) {
		db, mock, cleanup := setupMockDB(t)
		defer cleanup()
		repo := NewRecurringDonationRepository(&models.Config{}, db)

		mock.ExpectQuery(update).
			WithArgs("sub_1", "past_due", at).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("cancelled"))

		status, err := repo.UpdateStatus(context.Background(), "sub_1", models.RecurringStatusPastDue, at)
		require.NoError(t, err)
		assert.Equal(t, models.RecurringStatusCancelled, status)
	})

	t.Run("unknown subscription", func(t *testing.T) {
		db, mock, cleanup := setupMockDB(t)
		defer cleanup()
		repo := NewRecurringDonationRepository(&models.Config{}, db)

		mock.ExpectQuery(update).WillReturnError(sql.ErrNoRows)

		_, err := repo.UpdateStatus(context.Background(), "sub_x", models.RecurringStatusPastDue, at)
		assert.ErrorIs(t, err, apperrors.ErrRecurringDonationNotFound)
	})
}

func TestApplySnapshot(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewRecurringDonationRepository(&models.Config{}, db)

	at := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := at.AddDate(0, 1, 0)

	mock.ExpectExec(regexp.QuoteMeta("next_payment_date = COALESCE($3, next_payment_date)")).
		WithArgs("sub_1", "active", periodEnd, at).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("next_payment_date = COALESCE($3, next_payment_date)")).
		WithArgs("sub_2", "past_due", nil, at).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ApplySnapshot(context.Background(), &models.SubscriptionSnapshot{
		SubscriptionID:   "sub_1",
		Status:           models.RecurringStatusActive,
		CurrentPeriodEnd: periodEnd,
	}, at)
	assert.NoError(t, err)

	err = repo.ApplySnapshot(context.Background(), &models.SubscriptionSnapshot{
		SubscriptionID: "sub_2",
		Status:         models.RecurringStatusPastDue,
	}, at)
	assert.ErrorIs(t, err, apperrors.ErrRecurringDonationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancel(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewRecurringDonationRepository(&models.Config{}, db)

	at := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("cancelled_at = COALESCE(cancelled_at, $2)")).
		WithArgs("sub_1", at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Cancel(context.Background(), "sub_1", at))
	assert.NoError(t, mock.ExpectationsWereMet())
}
