package webhook

import (
	"context"
	"time"

	"github.com/piresc/giving/internal/pkg/models"
)

// EventLedger is the durable dedup record of every provider event id
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/giving/services/webhook EventLedger,ProcessedCache,TransactionRepo,RecurringDonationRepo,ContactRepo
type EventLedger interface {
	// RecordIfNew claims event for processing. It reports false when the id was
	// already processed or another delivery holds an unexpired claim.
	RecordIfNew(ctx context.Context, event *models.Event) (bool, error)
	MarkProcessed(ctx context.Context, eventID string) error
	MarkFailed(ctx context.Context, eventID string, cause error) error
	GetEvent(ctx context.Context, eventID string) (*models.WebhookEvent, error)
	ListEvents(ctx context.Context, filter models.WebhookEventFilter) ([]*models.WebhookEvent, error)
}

// ProcessedCache remembers processed ids so redeliveries skip the database
type ProcessedCache interface {
	IsProcessed(ctx context.Context, eventID string) (bool, error)
	MarkProcessed(ctx context.Context, eventID string) error
}

// TransactionRepo persists ledger rows
type TransactionRepo interface {
	// UpsertPaymentIntent merges txn into the row keyed by its payment intent,
	// never lowering the status, and returns the stored row.
	UpsertPaymentIntent(ctx context.Context, txn *models.Transaction) (*models.Transaction, error)
	// ApplyChargeOutcome enriches the row of the charge's payment intent.
	// Returns apperrors.ErrTransactionNotFound when no such row exists.
	ApplyChargeOutcome(ctx context.Context, outcome models.ChargeOutcome, at time.Time) error
	// AppendInvoicePayment inserts one row per invoice id and reports whether it inserted
	AppendInvoicePayment(ctx context.Context, txn *models.Transaction) (bool, error)
	// MarkDisputed moves the charge's row to disputed and appends the dispute note once.
	// Returns apperrors.ErrTransactionNotFound when no row carries the charge id.
	MarkDisputed(ctx context.Context, dispute models.Dispute, at time.Time) error
	MarkAcknowledged(ctx context.Context, transactionID string, at time.Time) error
}

// RecurringDonationRepo persists subscription mirrors. Cancelled rows never leave cancelled.
type RecurringDonationRepo interface {
	// Create inserts donation unless its subscription id exists and reports whether it inserted
	Create(ctx context.Context, donation *models.RecurringDonation) (bool, error)
	GetBySubscriptionID(ctx context.Context, subscriptionID string) (*models.RecurringDonation, error)
	// UpdateStatus returns the resulting status, which stays cancelled once cancelled
	UpdateStatus(ctx context.Context, subscriptionID string, status models.RecurringStatus, at time.Time) (models.RecurringStatus, error)
	ApplySnapshot(ctx context.Context, snapshot *models.SubscriptionSnapshot, at time.Time) error
	Cancel(ctx context.Context, subscriptionID string, at time.Time) error
}

// ContactRepo is the narrow contact lookup used to link anonymous-form donors
type ContactRepo interface {
	FindByEmail(ctx context.Context, email string) (string, bool, error)
	Create(ctx context.Context, fields models.ContactFields) (string, error)
}
