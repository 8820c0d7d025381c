package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/giving/internal/pkg/apperrors"
	"github.com/piresc/giving/internal/pkg/models"
	"github.com/piresc/giving/internal/utils"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
	maxErrorLength   = 2000
)

const webhookEventColumns = `event_id, event_type, payload::text AS payload, processed, processed_at,
	error_message, retry_count, received_at, claimed_at`

// EventLedgerRepo stores one row per provider event id
type EventLedgerRepo struct {
	cfg *models.Config
	db  *sqlx.DB
	now func() time.Time
}

func NewEventLedgerRepository(cfg *models.Config, db *sqlx.DB) *EventLedgerRepo {
	return &EventLedgerRepo{
		cfg: cfg,
		db:  db,
		now: time.Now,
	}
}

// RecordIfNew inserts the event or re-claims a failed one whose claim has lapsed.
// The single statement is the only concurrency guard between duplicate deliveries.
func (r *EventLedgerRepo) RecordIfNew(ctx context.Context, event *models.Event) (bool, error) {
	query := `
		INSERT INTO webhook_events (event_id, event_type, payload, processed, retry_count, received_at, claimed_at)
		VALUES ($1, $2, $3, false, 0, $4, $4)
		ON CONFLICT (event_id) DO UPDATE SET claimed_at = EXCLUDED.claimed_at
		WHERE webhook_events.processed = false
			AND (webhook_events.claimed_at IS NULL OR webhook_events.claimed_at < $5)
		RETURNING event_id
	`

	now := r.now().UTC()
	lease := r.cfg.Webhook.ClaimLease
	if lease <= 0 {
		lease = 2 * time.Minute
	}

	var eventID string
	err := r.db.QueryRowxContext(ctx, query,
		event.ID,
		string(event.Type),
		string(event.Raw),
		now,
		now.Add(-lease),
	).Scan(&eventID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to record webhook event: %w", err)
	}

	return true, nil
}

// MarkProcessed records a successful pass and releases the claim
func (r *EventLedgerRepo) MarkProcessed(ctx context.Context, eventID string) error {
	query := `
		UPDATE webhook_events
		SET processed = true, processed_at = $2, error_message = NULL, claimed_at = NULL
		WHERE event_id = $1
	`

	if _, err := r.db.ExecContext(ctx, query, eventID, r.now().UTC()); err != nil {
		return fmt.Errorf("failed to mark webhook event processed: %w", err)
	}
	return nil
}

// MarkFailed stores the error and releases the claim so a redelivery can retry
func (r *EventLedgerRepo) MarkFailed(ctx context.Context, eventID string, cause error) error {
	query := `
		UPDATE webhook_events
		SET retry_count = retry_count + 1, error_message = $2, claimed_at = NULL
		WHERE event_id = $1 AND processed = false
	`

	msg := "unknown error"
	if cause != nil {
		msg = utils.Truncate(cause.Error(), maxErrorLength)
	}

	if _, err := r.db.ExecContext(ctx, query, eventID, msg); err != nil {
		return fmt.Errorf("failed to mark webhook event failed: %w", err)
	}
	return nil
}

// GetEvent returns one ledger row
func (r *EventLedgerRepo) GetEvent(ctx context.Context, eventID string) (*models.WebhookEvent, error) {
	query := `SELECT ` + webhookEventColumns + ` FROM webhook_events WHERE event_id = $1`

	var event models.WebhookEvent
	err := r.db.GetContext(ctx, &event, query, eventID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrWebhookEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get webhook event: %w", err)
	}

	return &event, nil
}

// ListEvents returns ledger rows newest first
func (r *EventLedgerRepo) ListEvents(ctx context.Context, filter models.WebhookEventFilter) ([]*models.WebhookEvent, error) {
	var (
		conditions []string
		args       []interface{}
	)

	switch filter.State {
	case models.WebhookEventStateProcessed:
		conditions = append(conditions, "processed = true")
	case models.WebhookEventStateFailed:
		conditions = append(conditions, "processed = false AND retry_count > 0")
	case models.WebhookEventStatePending:
		conditions = append(conditions, "processed = false AND retry_count = 0")
	}

	if filter.EventType != "" {
		args = append(args, string(filter.EventType))
		conditions = append(conditions, fmt.Sprintf("event_type = $%d", len(args)))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	args = append(args, limit)

	query := `SELECT ` + webhookEventColumns + ` FROM webhook_events`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += fmt.Sprintf(" ORDER BY received_at DESC LIMIT $%d", len(args))

	events := []*models.WebhookEvent{}
	if err := r.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list webhook events: %w", err)
	}

	return events, nil
}
