package webhook

import (
	"context"

	"github.com/piresc/giving/internal/pkg/models"
)

// WebhookUC processes provider deliveries and exposes the event ledger for audit
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/giving/services/webhook WebhookUC
type WebhookUC interface {
	ProcessWebhook(ctx context.Context, payload []byte, signature string) (*models.ProcessResult, error)
	GetEvent(ctx context.Context, eventID string) (*models.WebhookEvent, error)
	ListEvents(ctx context.Context, filter models.WebhookEventFilter) ([]*models.WebhookEvent, error)
}
