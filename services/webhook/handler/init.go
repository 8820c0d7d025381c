package handler

import (
	"github.com/piresc/giving/internal/pkg/models"
	"github.com/piresc/giving/services/webhook"
	httpHandler "github.com/piresc/giving/services/webhook/handler/http"
)

// Handler combines the HTTP handlers of the webhook service
type Handler struct {
	webhookHTTP *httpHandler.WebhookHandler
	eventsHTTP  *httpHandler.EventsHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(webhookUC webhook.WebhookUC, cfg *models.Config) *Handler {
	return &Handler{
		webhookHTTP: httpHandler.NewWebhookHandler(webhookUC, cfg.Webhook.MaxBodyBytes),
		eventsHTTP:  httpHandler.NewEventsHandler(webhookUC),
		cfg:         cfg,
	}
}
