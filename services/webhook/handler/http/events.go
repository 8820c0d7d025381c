package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/piresc/giving/internal/pkg/apperrors"
	"github.com/piresc/giving/internal/pkg/logger"
	"github.com/piresc/giving/internal/pkg/models"
	nrpkg "github.com/piresc/giving/internal/pkg/newrelic"
	"github.com/piresc/giving/internal/utils"
	"github.com/piresc/giving/services/webhook"
)

// EventsHandler exposes the event ledger to internal callers
type EventsHandler struct {
	webhookUC webhook.WebhookUC
}

// NewEventsHandler creates a new event audit handler
func NewEventsHandler(webhookUC webhook.WebhookUC) *EventsHandler {
	return &EventsHandler{webhookUC: webhookUC}
}

// ListEvents handles GET /internal/webhooks/events?status=&type=&limit=
func (h *EventsHandler) ListEvents(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Webhook.ListEvents")

	filter := models.WebhookEventFilter{
		State:     models.WebhookEventState(c.QueryParam("status")),
		EventType: models.EventType(c.QueryParam("type")),
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return utils.BadRequestResponse(c, "limit must be a non-negative integer")
		}
		filter.Limit = limit
	}

	events, err := h.webhookUC.ListEvents(c.Request().Context(), filter)
	if err != nil {
		if apperrors.Is(err, apperrors.KindValidation) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to list webhook events", logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to list webhook events")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Webhook events retrieved", events)
}

// GetEvent handles GET /internal/webhooks/events/:eventID
func (h *EventsHandler) GetEvent(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Webhook.GetEvent")

	eventID := c.Param("eventID")
	if eventID == "" {
		return utils.BadRequestResponse(c, "Event ID is required")
	}

	event, err := h.webhookUC.GetEvent(c.Request().Context(), eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrWebhookEventNotFound) {
			return utils.NotFoundResponse(c, "Webhook event not found")
		}
		logger.Error("Failed to get webhook event", logger.EventID(eventID), logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to get webhook event")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Webhook event retrieved", event)
}
