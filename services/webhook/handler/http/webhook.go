package http

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/giving/internal/pkg/apperrors"
	"github.com/piresc/giving/internal/pkg/logger"
	"github.com/piresc/giving/internal/pkg/models"
	nrpkg "github.com/piresc/giving/internal/pkg/newrelic"
	"github.com/piresc/giving/internal/pkg/signature"
	"github.com/piresc/giving/internal/utils"
	"github.com/piresc/giving/services/webhook"
)

const defaultMaxBodyBytes = 1 << 20

// WebhookHandler receives payment provider deliveries
type WebhookHandler struct {
	webhookUC    webhook.WebhookUC
	maxBodyBytes int64
}

// NewWebhookHandler creates a new webhook HTTP handler
func NewWebhookHandler(webhookUC webhook.WebhookUC, maxBodyBytes int64) *WebhookHandler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}
	return &WebhookHandler{
		webhookUC:    webhookUC,
		maxBodyBytes: maxBodyBytes,
	}
}

// ReceivePayment verifies and applies one delivery. The body is read raw since
// the signature covers the exact bytes sent.
func (h *WebhookHandler) ReceivePayment(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Webhook.ReceivePayment")

	body, err := io.ReadAll(io.LimitReader(c.Request().Body, h.maxBodyBytes+1))
	if err != nil {
		return utils.BadRequestResponse(c, "Failed to read request body")
	}
	if int64(len(body)) > h.maxBodyBytes {
		logger.Warn("Webhook body too large",
			logger.Int64("max_bytes", h.maxBodyBytes),
			logger.String("client_ip", c.RealIP()))
		return utils.ErrorResponseHandler(c, http.StatusRequestEntityTooLarge, "Request body too large")
	}

	result, err := h.webhookUC.ProcessWebhook(c.Request().Context(), body, c.Request().Header.Get(signature.HeaderName))
	switch status := apperrors.HTTPStatus(err); status {
	case http.StatusOK:
	case http.StatusBadRequest:
		return utils.BadRequestResponse(c, "Invalid webhook signature")
	default:
		nrpkg.NoticeTransactionError(txn, err)
		return utils.ErrorResponseHandler(c, status, "Webhook processing failed")
	}

	if result != nil {
		nrpkg.AddTransactionAttribute(txn, "event.id", result.EventID)
		nrpkg.AddTransactionAttribute(txn, "event.type", string(result.EventType))
		nrpkg.AddTransactionAttribute(txn, "event.outcome", string(result.Outcome))
	}

	return c.JSON(http.StatusOK, models.WebhookAck{Received: true})
}
