package handler

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/giving/internal/pkg/middleware"
	"github.com/piresc/giving/internal/pkg/models"
)

const (
	internalRateLimit  = 120
	internalRatePeriod = time.Minute
)

// RegisterRoutes registers the provider endpoint and the internal audit routes
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKeyCfg *models.APIKeyConfig, redisClient *redis.Client) {
	// Public endpoint; deliveries authenticate by signature
	e.POST("/webhooks/payments", h.webhookHTTP.ReceivePayment)

	// Internal routes (API key required)
	internal := e.Group("/internal", middleware.NewAPIKeyMiddleware(apiKeyCfg).ValidateAPIKey())
	if redisClient != nil {
		internal.Use(middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			RedisClient: redisClient,
			Resource:    "webhook-events",
			Limit:       internalRateLimit,
			Period:      internalRatePeriod,
		}))
	}

	events := internal.Group("/webhooks/events")
	events.GET("", h.eventsHTTP.ListEvents)
	events.GET("/:eventID", h.eventsHTTP.GetEvent)
}
