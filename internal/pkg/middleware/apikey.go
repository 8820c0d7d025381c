package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"
	"github.com/piresc/giving/internal/pkg/models"
	"github.com/piresc/giving/internal/utils"
)

const (
	APIKeyHeader = "X-API-Key"
	// CallerKey holds the name of the authenticated caller in the echo context
	CallerKey = "api_caller"
)

// APIKeyMiddleware guards internal routes with per-caller keys
type APIKeyMiddleware struct {
	keys map[string]string
}

func NewAPIKeyMiddleware(cfg *models.APIKeyConfig) *APIKeyMiddleware {
	keys := make(map[string]string, len(cfg.Keys))
	for caller, key := range cfg.Keys {
		if key != "" {
			keys[caller] = key
		}
	}
	return &APIKeyMiddleware{keys: keys}
}

// ValidateAPIKey accepts a request whose key belongs to one of allowedCallers,
// or to any configured caller when allowedCallers is empty.
func (m *APIKeyMiddleware) ValidateAPIKey(allowedCallers ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.UnauthorizedResponse(c, "API key is required")
			}

			caller, ok := m.match(apiKey, allowedCallers)
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid API key")
			}

			c.Set(CallerKey, caller)
			return next(c)
		}
	}
}

func (m *APIKeyMiddleware) match(apiKey string, allowed []string) (string, bool) {
	candidates := allowed
	if len(candidates) == 0 {
		for caller := range m.keys {
			candidates = append(candidates, caller)
		}
	}
	for _, caller := range candidates {
		key, ok := m.keys[caller]
		if ok && subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) == 1 {
			return caller, true
		}
	}
	return "", false
}
