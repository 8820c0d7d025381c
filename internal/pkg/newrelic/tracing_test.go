package newrelic

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/giving/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestInitNewRelic_Disabled(t *testing.T) {
	cfg := &models.Config{}
	cfg.NewRelic.Enabled = false

	assert.Nil(t, InitNewRelic(cfg))
}

func TestHelpers_WithoutTransaction(t *testing.T) {
	ctx := context.Background()
	called := 0

	err := WithSegment(ctx, "webhook/dispatch", func() error { called++; return nil })
	assert.NoError(t, err)

	boom := errors.New("boom")
	err = WithExternalSegment(ctx, "stripe", "GET", "https://api.stripe.com/v1/subscriptions/sub_1", func() error { called++; return boom })
	assert.ErrorIs(t, err, boom)

	err = WithMessageProducerSegment(ctx, "nats", "giving.acknowledgment.requested", func() error { called++; return nil })
	assert.NoError(t, err)

	assert.Equal(t, 3, called)

	// nil transactions are tolerated
	SetTransactionName(nil, "x")
	AddTransactionAttribute(nil, "k", "v")
	NoticeTransactionError(nil, boom)
}

func TestEchoMiddleware_NilAppPassesThrough(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := EchoMiddleware(nil)(TraceHandler("health", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}))

	assert.NoError(t, h(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
