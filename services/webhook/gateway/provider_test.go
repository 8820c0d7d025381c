package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/piresc/giving/internal/pkg/apperrors"
	"github.com/piresc/giving/internal/pkg/logger"
	"github.com/piresc/giving/internal/pkg/models"
	"github.com/piresc/giving/internal/pkg/retry"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) (*StripeProvider, *int32) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	cfg := &models.Config{}
	cfg.Stripe.SecretKey = "sk_test_123"
	cfg.Stripe.APIURL = server.URL
	cfg.Stripe.Timeout = 2 * time.Second

	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = 2
	retryCfg.BaseDelay = time.Millisecond
	retryCfg.MaxDelay = 5 * time.Millisecond

	zl := &logger.ZapLogger{Logger: zap.NewNop()}
	return newStripeProvider(cfg, zl, retryCfg), &calls
}

func TestRetrieveSubscription_Success(t *testing.T) {
	periodEnd := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	provider, calls := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/subscriptions/sub_1", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"sub_1","object":"subscription","status":"unpaid","current_period_end":` +
			strconv.FormatInt(periodEnd.Unix(), 10) + `,"metadata":{"contact_id":"c1"}}`))
	})

	snap, err := provider.RetrieveSubscription(context.Background(), "sub_1")
	require.NoError(t, err)
	assert.Equal(t, "sub_1", snap.SubscriptionID)
	assert.Equal(t, models.RecurringStatusPastDue, snap.Status)
	assert.Equal(t, "unpaid", snap.ProviderStatus)
	assert.Equal(t, periodEnd, snap.CurrentPeriodEnd)
	assert.Equal(t, "c1", snap.Metadata["contact_id"])
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestRetrieveSubscription_NotFoundIsLogicAndNotRetried(t *testing.T) {
	provider, calls := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"No such subscription: 'sub_x'"}}`))
	})

	_, err := provider.RetrieveSubscription(context.Background(), "sub_x")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindLogic))
	assert.ErrorIs(t, err, ErrSubscriptionNotFound)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestRetrieveSubscription_ServerErrorIsRetriedThenTransient(t *testing.T) {
	provider, calls := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"type":"api_error","message":"unavailable"}}`))
	})

	_, err := provider.RetrieveSubscription(context.Background(), "sub_1")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindTransient))
	assert.Equal(t, int32(3), atomic.LoadInt32(calls))
}
