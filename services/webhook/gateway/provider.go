package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"

	"github.com/piresc/giving/internal/pkg/apperrors"
	"github.com/piresc/giving/internal/pkg/circuitbreaker"
	"github.com/piresc/giving/internal/pkg/logger"
	"github.com/piresc/giving/internal/pkg/models"
	nrpkg "github.com/piresc/giving/internal/pkg/newrelic"
	"github.com/piresc/giving/internal/pkg/retry"
)

const defaultStripeAPIURL = "https://api.stripe.com"

// ErrSubscriptionNotFound is returned when the provider has no such subscription
var ErrSubscriptionNotFound = errors.New("subscription not found at provider")

// StripeProvider reads subscriptions from Stripe behind a circuit breaker and retrier
type StripeProvider struct {
	api     *client.API
	baseURL string
	breaker *circuitbreaker.CircuitBreaker
	retrier *retry.Retrier
}

// NewStripeProvider builds the provider client from the Stripe config section
func NewStripeProvider(cfg *models.Config, zl *logger.ZapLogger) *StripeProvider {
	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = cfg.Stripe.MaxRetries
	return newStripeProvider(cfg, zl, retryCfg)
}

func newStripeProvider(cfg *models.Config, zl *logger.ZapLogger, retryCfg retry.Config) *StripeProvider {
	if zl == nil {
		zl = logger.GetGlobalLogger()
	}

	baseURL := strings.TrimRight(cfg.Stripe.APIURL, "/")
	if baseURL == "" {
		baseURL = defaultStripeAPIURL
	}

	timeout := cfg.Stripe.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(baseURL),
		HTTPClient:        &http.Client{Timeout: timeout},
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     zl.Sugar(),
	})

	api := &client.API{}
	api.Init(cfg.Stripe.SecretKey, &stripe.Backends{API: backend, Connect: backend, Uploads: backend})

	return &StripeProvider{
		api:     api,
		baseURL: baseURL,
		breaker: circuitbreaker.New(circuitbreaker.DefaultConfig("stripe"), zl),
		retrier: retry.New(retryCfg, zl),
	}
}

// RetrieveSubscription returns the provider's current view of subscriptionID
func (p *StripeProvider) RetrieveSubscription(ctx context.Context, subscriptionID string) (*models.SubscriptionSnapshot, error) {
	var snapshot *models.SubscriptionSnapshot

	err := p.retrier.Execute(ctx, func(ctx context.Context) error {
		return p.breaker.Execute(ctx, func(ctx context.Context) error {
			url := p.baseURL + "/v1/subscriptions/" + subscriptionID
			return nrpkg.WithExternalSegment(ctx, "stripe-go", "subscriptions.get", url, func() error {
				params := &stripe.SubscriptionParams{}
				params.Context = ctx

				sub, err := p.api.Subscriptions.Get(subscriptionID, params)
				if err != nil {
					return classifyStripeError(subscriptionID, err)
				}
				snapshot = toSnapshot(sub)
				return nil
			})
		})
	})
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

func toSnapshot(sub *stripe.Subscription) *models.SubscriptionSnapshot {
	snapshot := &models.SubscriptionSnapshot{
		SubscriptionID: sub.ID,
		ProviderStatus: string(sub.Status),
		Metadata:       sub.Metadata,
	}
	// unmapped statuses leave the local status untouched
	if status, ok := models.MapProviderSubscriptionStatus(string(sub.Status)); ok {
		snapshot.Status = status
	}
	if sub.CurrentPeriodEnd > 0 {
		snapshot.CurrentPeriodEnd = time.Unix(sub.CurrentPeriodEnd, 0).UTC()
	}
	return snapshot
}

func classifyStripeError(subscriptionID string, err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode == http.StatusNotFound {
		return apperrors.Logic("retrieve subscription", fmt.Errorf("%w: %s", ErrSubscriptionNotFound, subscriptionID))
	}
	return apperrors.Transient("retrieve subscription", err)
}
