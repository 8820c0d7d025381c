package usecase

import (
	"fmt"
	"time"

	"github.com/piresc/giving/internal/pkg/models"
	"github.com/piresc/giving/services/webhook"
)

// webhookUC implements the webhook.WebhookUC interface
type webhookUC struct {
	cfg        *models.Config
	ledger     webhook.EventLedger
	cache      webhook.ProcessedCache
	txns       webhook.TransactionRepo
	donations  webhook.RecurringDonationRepo
	contacts   webhook.ContactRepo
	verifier   webhook.EventVerifier
	notifier   webhook.Notifier
	sync       *Synchronizer
	dispatcher *Dispatcher
	now        func() time.Time
}

// NewWebhookUC wires the pipeline. cache may be nil, in which case every
// delivery goes straight to the ledger.
func NewWebhookUC(
	cfg *models.Config,
	ledger webhook.EventLedger,
	cache webhook.ProcessedCache,
	txns webhook.TransactionRepo,
	donations webhook.RecurringDonationRepo,
	contacts webhook.ContactRepo,
	verifier webhook.EventVerifier,
	provider webhook.PaymentProvider,
	notifier webhook.Notifier,
) (webhook.WebhookUC, error) {
	return newWebhookUC(cfg, ledger, cache, txns, donations, contacts, verifier, provider, notifier)
}

func newWebhookUC(
	cfg *models.Config,
	ledger webhook.EventLedger,
	cache webhook.ProcessedCache,
	txns webhook.TransactionRepo,
	donations webhook.RecurringDonationRepo,
	contacts webhook.ContactRepo,
	verifier webhook.EventVerifier,
	provider webhook.PaymentProvider,
	notifier webhook.Notifier,
) (*webhookUC, error) {
	uc := &webhookUC{
		cfg:       cfg,
		ledger:    ledger,
		cache:     cache,
		txns:      txns,
		donations: donations,
		contacts:  contacts,
		verifier:  verifier,
		notifier:  notifier,
		now:       time.Now,
	}
	uc.sync = NewSynchronizer(provider, donations, func() time.Time { return uc.now() })

	dispatcher, err := NewDispatcher(uc.handlers())
	if err != nil {
		return nil, fmt.Errorf("failed to build event dispatcher: %w", err)
	}
	uc.dispatcher = dispatcher

	return uc, nil
}

// handlers is the registry of one handler per supported event type
func (uc *webhookUC) handlers() map[models.EventType]Handler {
	return map[models.EventType]Handler{
		models.EventPaymentIntentSucceeded:     route(uc.handlePaymentIntentSucceeded),
		models.EventPaymentIntentPaymentFailed: route(uc.handlePaymentIntentFailed),
		models.EventChargeSucceeded:            route(uc.handleChargeSucceeded),
		models.EventChargeFailed:               route(uc.handleChargeFailed),
		models.EventInvoicePaymentSucceeded:    route(uc.handleInvoicePaymentSucceeded),
		models.EventInvoicePaymentFailed:       route(uc.handleInvoicePaymentFailed),
		models.EventSubscriptionCreated:        route(uc.handleSubscriptionCreated),
		models.EventSubscriptionUpdated:        route(uc.handleSubscriptionUpdated),
		models.EventSubscriptionDeleted:        route(uc.handleSubscriptionDeleted),
		models.EventChargeDisputeCreated:       route(uc.handleDisputeCreated),
	}
}

func (uc *webhookUC) defaultFund() string {
	if uc.cfg.Webhook.DefaultFund == "" {
		return "General"
	}
	return uc.cfg.Webhook.DefaultFund
}

func (uc *webhookUC) processingTimeout() time.Duration {
	if uc.cfg.Webhook.ProcessingTimeout <= 0 {
		return 20 * time.Second
	}
	return uc.cfg.Webhook.ProcessingTimeout
}
