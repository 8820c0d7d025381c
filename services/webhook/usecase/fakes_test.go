package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/piresc/giving/internal/pkg/apperrors"
	"github.com/piresc/giving/internal/pkg/models"
)

// The fakes below mirror the guarded SQL statements of the repository package in memory.

type fakeLedger struct {
	mu     sync.Mutex
	events map[string]*models.WebhookEvent
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{events: map[string]*models.WebhookEvent{}}
}

func (l *fakeLedger) RecordIfNew(_ context.Context, event *models.Event) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if e, ok := l.events[event.ID]; ok {
		if e.Processed || e.ClaimedAt != nil {
			return false, nil
		}
		e.ClaimedAt = &now
		return true, nil
	}
	l.events[event.ID] = &models.WebhookEvent{
		EventID:    event.ID,
		EventType:  event.Type,
		Payload:    models.JSONPayload(event.Raw),
		ReceivedAt: now,
		ClaimedAt:  &now,
	}
	return true, nil
}

func (l *fakeLedger) MarkProcessed(_ context.Context, eventID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	e := l.events[eventID]
	now := time.Now()
	e.Processed = true
	e.ProcessedAt = &now
	e.ErrorMessage = nil
	e.ClaimedAt = nil
	return nil
}

func (l *fakeLedger) MarkFailed(_ context.Context, eventID string, cause error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	e := l.events[eventID]
	msg := cause.Error()
	e.RetryCount++
	e.ErrorMessage = &msg
	e.ClaimedAt = nil
	return nil
}

func (l *fakeLedger) GetEvent(_ context.Context, eventID string) (*models.WebhookEvent, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.events[eventID]
	if !ok {
		return nil, apperrors.ErrWebhookEventNotFound
	}
	cp := *e
	return &cp, nil
}

func (l *fakeLedger) ListEvents(_ context.Context, _ models.WebhookEventFilter) ([]*models.WebhookEvent, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*models.WebhookEvent, 0, len(l.events))
	for _, e := range l.events {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

type fakeTxns struct {
	mu   sync.Mutex
	rows []*models.Transaction
}

func (s *fakeTxns) UpsertPaymentIntent(_ context.Context, txn *models.Transaction) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range s.rows {
		if row.ProviderPaymentIntentID == nil || *row.ProviderPaymentIntentID != *txn.ProviderPaymentIntentID {
			continue
		}
		current := row.Status
		switch {
		case current == models.TransactionStatusDisputed:
		case atLeast(current, txn.Status) && current != txn.Status:
			row.Notes = txn.Notes
		case current == txn.Status && txn.Notes != nil:
			row.Notes = txn.Notes
		}
		if atLeast(current, txn.Status) && txn.FailureReason != nil {
			row.FailureReason = txn.FailureReason
		}
		if txn.ContactID != nil {
			row.ContactID = txn.ContactID
		}
		if txn.ProviderCustomerID != nil {
			row.ProviderCustomerID = txn.ProviderCustomerID
		}
		row.Status = current.Advance(txn.Status)
		row.Amount = txn.Amount
		row.Currency = txn.Currency
		row.FundDesignation = txn.FundDesignation
		row.Category = txn.Category
		row.IsAnonymous = txn.IsAnonymous
		cp := *row
		return &cp, nil
	}

	row := *txn
	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	s.rows = append(s.rows, &row)
	cp := row
	return &cp, nil
}

func (s *fakeTxns) ApplyChargeOutcome(_ context.Context, outcome models.ChargeOutcome, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range s.rows {
		if row.ProviderPaymentIntentID == nil || *row.ProviderPaymentIntentID != outcome.PaymentIntentID {
			continue
		}
		if atLeast(row.Status, outcome.Status) {
			chargeID := outcome.ChargeID
			row.ProviderChargeID = &chargeID
		}
		if outcome.ReceiptURL != nil {
			row.ReceiptURL = outcome.ReceiptURL
		}
		if outcome.Status == models.TransactionStatusSucceeded {
			row.FeeAmount = outcome.FeeAmount
		}
		if outcome.Status == models.TransactionStatusFailed &&
			(row.Status == models.TransactionStatusPending || row.Status == models.TransactionStatusFailed) &&
			outcome.FailureReason != nil {
			row.FailureReason = outcome.FailureReason
		}
		row.Status = row.Status.Advance(outcome.Status)
		return nil
	}
	return apperrors.ErrTransactionNotFound
}

func (s *fakeTxns) AppendInvoicePayment(_ context.Context, txn *models.Transaction) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range s.rows {
		if row.ProviderInvoiceID != nil && *row.ProviderInvoiceID == *txn.ProviderInvoiceID {
			return false, nil
		}
	}
	row := *txn
	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	s.rows = append(s.rows, &row)
	return true, nil
}

func (s *fakeTxns) MarkDisputed(_ context.Context, dispute models.Dispute, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range s.rows {
		if row.ProviderChargeID == nil || *row.ProviderChargeID != dispute.ChargeID {
			continue
		}
		if row.Status != models.TransactionStatusSucceeded && row.Status != models.TransactionStatusDisputed {
			return fmt.Errorf("dispute on %s transaction: %w", row.Status, apperrors.ErrInvalidTransition)
		}
		row.Status = models.TransactionStatusDisputed
		notes := ""
		if row.Notes != nil {
			notes = *row.Notes
		}
		switch {
		case strings.Contains(notes, dispute.Marker()):
		case notes == "":
			note := dispute.Note()
			row.Notes = &note
		default:
			appended := notes + "\n" + dispute.Note()
			row.Notes = &appended
		}
		return nil
	}
	return apperrors.ErrTransactionNotFound
}

func (s *fakeTxns) MarkAcknowledged(_ context.Context, transactionID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range s.rows {
		if row.ID == transactionID && !row.AcknowledgmentSent {
			row.AcknowledgmentSent = true
			row.AcknowledgmentSentAt = &at
		}
	}
	return nil
}

func (s *fakeTxns) snapshot() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Transaction, 0, len(s.rows))
	for _, row := range s.rows {
		cp := *row
		cp.AcknowledgmentSentAt = nil
		out = append(out, cp)
	}
	return out
}

func (s *fakeTxns) byPaymentIntent(id string) *models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range s.rows {
		if row.ProviderPaymentIntentID != nil && *row.ProviderPaymentIntentID == id {
			cp := *row
			return &cp
		}
	}
	return nil
}

func (s *fakeTxns) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

// atLeast reports whether next ranks at or above current
func atLeast(current, next models.TransactionStatus) bool {
	return current.Advance(next) == next
}

type fakeDonations struct {
	mu   sync.Mutex
	rows map[string]*models.RecurringDonation
}

func newFakeDonations() *fakeDonations {
	return &fakeDonations{rows: map[string]*models.RecurringDonation{}}
}

func (s *fakeDonations) Create(_ context.Context, d *models.RecurringDonation) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[d.ProviderSubscriptionID]; ok {
		return false, nil
	}
	cp := *d
	if cp.ID == "" {
		cp.ID = uuid.NewString()
	}
	s.rows[d.ProviderSubscriptionID] = &cp
	return true, nil
}

func (s *fakeDonations) GetBySubscriptionID(_ context.Context, id string) (*models.RecurringDonation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.rows[id]
	if !ok {
		return nil, apperrors.ErrRecurringDonationNotFound
	}
	cp := *d
	return &cp, nil
}

func (s *fakeDonations) UpdateStatus(_ context.Context, id string, status models.RecurringStatus, _ time.Time) (models.RecurringStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.rows[id]
	if !ok {
		return "", apperrors.ErrRecurringDonationNotFound
	}
	if d.Status != models.RecurringStatusCancelled {
		d.Status = status
	}
	return d.Status, nil
}

func (s *fakeDonations) ApplySnapshot(_ context.Context, snap *models.SubscriptionSnapshot, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.rows[snap.SubscriptionID]
	if !ok {
		return apperrors.ErrRecurringDonationNotFound
	}
	if d.Status != models.RecurringStatusCancelled && snap.Status != "" {
		d.Status = snap.Status
	}
	if !snap.CurrentPeriodEnd.IsZero() {
		next := snap.CurrentPeriodEnd
		d.NextPaymentDate = &next
	}
	if snap.Status == models.RecurringStatusCancelled && d.CancelledAt == nil {
		d.CancelledAt = &at
	}
	return nil
}

func (s *fakeDonations) Cancel(_ context.Context, id string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.rows[id]
	if !ok {
		return apperrors.ErrRecurringDonationNotFound
	}
	d.Status = models.RecurringStatusCancelled
	if d.CancelledAt == nil {
		d.CancelledAt = &at
	}
	return nil
}

type fakeContacts struct {
	mu      sync.Mutex
	byEmail map[string]string
}

func (s *fakeContacts) FindByEmail(_ context.Context, email string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byEmail[strings.ToLower(email)]
	return id, ok, nil
}

func (s *fakeContacts) Create(_ context.Context, fields models.ContactFields) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.byEmail[fields.Email]; ok {
		return id, nil
	}
	id := uuid.NewString()
	s.byEmail[fields.Email] = id
	return id, nil
}

type fakeProvider struct {
	mu            sync.Mutex
	subscriptions map[string]*models.SubscriptionSnapshot
	err           error
	calls         int
}

func (p *fakeProvider) RetrieveSubscription(_ context.Context, id string) (*models.SubscriptionSnapshot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	snap, ok := p.subscriptions[id]
	if !ok {
		return &models.SubscriptionSnapshot{SubscriptionID: id}, nil
	}
	cp := *snap
	return &cp, nil
}

type fakeNotifier struct {
	mu       sync.Mutex
	requests []models.AcknowledgmentRequest
}

func (n *fakeNotifier) SendAcknowledgment(_ context.Context, req models.AcknowledgmentRequest) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.requests = append(n.requests, req)
	return nil
}

func (n *fakeNotifier) sent() []models.AcknowledgmentRequest {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]models.AcknowledgmentRequest(nil), n.requests...)
}
