package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the payment state of a ledger row
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusSucceeded TransactionStatus = "succeeded"
	TransactionStatusDisputed  TransactionStatus = "disputed"
)

// rank orders statuses so transitions only move forward.
// failed sits below succeeded because a donor may retry a declined card on the same intent.
func (s TransactionStatus) rank() int {
	switch s {
	case TransactionStatusPending:
		return 0
	case TransactionStatusFailed:
		return 1
	case TransactionStatusSucceeded:
		return 2
	case TransactionStatusDisputed:
		return 3
	}
	return -1
}

// Advance returns the status after applying next to s; lower-ranked targets leave s unchanged
func (s TransactionStatus) Advance(next TransactionStatus) TransactionStatus {
	if next.rank() > s.rank() {
		return next
	}
	return s
}

// Payment methods recorded on ledger rows
const (
	PaymentMethodCard          = "Stripe"
	PaymentMethodCardRecurring = "Stripe (Recurring)"
)

// Transaction is one discrete monetary movement
type Transaction struct {
	ID                      string            `json:"id" db:"id"`
	ProviderPaymentIntentID *string           `json:"provider_payment_intent_id,omitempty" db:"provider_payment_intent_id"`
	ProviderChargeID        *string           `json:"provider_charge_id,omitempty" db:"provider_charge_id"`
	ProviderInvoiceID       *string           `json:"provider_invoice_id,omitempty" db:"provider_invoice_id"`
	ProviderSubscriptionID  *string           `json:"provider_subscription_id,omitempty" db:"provider_subscription_id"`
	ProviderCustomerID      *string           `json:"provider_customer_id,omitempty" db:"provider_customer_id"`
	ContactID               *string           `json:"contact_id,omitempty" db:"contact_id"`
	Amount                  decimal.Decimal   `json:"amount" db:"amount"`
	Currency                string            `json:"currency" db:"currency"`
	FundDesignation         string            `json:"fund_designation" db:"fund_designation"`
	Category                string            `json:"category" db:"category"`
	PaymentMethod           string            `json:"payment_method" db:"payment_method"`
	Status                  TransactionStatus `json:"status" db:"status"`
	IsRecurring             bool              `json:"is_recurring" db:"is_recurring"`
	IsAnonymous             bool              `json:"is_anonymous" db:"is_anonymous"`
	Notes                   *string           `json:"notes,omitempty" db:"notes"`
	FailureReason           *string           `json:"failure_reason,omitempty" db:"failure_reason"`
	ReceiptURL              *string           `json:"receipt_url,omitempty" db:"receipt_url"`
	FeeAmount               decimal.Decimal   `json:"fee_amount" db:"fee_amount"`
	AcknowledgmentSent      bool              `json:"acknowledgment_sent" db:"acknowledgment_sent"`
	AcknowledgmentSentAt    *time.Time        `json:"acknowledgment_sent_at,omitempty" db:"acknowledgment_sent_at"`
	Metadata                JSONMap           `json:"metadata" db:"metadata"`
	TransactedAt            time.Time         `json:"transacted_at" db:"transacted_at"`
	CreatedAt               time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt               time.Time         `json:"updated_at" db:"updated_at"`
}

// ChargeOutcome is the charge-level enrichment applied to a payment-intent row
type ChargeOutcome struct {
	PaymentIntentID string
	ChargeID        string
	Status          TransactionStatus
	ReceiptURL      *string
	FeeAmount       decimal.Decimal
	FailureReason   *string
}

// Dispute is the note appended when a charge is disputed
type Dispute struct {
	ChargeID  string
	DisputeID string
	Reason    string
	Amount    decimal.Decimal
	Currency  string
}

// Marker identifies the dispute inside the notes column so replays append once
func (d Dispute) Marker() string {
	return "(" + d.DisputeID + ")"
}

// Note renders the text appended to a disputed transaction's notes
func (d Dispute) Note() string {
	return "Dispute created " + d.Marker() + ": " + d.Reason + ". Amount: " + d.Amount.StringFixed(2) + " " + d.Currency
}

// zeroDecimalCurrencies are charged in whole units by the provider
var zeroDecimalCurrencies = map[string]bool{
	"BIF": true, "CLP": true, "DJF": true, "GNF": true, "JPY": true, "KMF": true, "KRW": true,
	"MGA": true, "PYG": true, "RWF": true, "UGX": true, "VND": true, "VUV": true, "XAF": true,
	"XOF": true, "XPF": true,
}

// NormalizeCurrency upper-cases an ISO currency code
func NormalizeCurrency(currency string) string {
	return strings.ToUpper(strings.TrimSpace(currency))
}

// MinorToMajor converts a provider amount in minor units to major units
func MinorToMajor(amount int64, currency string) decimal.Decimal {
	if zeroDecimalCurrencies[NormalizeCurrency(currency)] {
		return decimal.NewFromInt(amount)
	}
	return decimal.New(amount, -2)
}

// StringPtr returns nil for empty strings
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
