package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurringStatus is the local lifecycle of a subscription
type RecurringStatus string

const (
	RecurringStatusActive     RecurringStatus = "active"
	RecurringStatusPastDue    RecurringStatus = "past_due"
	RecurringStatusCancelled  RecurringStatus = "cancelled"
	RecurringStatusIncomplete RecurringStatus = "incomplete"
)

// MapProviderSubscriptionStatus maps a provider subscription status onto the local set
func MapProviderSubscriptionStatus(status string) (RecurringStatus, bool) {
	switch status {
	case "active", "trialing":
		return RecurringStatusActive, true
	case "past_due", "unpaid":
		return RecurringStatusPastDue, true
	case "canceled", "cancelled", "incomplete_expired":
		return RecurringStatusCancelled, true
	case "incomplete", "paused":
		return RecurringStatusIncomplete, true
	}
	return "", false
}

// RecurringDonation mirrors a provider subscription
type RecurringDonation struct {
	ID                     string          `json:"id" db:"id"`
	ContactID              string          `json:"contact_id" db:"contact_id"`
	ProviderSubscriptionID string          `json:"provider_subscription_id" db:"provider_subscription_id"`
	Amount                 decimal.Decimal `json:"amount" db:"amount"`
	Currency               string          `json:"currency" db:"currency"`
	IntervalType           string          `json:"interval_type" db:"interval_type"`
	IntervalCount          int             `json:"interval_count" db:"interval_count"`
	FundDesignation        string          `json:"fund_designation" db:"fund_designation"`
	Status                 RecurringStatus `json:"status" db:"status"`
	StartedAt              time.Time       `json:"started_at" db:"started_at"`
	NextPaymentDate        *time.Time      `json:"next_payment_date,omitempty" db:"next_payment_date"`
	CancelledAt            *time.Time      `json:"cancelled_at,omitempty" db:"cancelled_at"`
	CreatedAt              time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at" db:"updated_at"`
}

// SubscriptionSnapshot is the provider's authoritative view of a subscription
type SubscriptionSnapshot struct {
	SubscriptionID   string
	Status           RecurringStatus
	ProviderStatus   string
	CurrentPeriodEnd time.Time
	Metadata         map[string]string
}
