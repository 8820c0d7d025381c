package models

import "strings"

// ContactSourceOnlineDonation tags contacts created from a donation
const ContactSourceOnlineDonation = "online_donation"

// ContactFields are the inputs for creating a contact
type ContactFields struct {
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Email     string `db:"email"`
	Source    string `db:"source"`
}

// NewContactFields splits a payer's display name into first and last name
func NewContactFields(email, fullName string) ContactFields {
	parts := strings.Fields(fullName)
	fields := ContactFields{
		Email:  strings.ToLower(strings.TrimSpace(email)),
		Source: ContactSourceOnlineDonation,
	}
	if len(parts) > 0 {
		fields.FirstName = parts[0]
		fields.LastName = strings.Join(parts[1:], " ")
	}
	return fields
}

// AcknowledgmentRequest asks the mailer to thank a donor
type AcknowledgmentRequest struct {
	ContactID       string `json:"contact_id"`
	TransactionID   string `json:"transaction_id"`
	PaymentIntentID string `json:"payment_intent_id"`
	Amount          string `json:"amount"`
	Currency        string `json:"currency"`
	FundDesignation string `json:"fund_designation"`
	TransactedAt    string `json:"transacted_at"`
}
