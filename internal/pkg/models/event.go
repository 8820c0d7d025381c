package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// EventType is the provider's event tag
type EventType string

const (
	EventPaymentIntentSucceeded     EventType = "payment_intent.succeeded"
	EventPaymentIntentPaymentFailed EventType = "payment_intent.payment_failed"
	EventChargeSucceeded            EventType = "charge.succeeded"
	EventChargeFailed               EventType = "charge.failed"
	EventInvoicePaymentSucceeded    EventType = "invoice.payment_succeeded"
	EventInvoicePaymentFailed       EventType = "invoice.payment_failed"
	EventSubscriptionCreated        EventType = "customer.subscription.created"
	EventSubscriptionUpdated        EventType = "customer.subscription.updated"
	EventSubscriptionDeleted        EventType = "customer.subscription.deleted"
	EventChargeDisputeCreated       EventType = "charge.dispute.created"
)

// SupportedEventTypes lists every tag the dispatcher must route
var SupportedEventTypes = []EventType{
	EventPaymentIntentSucceeded,
	EventPaymentIntentPaymentFailed,
	EventChargeSucceeded,
	EventChargeFailed,
	EventInvoicePaymentSucceeded,
	EventInvoicePaymentFailed,
	EventSubscriptionCreated,
	EventSubscriptionUpdated,
	EventSubscriptionDeleted,
	EventChargeDisputeCreated,
}

// Event is a verified provider event envelope
type Event struct {
	ID      string    `json:"id"`
	Type    EventType `json:"type"`
	Created int64     `json:"created"`
	Data    EventData `json:"data"`

	// Raw holds the verified request body
	Raw json.RawMessage `json:"-"`
}

// EventData carries the event's object
type EventData struct {
	Object json.RawMessage `json:"object"`
}

// CreatedAt returns the provider-side creation time of the event
func (e *Event) CreatedAt() time.Time {
	return time.Unix(e.Created, 0).UTC()
}

// DecodeObject unmarshals data.object into dst
func (e *Event) DecodeObject(dst interface{}) error {
	if len(e.Data.Object) == 0 {
		return fmt.Errorf("event %s has no data.object", e.ID)
	}
	if err := json.Unmarshal(e.Data.Object, dst); err != nil {
		return fmt.Errorf("failed to decode %s object: %w", e.Type, err)
	}
	return nil
}

// ExpandableID accepts either a bare id string or an expanded object with an id field
type ExpandableID string

// UnmarshalJSON implements json.Unmarshaler
func (x *ExpandableID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*x = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*x = ExpandableID(s)
		return nil
	}
	var obj struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	*x = ExpandableID(obj.ID)
	return nil
}

// PaymentIntentObject is the payload of payment_intent.* events
type PaymentIntentObject struct {
	ID               string            `json:"id"`
	Amount           int64             `json:"amount"`
	Currency         string            `json:"currency"`
	Customer         ExpandableID      `json:"customer"`
	LatestCharge     ExpandableID      `json:"latest_charge"`
	Invoice          ExpandableID      `json:"invoice"`
	ReceiptEmail     string            `json:"receipt_email"`
	Status           string            `json:"status"`
	Metadata         map[string]string `json:"metadata"`
	LastPaymentError *struct {
		Message string `json:"message"`
	} `json:"last_payment_error"`
}

// ChargeObject is the payload of charge.* events
type ChargeObject struct {
	ID                   string       `json:"id"`
	PaymentIntent        ExpandableID `json:"payment_intent"`
	Invoice              ExpandableID `json:"invoice"`
	Amount               int64        `json:"amount"`
	Currency             string       `json:"currency"`
	ReceiptURL           string       `json:"receipt_url"`
	ApplicationFeeAmount int64        `json:"application_fee_amount"`
	FailureMessage       string       `json:"failure_message"`
}

// InvoiceObject is the payload of invoice.* events
type InvoiceObject struct {
	ID                  string       `json:"id"`
	Subscription        ExpandableID `json:"subscription"`
	Customer            ExpandableID `json:"customer"`
	PaymentIntent       ExpandableID `json:"payment_intent"`
	Charge              ExpandableID `json:"charge"`
	AmountPaid          int64        `json:"amount_paid"`
	Currency            string       `json:"currency"`
	SubscriptionDetails *struct {
		Metadata map[string]string `json:"metadata"`
	} `json:"subscription_details"`
	StatusTransitions struct {
		PaidAt int64 `json:"paid_at"`
	} `json:"status_transitions"`
}

// SubscriptionMetadata returns the subscription metadata snapshot carried on the invoice
func (i *InvoiceObject) SubscriptionMetadata() map[string]string {
	if i.SubscriptionDetails == nil {
		return nil
	}
	return i.SubscriptionDetails.Metadata
}

// PriceRecurring is the billing cadence of a price
type PriceRecurring struct {
	Interval      string `json:"interval"`
	IntervalCount int    `json:"interval_count"`
}

// Price is a subscription item's price
type Price struct {
	UnitAmount int64           `json:"unit_amount"`
	Currency   string          `json:"currency"`
	Recurring  *PriceRecurring `json:"recurring"`
}

// SubscriptionObject is the payload of customer.subscription.* events
type SubscriptionObject struct {
	ID               string            `json:"id"`
	Status           string            `json:"status"`
	Customer         ExpandableID      `json:"customer"`
	Currency         string            `json:"currency"`
	Created          int64             `json:"created"`
	CurrentPeriodEnd int64             `json:"current_period_end"`
	Metadata         map[string]string `json:"metadata"`
	Items            struct {
		Data []struct {
			Price *Price `json:"price"`
		} `json:"data"`
	} `json:"items"`
}

// FirstPrice returns the price of the first subscription item, if any
func (s *SubscriptionObject) FirstPrice() *Price {
	if len(s.Items.Data) == 0 {
		return nil
	}
	return s.Items.Data[0].Price
}

// DisputeObject is the payload of charge.dispute.* events
type DisputeObject struct {
	ID       string       `json:"id"`
	Charge   ExpandableID `json:"charge"`
	Amount   int64        `json:"amount"`
	Currency string       `json:"currency"`
	Reason   string       `json:"reason"`
}

// Metadata keys written by the giving form
const (
	MetadataContactID       = "contact_id"
	MetadataFundDesignation = "fund_designation"
	MetadataCategory        = "category"
	MetadataIsAnonymous     = "is_anonymous"
	MetadataNotes           = "notes"
	MetadataFrequency       = "frequency"
	MetadataDonorName       = "donor_name"
)
