package models

import "time"

// WebhookEvent is the dedup ledger row for one provider event id
type WebhookEvent struct {
	EventID      string      `json:"event_id" db:"event_id"`
	EventType    EventType   `json:"event_type" db:"event_type"`
	Payload      JSONPayload `json:"payload" db:"payload"`
	Processed    bool        `json:"processed" db:"processed"`
	ProcessedAt  *time.Time  `json:"processed_at,omitempty" db:"processed_at"`
	ErrorMessage *string     `json:"error_message,omitempty" db:"error_message"`
	RetryCount   int         `json:"retry_count" db:"retry_count"`
	ReceivedAt   time.Time   `json:"received_at" db:"received_at"`
	ClaimedAt    *time.Time  `json:"claimed_at,omitempty" db:"claimed_at"`
}

// WebhookEventState filters ledger rows by processing outcome
type WebhookEventState string

const (
	WebhookEventStateProcessed WebhookEventState = "processed"
	WebhookEventStateFailed    WebhookEventState = "failed"
	WebhookEventStatePending   WebhookEventState = "pending"
)

// Valid reports whether s is a known filter value. The empty state matches everything.
func (s WebhookEventState) Valid() bool {
	switch s {
	case "", WebhookEventStateProcessed, WebhookEventStateFailed, WebhookEventStatePending:
		return true
	}
	return false
}

// WebhookEventFilter narrows ListEvents results
type WebhookEventFilter struct {
	State     WebhookEventState
	EventType EventType
	Limit     int
}

// ProcessOutcome describes what the pipeline did with a delivery
type ProcessOutcome string

const (
	OutcomeProcessed ProcessOutcome = "processed"
	OutcomeDuplicate ProcessOutcome = "duplicate"
	OutcomeIgnored   ProcessOutcome = "ignored" // unknown event type
	OutcomeSkipped   ProcessOutcome = "skipped" // recognized but unusable payload
)

// ProcessResult is returned for every acknowledged delivery
type ProcessResult struct {
	EventID   string         `json:"event_id"`
	EventType EventType      `json:"event_type"`
	Outcome   ProcessOutcome `json:"outcome"`
}

// WebhookAck is the body returned to the provider on success
type WebhookAck struct {
	Received bool `json:"received"`
}
