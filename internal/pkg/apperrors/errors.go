// Package apperrors classifies webhook processing failures so the HTTP layer can
// decide between acknowledging and asking the provider to retry.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the retry class of an error
type Kind int

const (
	// KindTransient covers storage or provider outages; the provider should retry.
	KindTransient Kind = iota
	// KindAuthentication covers bad or stale signatures; never retried.
	KindAuthentication
	// KindValidation covers recognized events with unusable payloads; acknowledged.
	KindValidation
	// KindLogic covers references to entities we do not have yet; retried and alerted.
	KindLogic
)

func (k Kind) String() string {
	switch k {
	case KindAuthentication:
		return "authentication"
	case KindValidation:
		return "validation"
	case KindLogic:
		return "logic"
	default:
		return "transient"
	}
}

// Sentinel errors returned by repositories
var (
	ErrTransactionNotFound       = errors.New("transaction not found")
	ErrRecurringDonationNotFound = errors.New("recurring donation not found")
	ErrWebhookEventNotFound      = errors.New("webhook event not found")
	ErrInvalidTransition         = errors.New("invalid status transition")
	ErrCircuitOpen               = errors.New("circuit breaker is open")
)

// Error wraps a cause with its kind and the operation that failed
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// Authentication marks err as an authentication failure
func Authentication(op string, err error) error { return newError(KindAuthentication, op, err) }

// Validation marks err as an unusable payload
func Validation(op string, err error) error { return newError(KindValidation, op, err) }

// Transient marks err as retryable infrastructure trouble
func Transient(op string, err error) error { return newError(KindTransient, op, err) }

// Logic marks err as a missing or inconsistent entity
func Logic(op string, err error) error { return newError(KindLogic, op, err) }

// KindOf returns the kind of the outermost classified error; unclassified errors are transient
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindTransient
}

// Is reports whether err is classified as kind
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// HTTPStatus maps an error to the status returned to the provider
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	switch KindOf(err) {
	case KindAuthentication:
		return http.StatusBadRequest
	case KindValidation:
		return http.StatusOK
	default:
		return http.StatusInternalServerError
	}
}

// Classify maps repository sentinels onto kinds; already classified errors pass through
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}
	switch {
	case errors.Is(err, ErrTransactionNotFound),
		errors.Is(err, ErrRecurringDonationNotFound),
		errors.Is(err, ErrInvalidTransition):
		return Logic(op, err)
	default:
		return Transient(op, err)
	}
}
