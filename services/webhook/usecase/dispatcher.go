package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/giving/internal/pkg/apperrors"
	"github.com/piresc/giving/internal/pkg/models"
)

// Handler applies one verified event
type Handler func(ctx context.Context, event *models.Event) error

// Dispatcher routes an event to the single handler registered for its type
type Dispatcher struct {
	handlers map[models.EventType]Handler
}

// NewDispatcher fails when a supported event type has no handler
func NewDispatcher(handlers map[models.EventType]Handler) (*Dispatcher, error) {
	for _, eventType := range models.SupportedEventTypes {
		if handlers[eventType] == nil {
			return nil, fmt.Errorf("no handler registered for %s", eventType)
		}
	}
	return &Dispatcher{handlers: handlers}, nil
}

// Dispatch runs the event's handler. It reports false, with no error, for unknown types.
func (d *Dispatcher) Dispatch(ctx context.Context, event *models.Event) (bool, error) {
	handler, ok := d.handlers[event.Type]
	if !ok {
		return false, nil
	}
	return true, handler(ctx, event)
}

// route decodes data.object into T before calling fn. An undecodable object is a validation error.
func route[T any](fn func(ctx context.Context, event *models.Event, obj *T) error) Handler {
	return func(ctx context.Context, event *models.Event) error {
		var obj T
		if err := event.DecodeObject(&obj); err != nil {
			return apperrors.Validation(string(event.Type), err)
		}
		return fn(ctx, event, &obj)
	}
}
