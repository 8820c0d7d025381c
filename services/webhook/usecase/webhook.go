package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/giving/internal/pkg/apperrors"
	"github.com/piresc/giving/internal/pkg/logger"
	"github.com/piresc/giving/internal/pkg/models"
	nrpkg "github.com/piresc/giving/internal/pkg/newrelic"
)

// ProcessWebhook verifies, deduplicates and applies one delivery.
// A nil error means the provider should be answered 200.
func (uc *webhookUC) ProcessWebhook(ctx context.Context, payload []byte, signature string) (*models.ProcessResult, error) {
	event, err := uc.verifier.Verify(payload, signature)
	if err != nil {
		logger.WarnCtx(ctx, "Rejected webhook delivery", logger.Err(err))
		if !apperrors.Is(err, apperrors.KindAuthentication) {
			err = apperrors.Authentication("verify signature", err)
		}
		return nil, err
	}

	result := &models.ProcessResult{EventID: event.ID, EventType: event.Type}
	fields := []logger.Field{logger.EventID(event.ID), logger.EventType(string(event.Type))}

	if uc.cache != nil {
		hit, err := uc.cache.IsProcessed(ctx, event.ID)
		if err != nil {
			logger.WarnCtx(ctx, "Processed cache lookup failed", append(fields, logger.Err(err))...)
		} else if hit {
			logger.DebugCtx(ctx, "Duplicate webhook event served from cache", fields...)
			result.Outcome = models.OutcomeDuplicate
			return result, nil
		}
	}

	isNew, err := uc.ledger.RecordIfNew(ctx, event)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to record webhook event", append(fields, logger.Err(err))...)
		return nil, apperrors.Transient("record event", err)
	}
	if !isNew {
		logger.InfoCtx(ctx, "Duplicate webhook event", fields...)
		result.Outcome = models.OutcomeDuplicate
		return result, nil
	}

	handled, err := uc.dispatch(ctx, event)

	// Ledger bookkeeping must survive a client that already hung up
	finalizeCtx := context.WithoutCancel(ctx)

	switch {
	case err == nil && handled:
		result.Outcome = models.OutcomeProcessed
	case err == nil:
		logger.WarnCtx(ctx, "Unhandled webhook event type", fields...)
		result.Outcome = models.OutcomeIgnored
	case apperrors.Is(err, apperrors.KindValidation):
		logger.WarnCtx(ctx, "Skipping unusable webhook event", append(fields, logger.Err(err))...)
		result.Outcome = models.OutcomeSkipped
	default:
		kind := apperrors.KindOf(err)
		failFields := append(fields, logger.Err(err), logger.String("error_kind", kind.String()))
		if kind == apperrors.KindLogic {
			logger.ErrorCtx(ctx, "Webhook event references missing state", append(failFields, logger.Bool("alert", true))...)
		} else {
			logger.ErrorCtx(ctx, "Webhook event processing failed", failFields...)
		}
		if markErr := uc.ledger.MarkFailed(finalizeCtx, event.ID, err); markErr != nil {
			logger.ErrorCtx(ctx, "Failed to mark webhook event failed", append(fields, logger.Err(markErr))...)
		}
		return nil, err
	}

	if err := uc.ledger.MarkProcessed(finalizeCtx, event.ID); err != nil {
		logger.ErrorCtx(ctx, "Failed to mark webhook event processed", append(fields, logger.Err(err))...)
		return nil, apperrors.Transient("mark processed", err)
	}

	if uc.cache != nil {
		if err := uc.cache.MarkProcessed(finalizeCtx, event.ID); err != nil {
			logger.WarnCtx(ctx, "Failed to cache processed webhook event", append(fields, logger.Err(err))...)
		}
	}

	logger.InfoCtx(ctx, "Webhook event handled", append(fields, logger.String("outcome", string(result.Outcome)))...)
	return result, nil
}

func (uc *webhookUC) dispatch(ctx context.Context, event *models.Event) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.processingTimeout())
	defer cancel()

	var handled bool
	err := nrpkg.WithSegment(ctx, "webhook/"+string(event.Type), func() error {
		var err error
		handled, err = uc.dispatcher.Dispatch(ctx, event)
		return err
	})
	return handled, err
}

// GetEvent returns the ledger row for eventID
func (uc *webhookUC) GetEvent(ctx context.Context, eventID string) (*models.WebhookEvent, error) {
	return uc.ledger.GetEvent(ctx, eventID)
}

// ListEvents returns ledger rows matching filter
func (uc *webhookUC) ListEvents(ctx context.Context, filter models.WebhookEventFilter) ([]*models.WebhookEvent, error) {
	if !filter.State.Valid() {
		return nil, apperrors.Validation("list events", fmt.Errorf("unknown state %q", filter.State))
	}
	return uc.ledger.ListEvents(ctx, filter)
}
