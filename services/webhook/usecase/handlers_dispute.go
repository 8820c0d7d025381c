package usecase

import (
	"context"
	"errors"

	"github.com/piresc/giving/internal/pkg/apperrors"
	"github.com/piresc/giving/internal/pkg/logger"
	"github.com/piresc/giving/internal/pkg/models"
)

// the dispute id marks the note in the transaction, so disputes without one cannot be deduplicated
var errMissingDispute = errors.New("missing dispute id")

func (uc *webhookUC) handleDisputeCreated(ctx context.Context, event *models.Event, dp *models.DisputeObject) error {
	if dp.Charge == "" {
		return apperrors.Validation(string(event.Type), errMissingCharge)
	}
	if dp.ID == "" {
		return apperrors.Validation(string(event.Type), errMissingDispute)
	}

	dispute := models.Dispute{
		ChargeID:  string(dp.Charge),
		DisputeID: dp.ID,
		Reason:    valueOr(dp.Reason, "unspecified"),
		Amount:    models.MinorToMajor(dp.Amount, dp.Currency),
		Currency:  models.NormalizeCurrency(dp.Currency),
	}

	if err := uc.txns.MarkDisputed(ctx, dispute, uc.now()); err != nil {
		return apperrors.Classify(string(event.Type), err)
	}

	logger.WarnCtx(ctx, "Transaction disputed",
		logger.String("charge_id", dispute.ChargeID),
		logger.String("dispute_id", dispute.DisputeID),
		logger.String("reason", dispute.Reason))
	return nil
}
