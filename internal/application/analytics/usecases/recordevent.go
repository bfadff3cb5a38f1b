package usecases

import (
	"context"
	"fmt"

	"atelier/internal/domain/analytics"
	"atelier/internal/shared/errors"
	"atelier/internal/shared/logger"
)

type RecordEventCommand struct {
	SessionID string
	UserID    *uint
	Type      string
	Tier      string
	Level     string
	Metadata  string
}

type RecordEventUseCase struct {
	eventRepo analytics.Repository
	logger    logger.Interface
}

func NewRecordEventUseCase(eventRepo analytics.Repository, logger logger.Interface) *RecordEventUseCase {
	return &RecordEventUseCase{eventRepo: eventRepo, logger: logger}
}

func (uc *RecordEventUseCase) Execute(ctx context.Context, cmd RecordEventCommand) error {
	e, err := analytics.NewJourneyEvent(cmd.SessionID, cmd.UserID, analytics.EventType(cmd.Type), cmd.Tier, cmd.Level, cmd.Metadata)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}
	if err := uc.eventRepo.Create(ctx, e); err != nil {
		uc.logger.Errorw("failed to record journey event", "error", err, "type", cmd.Type)
		return fmt.Errorf("failed to record journey event: %w", err)
	}
	return nil
}
