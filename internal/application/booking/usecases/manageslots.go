package usecases

import (
	"context"
	"fmt"
	"time"

	"atelier/internal/domain/account"
	"atelier/internal/domain/booking"
	"atelier/internal/shared/errors"
	"atelier/internal/shared/logger"
)

type CreateSlotCommand struct {
	AdminID     uint
	Weekday     int
	StartTime   string
	EndTime     string
	MaxBookings int
}

type UpdateSlotCommand struct {
	AdminID     uint
	SlotID      uint
	MaxBookings int
	Active      *bool
}

// ManageSlotsUseCase is the admin surface for the weekly consultation
// schedule.
type ManageSlotsUseCase struct {
	slotRepo  booking.SlotRepository
	auditRepo account.AuditRepository
	txManager TransactionManager
	logger    logger.Interface
}

func NewManageSlotsUseCase(
	slotRepo booking.SlotRepository,
	auditRepo account.AuditRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *ManageSlotsUseCase {
	return &ManageSlotsUseCase{
		slotRepo:  slotRepo,
		auditRepo: auditRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *ManageSlotsUseCase) Create(ctx context.Context, cmd CreateSlotCommand) (*booking.TimeSlot, error) {
	if cmd.Weekday < 0 || cmd.Weekday > 6 {
		return nil, errors.NewValidationError("weekday must be 0 (Sunday) through 6 (Saturday)")
	}

	slot, err := booking.NewTimeSlot(time.Weekday(cmd.Weekday), cmd.StartTime, cmd.EndTime, cmd.MaxBookings)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.slotRepo.Create(txCtx, slot); err != nil {
			return fmt.Errorf("failed to create time slot: %w", err)
		}
		detail := fmt.Sprintf("%s %s-%s", slot.Weekday(), slot.StartTime(), slot.EndTime())
		entry := account.NewAuditEntry(cmd.AdminID, account.AuditSlotCreated, "time_slot", slot.ID(), detail)
		return uc.auditRepo.Create(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("failed to create time slot", "error", err)
		return nil, err
	}

	uc.logger.Infow("time slot created",
		"slot_id", slot.ID(),
		"weekday", slot.Weekday(),
		"start", slot.StartTime(),
	)
	return slot, nil
}

func (uc *ManageSlotsUseCase) Update(ctx context.Context, cmd UpdateSlotCommand) (*booking.TimeSlot, error) {
	slot, err := uc.slotRepo.FindByID(ctx, cmd.SlotID)
	if err != nil {
		uc.logger.Errorw("failed to get time slot", "error", err, "slot_id", cmd.SlotID)
		return nil, fmt.Errorf("failed to get time slot: %w", err)
	}
	if slot == nil {
		return nil, errors.NewNotFoundError("time slot not found")
	}

	if cmd.MaxBookings > 0 {
		if err := slot.UpdateCapacity(cmd.MaxBookings); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Active != nil {
		if *cmd.Active {
			slot.Activate()
		} else {
			slot.Deactivate()
		}
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.slotRepo.Update(txCtx, slot); err != nil {
			return fmt.Errorf("failed to update time slot: %w", err)
		}
		entry := account.NewAuditEntry(cmd.AdminID, account.AuditSlotUpdated, "time_slot", slot.ID(), "")
		return uc.auditRepo.Create(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("failed to update time slot", "error", err, "slot_id", cmd.SlotID)
		return nil, err
	}
	return slot, nil
}

func (uc *ManageSlotsUseCase) ListAll(ctx context.Context) ([]*booking.TimeSlot, error) {
	slots, err := uc.slotRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list time slots", "error", err)
		return nil, fmt.Errorf("failed to list time slots: %w", err)
	}
	return slots, nil
}
