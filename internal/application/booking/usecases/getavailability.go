package usecases

import (
	"context"
	"fmt"

	"atelier/internal/domain/booking"
	"atelier/internal/shared/biztime"
	"atelier/internal/shared/errors"
	"atelier/internal/shared/logger"
)

// maxAvailabilityDays bounds how far ahead the calendar is computed.
const maxAvailabilityDays = 60

type GetAvailabilityQuery struct {
	Days int
}

type GetAvailabilityUseCase struct {
	slotRepo    booking.SlotRepository
	bookingRepo booking.Repository
	logger      logger.Interface
}

func NewGetAvailabilityUseCase(
	slotRepo booking.SlotRepository,
	bookingRepo booking.Repository,
	logger logger.Interface,
) *GetAvailabilityUseCase {
	return &GetAvailabilityUseCase{slotRepo: slotRepo, bookingRepo: bookingRepo, logger: logger}
}

func (uc *GetAvailabilityUseCase) Execute(ctx context.Context, query GetAvailabilityQuery) ([]booking.SlotAvailability, error) {
	days := query.Days
	if days <= 0 {
		days = 14
	}
	if days > maxAvailabilityDays {
		return nil, errors.NewValidationError(fmt.Sprintf("availability window cannot exceed %d days", maxAvailabilityDays))
	}

	slots, err := uc.slotRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list time slots", "error", err)
		return nil, fmt.Errorf("failed to list time slots: %w", err)
	}

	// Start from tomorrow: same-day calls are arranged by phone.
	from := biztime.BusinessDate(biztime.NowUTC()).AddDate(0, 0, 1)
	counts, err := uc.bookingRepo.CountsInRange(ctx, from, from.AddDate(0, 0, days))
	if err != nil {
		uc.logger.Errorw("failed to count bookings", "error", err)
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}

	return booking.BuildAvailability(slots, from, days, counts), nil
}
