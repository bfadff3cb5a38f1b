package usecases

import (
	"context"
	"fmt"

	"atelier/internal/domain/booking"
	"atelier/internal/shared/errors"
	"atelier/internal/shared/logger"
)

type CancelBookingCommand struct {
	BookingSID string
	UserID     uint
	IsAdmin    bool
}

type CancelBookingUseCase struct {
	bookingRepo booking.Repository
	logger      logger.Interface
}

func NewCancelBookingUseCase(bookingRepo booking.Repository, logger logger.Interface) *CancelBookingUseCase {
	return &CancelBookingUseCase{bookingRepo: bookingRepo, logger: logger}
}

func (uc *CancelBookingUseCase) Execute(ctx context.Context, cmd CancelBookingCommand) error {
	b, err := uc.bookingRepo.FindBySID(ctx, cmd.BookingSID)
	if err != nil {
		uc.logger.Errorw("failed to get booking", "error", err, "booking_sid", cmd.BookingSID)
		return fmt.Errorf("failed to get booking: %w", err)
	}
	if b == nil {
		return errors.NewNotFoundError("booking not found")
	}
	if !cmd.IsAdmin && b.UserID() != cmd.UserID {
		return errors.NewForbiddenError("booking belongs to another user")
	}

	if err := uc.bookingRepo.Delete(ctx, b.ID()); err != nil {
		uc.logger.Errorw("failed to cancel booking", "error", err, "booking_sid", cmd.BookingSID)
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	uc.logger.Infow("booking cancelled", "booking_sid", b.SID(), "quote_id", b.QuoteID())
	return nil
}
