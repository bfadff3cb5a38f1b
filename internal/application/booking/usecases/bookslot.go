package usecases

import (
	"context"
	"fmt"
	"time"

	"atelier/internal/domain/booking"
	"atelier/internal/domain/quote"
	"atelier/internal/shared/errors"
	"atelier/internal/shared/logger"
)

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type BookSlotCommand struct {
	QuoteSID string
	UserID   uint
	SlotID   uint
	Date     time.Time
}

// BookSlotUseCase reserves a consultation slot for a submitted quote. The
// capacity check runs inside the transaction so two customers cannot take the
// last place of the same occurrence.
type BookSlotUseCase struct {
	bookingRepo booking.Repository
	slotRepo    booking.SlotRepository
	quoteRepo   quote.Repository
	txManager   TransactionManager
	logger      logger.Interface
}

func NewBookSlotUseCase(
	bookingRepo booking.Repository,
	slotRepo booking.SlotRepository,
	quoteRepo quote.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *BookSlotUseCase {
	return &BookSlotUseCase{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		quoteRepo:   quoteRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *BookSlotUseCase) Execute(ctx context.Context, cmd BookSlotCommand) (*booking.Booking, error) {
	q, err := uc.quoteRepo.FindBySID(ctx, cmd.QuoteSID)
	if err != nil {
		uc.logger.Errorw("failed to get quote", "error", err, "quote_sid", cmd.QuoteSID)
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}
	if q == nil {
		return nil, errors.NewNotFoundError("quote not found")
	}
	if q.UserID() != cmd.UserID {
		return nil, errors.NewForbiddenError("quote belongs to another user")
	}
	if q.Status().IsTerminal() {
		return nil, errors.NewStateError("quote is closed")
	}

	slot, err := uc.slotRepo.FindByID(ctx, cmd.SlotID)
	if err != nil {
		uc.logger.Errorw("failed to get time slot", "error", err, "slot_id", cmd.SlotID)
		return nil, fmt.Errorf("failed to get time slot: %w", err)
	}
	if slot == nil {
		return nil, errors.NewNotFoundError("time slot not found")
	}

	b, err := booking.NewBooking(q.ID(), cmd.UserID, slot, cmd.Date)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := uc.bookingRepo.FindByQuoteID(txCtx, q.ID())
		if err != nil {
			return fmt.Errorf("failed to check existing booking: %w", err)
		}
		if existing != nil {
			return errors.NewConflictError("quote already has a booking")
		}

		count, err := uc.bookingRepo.CountBySlotDate(txCtx, slot.ID(), b.Date())
		if err != nil {
			return fmt.Errorf("failed to count bookings: %w", err)
		}
		if !slot.HasCapacity(int(count)) {
			return errors.NewConflictError("slot has no remaining capacity")
		}

		return uc.bookingRepo.Create(txCtx, b)
	})
	if err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to book slot", "error", err, "quote_sid", cmd.QuoteSID)
		}
		return nil, err
	}

	uc.logger.Infow("slot booked",
		"booking_sid", b.SID(),
		"quote_sid", q.SID(),
		"slot_id", slot.ID(),
		"date", b.Date().Format("2006-01-02"),
	)
	return b, nil
}
