package booking

import "errors"

var (
	ErrSlotNotFound     = errors.New("time slot not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrSlotNotAvailable = errors.New("slot not available on that date")
	ErrSlotFull         = errors.New("slot has no remaining capacity")
	ErrDateInPast       = errors.New("booking date is in the past")
	ErrQuoteHasBooking  = errors.New("quote already has a booking")
)
