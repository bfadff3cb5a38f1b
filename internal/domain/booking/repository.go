package booking

import (
	"context"
	"time"
)

// SlotRepository persists recurring time slots. Find methods return
// (nil, nil) when no record matches.
type SlotRepository interface {
	Create(ctx context.Context, s *TimeSlot) error
	Update(ctx context.Context, s *TimeSlot) error
	FindByID(ctx context.Context, id uint) (*TimeSlot, error)
	ListActive(ctx context.Context) ([]*TimeSlot, error)
	ListAll(ctx context.Context) ([]*TimeSlot, error)
}

// Repository persists bookings.
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	Update(ctx context.Context, b *Booking) error
	FindByID(ctx context.Context, id uint) (*Booking, error)
	FindBySID(ctx context.Context, sid string) (*Booking, error)
	FindByQuoteID(ctx context.Context, quoteID uint) (*Booking, error)
	Delete(ctx context.Context, id uint) error
	// CountBySlotDate returns how many bookings exist for one occurrence.
	CountBySlotDate(ctx context.Context, slotID uint, date time.Time) (int64, error)
	// CountsInRange returns booking counts keyed by slot id and date for the
	// availability calendar.
	CountsInRange(ctx context.Context, from, until time.Time) (map[uint]map[time.Time]int, error)
	ListByDate(ctx context.Context, date time.Time) ([]*Booking, error)
}
