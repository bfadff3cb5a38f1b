package booking

import (
	"fmt"
	"time"

	"atelier/internal/shared/biztime"
	"atelier/internal/shared/id"
)

// Booking reserves one occurrence of a time slot for a quote's consultation
// call. Date is a business-timezone calendar day at midnight UTC.
type Booking struct {
	id        uint
	sid       string
	quoteID   uint
	userID    uint
	slotID    uint
	date      time.Time
	confirmed bool
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking reserves the slot occurrence on the given date. The date must
// fall on the slot's weekday and not be in the past.
func NewBooking(quoteID, userID uint, slot *TimeSlot, date time.Time) (*Booking, error) {
	if quoteID == 0 {
		return nil, fmt.Errorf("booking quote is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("booking owner is required")
	}
	if slot == nil || slot.ID() == 0 {
		return nil, fmt.Errorf("booking slot is required")
	}

	date = biztime.BusinessDate(date)
	if !slot.MatchesDate(date) {
		return nil, ErrSlotNotAvailable
	}
	if date.Before(biztime.BusinessDate(biztime.NowUTC())) {
		return nil, ErrDateInPast
	}

	now := time.Now().UTC()
	return &Booking{
		sid:       id.FormatWithPrefix(id.PrefixBooking, id.MustGenerate(id.DefaultLength)),
		quoteID:   quoteID,
		userID:    userID,
		slotID:    slot.ID(),
		date:      date,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructBooking rebuilds a booking from persistence.
func ReconstructBooking(bookingID uint, sid string, quoteID, userID, slotID uint, date time.Time, confirmed bool, createdAt, updatedAt time.Time) (*Booking, error) {
	if bookingID == 0 {
		return nil, fmt.Errorf("booking ID cannot be zero")
	}
	return &Booking{
		id:        bookingID,
		sid:       sid,
		quoteID:   quoteID,
		userID:    userID,
		slotID:    slotID,
		date:      date,
		confirmed: confirmed,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (b *Booking) ID() uint             { return b.id }
func (b *Booking) SID() string          { return b.sid }
func (b *Booking) QuoteID() uint        { return b.quoteID }
func (b *Booking) UserID() uint         { return b.userID }
func (b *Booking) GetOwnerID() uint     { return b.userID }
func (b *Booking) SlotID() uint         { return b.slotID }
func (b *Booking) Date() time.Time      { return b.date }
func (b *Booking) IsConfirmed() bool    { return b.confirmed }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// SetID assigns the persistence identifier exactly once.
func (b *Booking) SetID(bookingID uint) error {
	if b.id != 0 {
		return fmt.Errorf("booking ID is already set")
	}
	if bookingID == 0 {
		return fmt.Errorf("booking ID cannot be zero")
	}
	b.id = bookingID
	return nil
}

// Confirm marks the call as confirmed by the agency.
func (b *Booking) Confirm() {
	b.confirmed = true
	b.updatedAt = time.Now().UTC()
}
