package models

import (
	"time"

	"gorm.io/gorm"

	"atelier/internal/shared/constants"
)

// BookedSlotModel reserves one occurrence of a time slot for a quote.
type BookedSlotModel struct {
	ID        uint      `gorm:"primarykey"`
	SID       string    `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: bk_xxx"`
	QuoteID   uint      `gorm:"not null;uniqueIndex"`
	UserID    uint      `gorm:"not null;index:idx_booking_user"`
	SlotID    uint      `gorm:"not null;index:idx_slot_date,priority:1"`
	Date      time.Time `gorm:"not null;index:idx_slot_date,priority:2"`
	Confirmed bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (BookedSlotModel) TableName() string {
	return constants.TableBookedSlots
}
