package models

import (
	"time"

	"atelier/internal/shared/constants"
)

// TimeSlotModel is a recurring weekly consultation window.
type TimeSlotModel struct {
	ID          uint   `gorm:"primarykey"`
	Weekday     int    `gorm:"not null;index:idx_slot_weekday"`
	StartTime   string `gorm:"not null;size:5;comment:wall clock HH:MM in business timezone"`
	EndTime     string `gorm:"not null;size:5"`
	MaxBookings int    `gorm:"not null;default:1"`
	Active      bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (TimeSlotModel) TableName() string {
	return constants.TableTimeSlots
}
