package models

import (
	"time"

	"atelier/internal/shared/constants"
)

// JourneyEventModel is one recorded pricing page interaction.
type JourneyEventModel struct {
	ID        uint      `gorm:"primarykey"`
	SessionID string    `gorm:"not null;size:64;index:idx_journey_session"`
	UserID    *uint     `gorm:"index:idx_journey_user"`
	Type      string    `gorm:"not null;size:40;index:idx_journey_type"`
	Tier      string    `gorm:"size:20"`
	Level     string    `gorm:"size:20"`
	Metadata  string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"index:idx_journey_created"`
}

func (JourneyEventModel) TableName() string {
	return constants.TableJourneyEvents
}
