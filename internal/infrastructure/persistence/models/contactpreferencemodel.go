package models

import (
	"time"

	"atelier/internal/shared/constants"
)

// ContactPreferenceModel stores how the customer wants to be reached for one
// quote, normalized out of the quote row for the outreach tooling.
type ContactPreferenceModel struct {
	ID            uint   `gorm:"primarykey"`
	QuoteID       uint   `gorm:"not null;uniqueIndex"`
	Name          string `gorm:"not null;size:200"`
	Email         string `gorm:"size:255;index"`
	Phone         string `gorm:"size:50"`
	Channel       string `gorm:"not null;size:20"`
	PreferredTime string `gorm:"size:100"`
	Message       string `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (ContactPreferenceModel) TableName() string {
	return constants.TableContactPreferences
}
