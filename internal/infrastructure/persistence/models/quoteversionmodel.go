package models

import (
	"time"

	"gorm.io/datatypes"

	"atelier/internal/shared/constants"
)

// QuoteVersionModel is an immutable content snapshot of a quote.
type QuoteVersionModel struct {
	ID             uint   `gorm:"primarykey"`
	QuoteID        uint   `gorm:"not null;uniqueIndex:idx_quote_version,priority:1"`
	Version        int    `gorm:"not null;uniqueIndex:idx_quote_version,priority:2"`
	Tier           string `gorm:"not null;size:20"`
	Level          string `gorm:"not null;size:20"`
	Services       datatypes.JSON
	Contact        datatypes.JSON
	BasePrice      int `gorm:"not null"`
	ServicesPrice  int `gorm:"not null"`
	DiscountAmount int `gorm:"not null;default:0"`
	TaxRateBps     int `gorm:"not null"`
	TaxAmount      int `gorm:"not null"`
	TotalPrice     int `gorm:"not null"`
	CreatedAt      time.Time
}

func (QuoteVersionModel) TableName() string {
	return constants.TableQuoteVersions
}
