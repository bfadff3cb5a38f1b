package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"atelier/internal/shared/constants"
)

// QuoteModel is the persistence model for quotes. Selected services are a
// JSON snapshot so catalog edits never change an existing quote.
type QuoteModel struct {
	ID              uint   `gorm:"primarykey"`
	SID             string `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: qt_xxx"`
	Number          string `gorm:"uniqueIndex;size:20;comment:human readable quote number PRV-YYYY-NNNN"`
	UserID          uint   `gorm:"not null;index:idx_user_quote"`
	Tier            string `gorm:"not null;size:20;index:idx_tier"`
	Level           string `gorm:"not null;size:20"`
	Services        datatypes.JSON
	BasePrice       int    `gorm:"not null"`
	ServicesPrice   int    `gorm:"not null"`
	DiscountAmount  int    `gorm:"not null;default:0"`
	TaxRateBps      int    `gorm:"not null"`
	TaxAmount       int    `gorm:"not null"`
	TotalPrice      int    `gorm:"not null"`
	Status          string `gorm:"not null;size:20;index:idx_quote_status"`
	AdminNotes      string `gorm:"type:text"`
	Version         int    `gorm:"not null;default:1"`
	SubmittedAt     *time.Time
	ReviewStartedAt *time.Time
	DecidedAt       *time.Time
	ExpiresAt       time.Time `gorm:"not null;index:idx_expires_at"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (QuoteModel) TableName() string {
	return constants.TableQuotes
}

func (q *QuoteModel) BeforeCreate(tx *gorm.DB) error {
	if q.Version == 0 {
		q.Version = 1
	}
	return nil
}
