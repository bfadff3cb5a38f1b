package models

import (
	"time"

	"atelier/internal/shared/constants"
)

// AppliedDiscountModel records one redemption of a discount against a quote.
// The unique index on (discount_id, user_id, quote_id) backs the
// per-user-once rule.
type AppliedDiscountModel struct {
	ID         uint `gorm:"primarykey"`
	DiscountID uint `gorm:"not null;index:idx_discount_user,priority:1"`
	QuoteID    uint `gorm:"not null;uniqueIndex"`
	UserID     uint `gorm:"not null;index:idx_discount_user,priority:2"`
	Amount     int  `gorm:"not null"`
	AppliedAt  time.Time
	CreatedAt  time.Time
}

func (AppliedDiscountModel) TableName() string {
	return constants.TableAppliedDiscounts
}
