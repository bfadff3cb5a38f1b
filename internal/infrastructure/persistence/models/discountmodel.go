package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"atelier/internal/shared/constants"
)

// DiscountModel is the persistence model for promotional codes.
type DiscountModel struct {
	ID          uint   `gorm:"primarykey"`
	SID         string `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: dc_xxx"`
	Code        string `gorm:"uniqueIndex;not null;size:50"`
	Description string `gorm:"size:500"`
	Type        string `gorm:"not null;size:20"`
	Value       int    `gorm:"not null"`
	AppliesTo   datatypes.JSON
	UsageLimit  int  `gorm:"not null;default:0"`
	UsageCount  int  `gorm:"not null;default:0"`
	PerUserOnce bool `gorm:"not null;default:false"`
	ValidFrom   *time.Time
	ValidUntil  *time.Time
	Active      bool `gorm:"not null;default:true;index:idx_discount_active"`
	Version     int  `gorm:"not null;default:1"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (DiscountModel) TableName() string {
	return constants.TableDiscounts
}

func (d *DiscountModel) BeforeCreate(tx *gorm.DB) error {
	if d.Version == 0 {
		d.Version = 1
	}
	return nil
}
