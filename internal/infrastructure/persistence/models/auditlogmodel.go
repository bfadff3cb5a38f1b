package models

import (
	"time"

	"atelier/internal/shared/constants"
)

// AuditLogModel is one append-only admin action record.
type AuditLogModel struct {
	ID         uint   `gorm:"primarykey"`
	ActorID    uint   `gorm:"not null;index:idx_audit_actor"`
	Action     string `gorm:"not null;size:50"`
	TargetType string `gorm:"not null;size:30;index:idx_audit_target,priority:1"`
	TargetID   uint   `gorm:"not null;index:idx_audit_target,priority:2"`
	Detail     string `gorm:"size:500"`
	CreatedAt  time.Time
}

func (AuditLogModel) TableName() string {
	return constants.TableAdminAuditLog
}
