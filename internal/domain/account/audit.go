package account

import "time"

// AuditAction identifies what an admin did.
type AuditAction string

const (
	AuditQuoteReviewStarted AuditAction = "quote.review_started"
	AuditQuoteAccepted      AuditAction = "quote.accepted"
	AuditQuoteRejected      AuditAction = "quote.rejected"
	AuditQuoteNotesUpdated  AuditAction = "quote.notes_updated"
	AuditDiscountCreated    AuditAction = "discount.created"
	AuditDiscountEnabled    AuditAction = "discount.enabled"
	AuditDiscountDisabled   AuditAction = "discount.disabled"
	AuditSlotCreated        AuditAction = "slot.created"
	AuditSlotUpdated        AuditAction = "slot.updated"
	AuditRoleChanged        AuditAction = "account.role_changed"
)

// AuditEntry is one immutable line in the admin audit trail.
type AuditEntry struct {
	ID         uint
	ActorID    uint
	Action     AuditAction
	TargetType string
	TargetID   uint
	Detail     string
	CreatedAt  time.Time
}

// NewAuditEntry records an admin action against a target entity.
func NewAuditEntry(actorID uint, action AuditAction, targetType string, targetID uint, detail string) *AuditEntry {
	return &AuditEntry{
		ActorID:    actorID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Detail:     detail,
		CreatedAt:  time.Now().UTC(),
	}
}
