package discount

import (
	"time"

	"atelier/internal/domain/catalog"
)

// InvalidReason explains why a code failed validation. Handed back to the
// frontend verbatim, so the values are part of the API.
type InvalidReason string

const (
	ReasonNotFound         InvalidReason = "not_found"
	ReasonInactive         InvalidReason = "inactive"
	ReasonNotStarted       InvalidReason = "not_started"
	ReasonExpired          InvalidReason = "expired"
	ReasonUsageLimit       InvalidReason = "usage_limit_reached"
	ReasonTierNotEligible  InvalidReason = "tier_not_eligible"
	ReasonAlreadyUsedByYou InvalidReason = "already_used"
)

// ValidationResult is the outcome of checking a code against a selection.
// When Valid is false, Reason says why; Amount is only meaningful when valid.
type ValidationResult struct {
	Valid  bool          `json:"valid"`
	Reason InvalidReason `json:"reason,omitempty"`
	Amount int           `json:"amount"`
}

func invalid(reason InvalidReason) ValidationResult {
	return ValidationResult{Valid: false, Reason: reason}
}

// Validate checks the discount against a tier selection and subtotal at a
// point in time. usedBefore reports whether the requesting user has already
// redeemed this code.
func (d *Discount) Validate(tier catalog.Tier, subtotal int, now time.Time, usedBefore bool) ValidationResult {
	if !d.active {
		return invalid(ReasonInactive)
	}
	if !d.validFrom.IsZero() && now.Before(d.validFrom) {
		return invalid(ReasonNotStarted)
	}
	if !d.validUntil.IsZero() && now.After(d.validUntil) {
		return invalid(ReasonExpired)
	}
	if d.usageLimit > 0 && d.usageCount >= d.usageLimit {
		return invalid(ReasonUsageLimit)
	}
	if !d.AppliesToTier(tier) {
		return invalid(ReasonTierNotEligible)
	}
	if d.perUserOnce && usedBefore {
		return invalid(ReasonAlreadyUsedByYou)
	}
	return ValidationResult{Valid: true, Amount: d.CalculateAmount(subtotal)}
}
