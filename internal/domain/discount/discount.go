package discount

import (
	"fmt"
	"time"

	"atelier/internal/domain/catalog"
	"atelier/internal/shared/id"
	"atelier/internal/shared/utils"
)

// Type distinguishes how a discount reduces the subtotal.
type Type string

const (
	// TypePercentage takes value as a percentage of the subtotal, floored.
	TypePercentage Type = "percentage"
	// TypeFixed takes value as a whole-euro amount, capped at the subtotal.
	TypeFixed Type = "fixed"
)

func (t Type) IsValid() bool {
	return t == TypePercentage || t == TypeFixed
}

// Discount is a promotional code the agency hands out during campaigns.
type Discount struct {
	id          uint
	sid         string
	code        string
	description string
	kind        Type
	value       int
	appliesTo   []catalog.Tier
	usageLimit  int
	usageCount  int
	perUserOnce bool
	validFrom   time.Time
	validUntil  time.Time
	active      bool
	version     int
	createdAt   time.Time
	updatedAt   time.Time
}

// NewDiscount creates an active discount. An empty appliesTo means the code
// works for every tier. usageLimit zero means unlimited.
func NewDiscount(code, description string, kind Type, value int, appliesTo []catalog.Tier, usageLimit int, perUserOnce bool, validFrom, validUntil time.Time) (*Discount, error) {
	code = utils.NormalizeDiscountCode(code)
	if code == "" {
		return nil, fmt.Errorf("discount code is required")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid discount type: %s", kind)
	}
	if value <= 0 {
		return nil, fmt.Errorf("discount value must be positive")
	}
	if kind == TypePercentage && value > 100 {
		return nil, fmt.Errorf("percentage discount cannot exceed 100")
	}
	if usageLimit < 0 {
		return nil, fmt.Errorf("usage limit cannot be negative")
	}
	if !validUntil.IsZero() && !validFrom.IsZero() && validUntil.Before(validFrom) {
		return nil, fmt.Errorf("validity window ends before it starts")
	}
	for _, tier := range appliesTo {
		if !tier.IsValid() {
			return nil, fmt.Errorf("invalid tier in scope: %s", tier)
		}
	}

	now := time.Now().UTC()
	return &Discount{
		sid:         id.FormatWithPrefix(id.PrefixDiscount, id.MustGenerate(id.DefaultLength)),
		code:        code,
		description: description,
		kind:        kind,
		value:       value,
		appliesTo:   appliesTo,
		usageLimit:  usageLimit,
		perUserOnce: perUserOnce,
		validFrom:   validFrom,
		validUntil:  validUntil,
		active:      true,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructDiscount rebuilds a discount from persistence.
func ReconstructDiscount(
	discountID uint, sid, code, description string, kind Type, value int,
	appliesTo []catalog.Tier, usageLimit, usageCount int, perUserOnce bool,
	validFrom, validUntil time.Time, active bool, version int,
	createdAt, updatedAt time.Time,
) (*Discount, error) {
	if discountID == 0 {
		return nil, fmt.Errorf("discount ID cannot be zero")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid discount type: %s", kind)
	}

	return &Discount{
		id:          discountID,
		sid:         sid,
		code:        code,
		description: description,
		kind:        kind,
		value:       value,
		appliesTo:   appliesTo,
		usageLimit:  usageLimit,
		usageCount:  usageCount,
		perUserOnce: perUserOnce,
		validFrom:   validFrom,
		validUntil:  validUntil,
		active:      active,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (d *Discount) ID() uint                  { return d.id }
func (d *Discount) SID() string               { return d.sid }
func (d *Discount) Code() string              { return d.code }
func (d *Discount) Description() string       { return d.description }
func (d *Discount) Kind() Type                { return d.kind }
func (d *Discount) Value() int                { return d.value }
func (d *Discount) AppliesTo() []catalog.Tier { return d.appliesTo }
func (d *Discount) UsageLimit() int           { return d.usageLimit }
func (d *Discount) UsageCount() int           { return d.usageCount }
func (d *Discount) PerUserOnce() bool         { return d.perUserOnce }
func (d *Discount) ValidFrom() time.Time      { return d.validFrom }
func (d *Discount) ValidUntil() time.Time     { return d.validUntil }
func (d *Discount) IsActive() bool            { return d.active }
func (d *Discount) Version() int              { return d.version }
func (d *Discount) CreatedAt() time.Time      { return d.createdAt }
func (d *Discount) UpdatedAt() time.Time      { return d.updatedAt }

// SetID assigns the persistence identifier exactly once.
func (d *Discount) SetID(discountID uint) error {
	if d.id != 0 {
		return fmt.Errorf("discount ID is already set")
	}
	if discountID == 0 {
		return fmt.Errorf("discount ID cannot be zero")
	}
	d.id = discountID
	return nil
}

// AppliesToTier reports whether the code's scope includes the tier. An empty
// scope means all tiers.
func (d *Discount) AppliesToTier(tier catalog.Tier) bool {
	if len(d.appliesTo) == 0 {
		return true
	}
	for _, t := range d.appliesTo {
		if t == tier {
			return true
		}
	}
	return false
}

// CalculateAmount returns the euro reduction for a subtotal. Percentage
// discounts floor, fixed discounts cap at the subtotal, and the result is
// never negative.
func (d *Discount) CalculateAmount(subtotal int) int {
	if subtotal <= 0 {
		return 0
	}
	switch d.kind {
	case TypePercentage:
		return subtotal * d.value / 100
	case TypeFixed:
		if d.value > subtotal {
			return subtotal
		}
		return d.value
	}
	return 0
}

// Deactivate withdraws the code from circulation.
func (d *Discount) Deactivate() {
	d.active = false
	d.touch()
}

// Activate puts the code back into circulation.
func (d *Discount) Activate() {
	d.active = true
	d.touch()
}

// RecordUsage increments the redemption counter.
func (d *Discount) RecordUsage() error {
	if d.usageLimit > 0 && d.usageCount >= d.usageLimit {
		return ErrUsageLimitReached
	}
	d.usageCount++
	d.touch()
	return nil
}

func (d *Discount) touch() {
	d.updatedAt = time.Now().UTC()
	d.version++
}
