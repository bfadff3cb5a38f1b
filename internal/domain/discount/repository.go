package discount

import (
	"context"
	"time"
)

// Repository persists discounts. Find methods return (nil, nil) when no
// record matches.
type Repository interface {
	Create(ctx context.Context, d *Discount) error
	Update(ctx context.Context, d *Discount) error
	FindByID(ctx context.Context, id uint) (*Discount, error)
	FindBySID(ctx context.Context, sid string) (*Discount, error)
	// FindByCode looks up a normalized code.
	FindByCode(ctx context.Context, code string) (*Discount, error)
	List(ctx context.Context, activeOnly bool, offset, limit int) ([]*Discount, int64, error)
}

// Application records a discount redeemed against a quote, keyed so the
// per-user-once rule can be enforced.
type Application struct {
	ID         uint
	DiscountID uint
	QuoteID    uint
	UserID     uint
	Amount     int
	AppliedAt  time.Time
}

// ApplicationRepository persists redemptions.
type ApplicationRepository interface {
	Create(ctx context.Context, a *Application) error
	HasUserUsed(ctx context.Context, discountID, userID uint) (bool, error)
	ListByDiscountID(ctx context.Context, discountID uint) ([]*Application, error)
	FindByQuoteID(ctx context.Context, quoteID uint) (*Application, error)
	DeleteByQuoteID(ctx context.Context, quoteID uint) error
}
