package quote

import (
	"context"
	"time"
)

// ListFilter narrows admin listings of quotes.
type ListFilter struct {
	Status  *Status
	UserID  *uint
	Tier    *string
	SinceAt *time.Time
}

// Repository persists quote aggregates.
// Find methods return (nil, nil) when no record matches.
type Repository interface {
	// Create stores a new quote, assigning its ID and quote number.
	Create(ctx context.Context, q *Quote) error
	Update(ctx context.Context, q *Quote) error
	FindByID(ctx context.Context, id uint) (*Quote, error)
	FindBySID(ctx context.Context, sid string) (*Quote, error)
	FindByUserID(ctx context.Context, userID uint, offset, limit int) ([]*Quote, int64, error)
	List(ctx context.Context, filter ListFilter, offset, limit int) ([]*Quote, int64, error)
	// FindExpirable returns non-terminal quotes whose validity window has
	// passed, for the expiry sweep.
	FindExpirable(ctx context.Context, now time.Time, limit int) ([]*Quote, error)
	CountByStatus(ctx context.Context) (map[Status]int64, error)
}

// VersionRepository persists quote content snapshots.
type VersionRepository interface {
	Create(ctx context.Context, v *Version) error
	ListByQuoteID(ctx context.Context, quoteID uint) ([]*Version, error)
	// FindByQuoteVersion returns (nil, nil) when the snapshot does not exist.
	FindByQuoteVersion(ctx context.Context, quoteID uint, version int) (*Version, error)
}
