package analytics

import (
	"context"
	"time"
)

// Repository persists journey events and answers the aggregate queries the
// dashboard needs.
type Repository interface {
	Create(ctx context.Context, e *JourneyEvent) error
	// CountSessionsByStep counts distinct sessions that reached each step
	// within the window.
	CountSessionsByStep(ctx context.Context, from, until time.Time) (map[EventType]int64, error)
	// CountTierSelections counts tier_selected events per tier within the
	// window.
	CountTierSelections(ctx context.Context, from, until time.Time) ([]TierInterest, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
