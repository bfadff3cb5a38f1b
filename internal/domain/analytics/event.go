package analytics

import (
	"fmt"
	"time"
)

// EventType is a step in the pricing journey funnel, in the order the
// frontend walks the customer through it.
type EventType string

const (
	EventCatalogViewed    EventType = "catalog_viewed"
	EventTierSelected     EventType = "tier_selected"
	EventLevelSelected    EventType = "level_selected"
	EventServicesChanged  EventType = "services_changed"
	EventQuoteDrafted     EventType = "quote_drafted"
	EventQuoteSubmitted   EventType = "quote_submitted"
	EventBookingRequested EventType = "booking_requested"
)

var funnelOrder = []EventType{
	EventCatalogViewed,
	EventTierSelected,
	EventLevelSelected,
	EventServicesChanged,
	EventQuoteDrafted,
	EventQuoteSubmitted,
	EventBookingRequested,
}

// FunnelOrder returns the journey steps in funnel order.
func FunnelOrder() []EventType {
	out := make([]EventType, len(funnelOrder))
	copy(out, funnelOrder)
	return out
}

func (e EventType) IsValid() bool {
	for _, t := range funnelOrder {
		if t == e {
			return true
		}
	}
	return false
}

// JourneyEvent is one recorded step of an anonymous or signed-in visitor
// through the pricing page.
type JourneyEvent struct {
	ID        uint
	SessionID string
	UserID    *uint
	Type      EventType
	Tier      string
	Level     string
	Metadata  string
	CreatedAt time.Time
}

// NewJourneyEvent records a journey step. SessionID groups the events of one
// visit; userID is nil for anonymous visitors.
func NewJourneyEvent(sessionID string, userID *uint, eventType EventType, tier, level, metadata string) (*JourneyEvent, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID is required")
	}
	if !eventType.IsValid() {
		return nil, fmt.Errorf("unknown journey event type: %s", eventType)
	}
	return &JourneyEvent{
		SessionID: sessionID,
		UserID:    userID,
		Type:      eventType,
		Tier:      tier,
		Level:     level,
		Metadata:  metadata,
		CreatedAt: time.Now().UTC(),
	}, nil
}
