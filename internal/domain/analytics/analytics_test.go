package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJourneyEvent(t *testing.T) {
	t.Run("valid event", func(t *testing.T) {
		e, err := NewJourneyEvent("sess-1", nil, EventTierSelected, "pro", "", "")
		require.NoError(t, err)
		assert.Equal(t, EventTierSelected, e.Type)
		assert.Nil(t, e.UserID)
	})

	t.Run("rejects missing session", func(t *testing.T) {
		_, err := NewJourneyEvent("", nil, EventTierSelected, "", "", "")
		assert.Error(t, err)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := NewJourneyEvent("sess-1", nil, EventType("page_exploded"), "", "", "")
		assert.Error(t, err)
	})
}

func TestBuildFunnel(t *testing.T) {
	counts := map[EventType]int64{
		EventCatalogViewed:  200,
		EventTierSelected:   150,
		EventLevelSelected:  150,
		EventQuoteDrafted:   60,
		EventQuoteSubmitted: 30,
	}

	funnel := BuildFunnel(counts)
	require.Len(t, funnel, len(FunnelOrder()))

	assert.Equal(t, EventCatalogViewed, funnel[0].Step)
	assert.Equal(t, int64(200), funnel[0].Sessions)
	assert.Zero(t, funnel[0].DropoffPct)

	// 200 -> 150 loses 25%
	assert.Equal(t, 25, funnel[1].DropoffPct)
	// equal counts lose nothing
	assert.Zero(t, funnel[2].DropoffPct)
	// 60 -> 30 loses 50%
	assert.Equal(t, 50, funnel[5].DropoffPct)
}
