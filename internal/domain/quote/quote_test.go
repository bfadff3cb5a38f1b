package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier/internal/domain/catalog"
)

func validContact() ContactPreference {
	return ContactPreference{
		Name:    "Giulia Bianchi",
		Email:   "giulia@example.com",
		Channel: ContactChannelEmail,
	}
}

func newDraft(t *testing.T) *Quote {
	t.Helper()
	q, missing, err := NewQuote(1, catalog.TierPro, catalog.LevelBase, []string{"whatsapp-business", "qr-code"}, validContact())
	require.NoError(t, err)
	require.Empty(t, missing)
	return q
}

func TestNewQuote(t *testing.T) {
	t.Run("creates draft with computed totals", func(t *testing.T) {
		q := newDraft(t)

		assert.Equal(t, StatusDraft, q.Status())
		assert.True(t, q.IsEditable())
		assert.Equal(t, 1, q.Version())
		assert.NotEmpty(t, q.SID())
		assert.Empty(t, q.Number())

		totals := q.Totals()
		assert.Equal(t, 1800, totals.BasePrice)
		assert.Equal(t, 160, totals.ServicesPrice)
		assert.Equal(t, 1960, totals.Subtotal())
	})

	t.Run("reports unknown service ids without failing", func(t *testing.T) {
		q, missing, err := NewQuote(1, catalog.TierStarter, catalog.LevelBase, []string{"qr-code", "ghost-service"}, validContact())
		require.NoError(t, err)
		assert.Equal(t, []string{"ghost-service"}, missing)
		assert.Len(t, q.Selected(), 1)
	})

	t.Run("rejects missing owner", func(t *testing.T) {
		_, _, err := NewQuote(0, catalog.TierStarter, catalog.LevelBase, nil, validContact())
		assert.Error(t, err)
	})

	t.Run("rejects invalid tier", func(t *testing.T) {
		_, _, err := NewQuote(1, catalog.Tier("enterprise"), catalog.LevelBase, nil, validContact())
		assert.Error(t, err)
	})

	t.Run("rejects unusable contact preference", func(t *testing.T) {
		contact := validContact()
		contact.Email = ""
		_, _, err := NewQuote(1, catalog.TierStarter, catalog.LevelBase, nil, contact)
		assert.Error(t, err)
	})
}

func TestQuoteLifecycle(t *testing.T) {
	t.Run("full acceptance path", func(t *testing.T) {
		q := newDraft(t)

		require.NoError(t, q.Submit())
		assert.Equal(t, StatusSubmitted, q.Status())
		assert.NotNil(t, q.SubmittedAt())
		assert.False(t, q.IsEditable())

		require.NoError(t, q.StartReview())
		assert.Equal(t, StatusUnderReview, q.Status())
		assert.NotNil(t, q.ReviewStartedAt())
		assert.True(t, q.IsEditable())

		require.NoError(t, q.Accept())
		assert.Equal(t, StatusAccepted, q.Status())
		assert.NotNil(t, q.DecidedAt())
		assert.True(t, q.Status().IsTerminal())
	})

	t.Run("rejection path", func(t *testing.T) {
		q := newDraft(t)
		require.NoError(t, q.Submit())
		require.NoError(t, q.StartReview())
		require.NoError(t, q.Reject())
		assert.Equal(t, StatusRejected, q.Status())
	})

	t.Run("illegal transitions are refused", func(t *testing.T) {
		q := newDraft(t)

		err := q.Accept()
		assert.ErrorIs(t, err, ErrInvalidStatusTransition)

		err = q.StartReview()
		assert.ErrorIs(t, err, ErrInvalidStatusTransition)
		assert.Equal(t, StatusDraft, q.Status())
	})

	t.Run("terminal quotes cannot expire", func(t *testing.T) {
		q := newDraft(t)
		require.NoError(t, q.Submit())
		require.NoError(t, q.StartReview())
		require.NoError(t, q.Accept())

		assert.ErrorIs(t, q.MarkExpired(), ErrInvalidStatusTransition)
	})

	t.Run("expiry reachable from every open state", func(t *testing.T) {
		for _, setup := range []func(q *Quote){
			func(q *Quote) {},
			func(q *Quote) { _ = q.Submit() },
			func(q *Quote) { _ = q.Submit(); _ = q.StartReview() },
		} {
			q := newDraft(t)
			setup(q)
			require.NoError(t, q.MarkExpired())
			assert.Equal(t, StatusExpired, q.Status())
		}
	})

	t.Run("each transition bumps the version", func(t *testing.T) {
		q := newDraft(t)
		require.NoError(t, q.Submit())
		assert.Equal(t, 2, q.Version())
		require.NoError(t, q.StartReview())
		assert.Equal(t, 3, q.Version())
	})
}

func TestQuoteUpdateSelection(t *testing.T) {
	t.Run("recomputes totals and clears discount", func(t *testing.T) {
		q := newDraft(t)
		require.NoError(t, q.ApplyDiscount(100))
		assert.Equal(t, 100, q.Totals().DiscountAmount)

		missing, err := q.UpdateSelection(catalog.TierEcommerce, catalog.LevelPremium, nil)
		require.NoError(t, err)
		assert.Empty(t, missing)
		assert.Equal(t, 6500, q.Totals().BasePrice)
		assert.Zero(t, q.Totals().ServicesPrice)
		assert.Zero(t, q.Totals().DiscountAmount)
	})

	t.Run("allowed while under review", func(t *testing.T) {
		q := newDraft(t)
		require.NoError(t, q.Submit())
		require.NoError(t, q.StartReview())

		_, err := q.UpdateSelection(catalog.TierPro, catalog.LevelStandard, nil)
		require.NoError(t, err)
		assert.Equal(t, 2400, q.Totals().BasePrice)
	})

	t.Run("refused once submitted", func(t *testing.T) {
		q := newDraft(t)
		require.NoError(t, q.Submit())

		_, err := q.UpdateSelection(catalog.TierPro, catalog.LevelStandard, nil)
		assert.ErrorIs(t, err, ErrQuoteNotEditable)
	})

	t.Run("refused after decision", func(t *testing.T) {
		q := newDraft(t)
		require.NoError(t, q.Submit())
		require.NoError(t, q.StartReview())
		require.NoError(t, q.Accept())

		_, err := q.UpdateSelection(catalog.TierPro, catalog.LevelStandard, nil)
		assert.ErrorIs(t, err, ErrQuoteNotEditable)
		err = q.ApplyDiscount(50)
		assert.ErrorIs(t, err, ErrQuoteNotEditable)
	})
}

func TestQuoteAssignNumber(t *testing.T) {
	q := newDraft(t)
	require.NoError(t, q.AssignNumber(2026, 7))
	assert.Equal(t, "PRV-2026-0007", q.Number())

	assert.Error(t, q.AssignNumber(2026, 8))
	assert.Equal(t, "PRV-2026-0007", q.Number())
}
