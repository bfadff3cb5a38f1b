package discount

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier/internal/domain/catalog"
)

func newPercentage(t *testing.T, value int) *Discount {
	t.Helper()
	d, err := NewDiscount("LANCIO2026", "Sconto lancio", TypePercentage, value, nil, 0, false, time.Time{}, time.Time{})
	require.NoError(t, err)
	return d
}

func TestNewDiscount(t *testing.T) {
	t.Run("normalizes the code", func(t *testing.T) {
		d, err := NewDiscount("  lancio2026 ", "", TypeFixed, 50, nil, 0, false, time.Time{}, time.Time{})
		require.NoError(t, err)
		assert.Equal(t, "LANCIO2026", d.Code())
		assert.True(t, d.IsActive())
	})

	t.Run("rejects bad input", func(t *testing.T) {
		cases := []struct {
			name string
			fn   func() error
		}{
			{"empty code", func() error {
				_, err := NewDiscount("   ", "", TypeFixed, 50, nil, 0, false, time.Time{}, time.Time{})
				return err
			}},
			{"zero value", func() error {
				_, err := NewDiscount("X", "", TypeFixed, 0, nil, 0, false, time.Time{}, time.Time{})
				return err
			}},
			{"percentage over 100", func() error {
				_, err := NewDiscount("X", "", TypePercentage, 120, nil, 0, false, time.Time{}, time.Time{})
				return err
			}},
			{"unknown type", func() error {
				_, err := NewDiscount("X", "", Type("bogus"), 10, nil, 0, false, time.Time{}, time.Time{})
				return err
			}},
			{"unknown tier in scope", func() error {
				_, err := NewDiscount("X", "", TypeFixed, 10, []catalog.Tier{"enterprise"}, 0, false, time.Time{}, time.Time{})
				return err
			}},
			{"inverted validity window", func() error {
				from := time.Now()
				_, err := NewDiscount("X", "", TypeFixed, 10, nil, 0, false, from, from.Add(-time.Hour))
				return err
			}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				assert.Error(t, tc.fn())
			})
		}
	})
}

func TestCalculateAmount(t *testing.T) {
	t.Run("percentage floors", func(t *testing.T) {
		d := newPercentage(t, 15)
		// 15% of 1961 is 294.15
		assert.Equal(t, 294, d.CalculateAmount(1961))
	})

	t.Run("fixed caps at subtotal", func(t *testing.T) {
		d, err := NewDiscount("X", "", TypeFixed, 500, nil, 0, false, time.Time{}, time.Time{})
		require.NoError(t, err)
		assert.Equal(t, 500, d.CalculateAmount(2000))
		assert.Equal(t, 300, d.CalculateAmount(300))
	})

	t.Run("never negative", func(t *testing.T) {
		d := newPercentage(t, 50)
		assert.Zero(t, d.CalculateAmount(0))
		assert.Zero(t, d.CalculateAmount(-100))
	})
}

func TestValidate(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("valid code computes amount", func(t *testing.T) {
		d := newPercentage(t, 10)
		res := d.Validate(catalog.TierPro, 2000, now, false)
		assert.True(t, res.Valid)
		assert.Empty(t, res.Reason)
		assert.Equal(t, 200, res.Amount)
	})

	t.Run("inactive", func(t *testing.T) {
		d := newPercentage(t, 10)
		d.Deactivate()
		res := d.Validate(catalog.TierPro, 2000, now, false)
		assert.False(t, res.Valid)
		assert.Equal(t, ReasonInactive, res.Reason)
	})

	t.Run("outside validity window", func(t *testing.T) {
		d, err := NewDiscount("X", "", TypeFixed, 50, nil, 0, false,
			now.Add(24*time.Hour), now.Add(48*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, ReasonNotStarted, d.Validate(catalog.TierPro, 2000, now, false).Reason)
		assert.Equal(t, ReasonExpired, d.Validate(catalog.TierPro, 2000, now.Add(72*time.Hour), false).Reason)
	})

	t.Run("usage limit reached", func(t *testing.T) {
		d, err := NewDiscount("X", "", TypeFixed, 50, nil, 1, false, time.Time{}, time.Time{})
		require.NoError(t, err)
		require.NoError(t, d.RecordUsage())
		assert.Equal(t, ReasonUsageLimit, d.Validate(catalog.TierPro, 2000, now, false).Reason)
		assert.ErrorIs(t, d.RecordUsage(), ErrUsageLimitReached)
	})

	t.Run("tier scope", func(t *testing.T) {
		d, err := NewDiscount("X", "", TypeFixed, 50, []catalog.Tier{catalog.TierEcommerce}, 0, false, time.Time{}, time.Time{})
		require.NoError(t, err)
		assert.Equal(t, ReasonTierNotEligible, d.Validate(catalog.TierStarter, 2000, now, false).Reason)
		assert.True(t, d.Validate(catalog.TierEcommerce, 2000, now, false).Valid)
	})

	t.Run("per user once", func(t *testing.T) {
		d, err := NewDiscount("X", "", TypeFixed, 50, nil, 0, true, time.Time{}, time.Time{})
		require.NoError(t, err)
		assert.Equal(t, ReasonAlreadyUsedByYou, d.Validate(catalog.TierPro, 2000, now, true).Reason)
		assert.True(t, d.Validate(catalog.TierPro, 2000, now, false).Valid)
	})
}
