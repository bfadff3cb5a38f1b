package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTierPrice_LiteralMatrix(t *testing.T) {
	tests := []struct {
		tier  Tier
		level Level
		want  int
	}{
		{TierStarter, LevelBase, 850},
		{TierStarter, LevelStandard, 1250},
		{TierStarter, LevelPremium, 1650},
		{TierPro, LevelBase, 1800},
		{TierPro, LevelStandard, 2400},
		{TierPro, LevelPremium, 3200},
		{TierEcommerce, LevelBase, 3500},
		{TierEcommerce, LevelStandard, 4800},
		{TierEcommerce, LevelPremium, 6500},
	}

	for _, tc := range tests {
		t.Run(tc.tier.String()+"/"+tc.level.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, GetTierPrice(tc.tier, tc.level))
		})
	}
}

func TestGetTierPrice_MonotonicWithinTier(t *testing.T) {
	for _, tier := range Tiers() {
		base := GetTierPrice(tier, LevelBase)
		standard := GetTierPrice(tier, LevelStandard)
		premium := GetTierPrice(tier, LevelPremium)

		assert.LessOrEqual(t, base, standard, "tier %s: base > standard", tier)
		assert.LessOrEqual(t, standard, premium, "tier %s: standard > premium", tier)
	}
}

func TestGetTierData_EveryTierHasThreeLevels(t *testing.T) {
	for _, tier := range Tiers() {
		data := GetTierData(tier)

		require.Equal(t, tier, data.Tier)
		assert.NotEmpty(t, data.Name)
		assert.NotEmpty(t, data.TargetTags)

		for _, level := range Levels() {
			ld := data.Levels.Get(level)
			assert.Equal(t, level, ld.Level, "tier %s level %s", tier, level)
			assert.Positive(t, ld.Price)
			assert.NotEmpty(t, ld.Name)
			assert.NotEmpty(t, ld.RealizationTime)
			assert.GreaterOrEqual(t, ld.Revisions, 0)
			assert.NotEmpty(t, ld.Features.Pages)
			assert.NotEmpty(t, ld.Features.Technical)
		}
	}
}

func TestParseTier(t *testing.T) {
	tests := []struct {
		input   string
		want    Tier
		wantErr bool
	}{
		{"starter", TierStarter, false},
		{"pro", TierPro, false},
		{"ecommerce", TierEcommerce, false},
		{"enterprise", "", true},
		{"", "", true},
		{"Starter", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseTier(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseLevel(t *testing.T) {
	for _, level := range Levels() {
		got, err := ParseLevel(level.String())
		require.NoError(t, err)
		assert.Equal(t, level, got)
	}

	_, err := ParseLevel("deluxe")
	assert.Error(t, err)
}

func TestFeatureTagSet_EcommercePremium(t *testing.T) {
	tags := GetLevelData(TierEcommerce, LevelPremium).Tags

	assert.True(t, tags.Has(TagLoyaltySystem))
	assert.True(t, tags.Has(TagExtendedSupport))
	assert.True(t, tags.Has(TagProductCatalog))
}

func TestFeatureTagSet_ListIsSorted(t *testing.T) {
	s := NewFeatureTagSet(TagWhatsApp, TagBlog, TagAnalytics)

	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, []FeatureTag{TagAnalytics, TagBlog, TagWhatsApp}, list)
}

func TestSupportSpec_ExtendedSupportMatchesTwelveMonths(t *testing.T) {
	// The extended_support tag must only appear on levels with a 12 month
	// assistance window.
	for _, tier := range Tiers() {
		for _, level := range Levels() {
			ld := GetLevelData(tier, level)
			if ld.Tags.Has(TagExtendedSupport) {
				require.NotNil(t, ld.Support, "tier %s level %s", tier, level)
				assert.Equal(t, "12 mesi", ld.Support.Duration, "tier %s level %s", tier, level)
			}
		}
	}
}
