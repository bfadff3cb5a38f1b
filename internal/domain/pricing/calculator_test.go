package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier/internal/domain/addon"
	"atelier/internal/domain/catalog"
)

func TestCalculateTotalPrice_EmptySelectionIsBasePrice(t *testing.T) {
	for _, tier := range catalog.Tiers() {
		for _, level := range catalog.Levels() {
			got := CalculateTotalPrice(tier, level, nil)
			assert.Equal(t, catalog.GetTierPrice(tier, level), got,
				"tier %s level %s", tier, level)
		}
	}
}

func TestCalculateTotalPrice_AddsSelectedServices(t *testing.T) {
	whatsapp, ok := addon.GetOptionalServiceByID("whatsapp-business")
	require.True(t, ok)
	qr, ok := addon.GetOptionalServiceByID("qr-code")
	require.True(t, ok)

	got := CalculateTotalPrice(catalog.TierPro, catalog.LevelBase, []addon.Service{whatsapp, qr})

	assert.Equal(t, 1800+80+80, got)
	assert.Equal(t, 1960, got)
}

func TestCalculateOptionalServicesTotal(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want int
	}{
		{"empty selection", nil, 0},
		{"single service", []string{"qr-code"}, 80},
		{"two services", []string{"whatsapp-business", "qr-code"}, 160},
		{"unknown id contributes zero", []string{"nonexistent-id"}, 0},
		{"unknown mixed with known", []string{"qr-code", "nonexistent-id"}, 80},
		{"duplicate ids count twice", []string{"qr-code", "qr-code"}, 160},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CalculateOptionalServicesTotal(tc.ids))
		})
	}
}

func TestResolveOptionalServicesTotal_ReportsMissing(t *testing.T) {
	total, missing := ResolveOptionalServicesTotal([]string{"qr-code", "ghost-a", "ghost-b"})

	assert.Equal(t, 80, total)
	assert.Equal(t, []string{"ghost-a", "ghost-b"}, missing)
}

func TestGetIncludedFeaturesForLevel_EcommercePremium(t *testing.T) {
	tags := GetIncludedFeaturesForLevel(catalog.TierEcommerce, catalog.LevelPremium)

	assert.Contains(t, tags, catalog.TagLoyaltySystem)
	assert.Contains(t, tags, catalog.TagExtendedSupport)
}

func TestGetIncludedFeaturesForLevel_Deterministic(t *testing.T) {
	first := GetIncludedFeaturesForLevel(catalog.TierPro, catalog.LevelStandard)
	second := GetIncludedFeaturesForLevel(catalog.TierPro, catalog.LevelStandard)

	assert.Equal(t, first, second)
}

func TestFormatServicePrice(t *testing.T) {
	assert.Equal(t, "€100/anno", FormatServicePrice(100, true))
	assert.Equal(t, "€100", FormatServicePrice(100, false))
	assert.Equal(t, "€0", FormatServicePrice(0, false))
}
