package addon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier/internal/domain/catalog"
)

func TestGetCompatibleOptionalServices_NeverReturnsIncompatible(t *testing.T) {
	for _, tier := range catalog.Tiers() {
		for _, s := range GetCompatibleOptionalServices(tier) {
			assert.True(t, s.CompatibleWith(tier),
				"service %s returned for incompatible tier %s", s.ID, tier)
		}
	}
}

func TestGetCompatibleOptionalServices_EveryTierCurrentlyCompatible(t *testing.T) {
	// Today every service lists every tier; the registry must keep returning
	// the full set for each tier until the data narrows.
	for _, tier := range catalog.Tiers() {
		assert.Len(t, GetCompatibleOptionalServices(tier), len(services), "tier %s", tier)
	}
}

func TestGetCompatibleOptionalServices_PreservesDeclarationOrder(t *testing.T) {
	got := GetCompatibleOptionalServices(catalog.TierPro)

	require.Equal(t, len(services), len(got))
	for i := range services {
		assert.Equal(t, services[i].ID, got[i].ID)
	}
}

func TestGetServicesByCategory(t *testing.T) {
	for _, cat := range categories {
		for _, s := range GetServicesByCategory(cat.ID) {
			assert.Equal(t, cat.ID, s.Category)
		}
	}

	assert.Empty(t, GetServicesByCategory("stationery"))
}

func TestGetOptionalServiceCategoriesConfig_SortedBySortOrder(t *testing.T) {
	cats := GetOptionalServiceCategoriesConfig()

	require.Len(t, cats, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, []int{
		cats[0].SortOrder, cats[1].SortOrder, cats[2].SortOrder, cats[3].SortOrder,
	})
	assert.Equal(t, CategoryPhotography, cats[0].ID)
	assert.Equal(t, CategoryContent, cats[1].ID)
	assert.Equal(t, CategoryIntegrations, cats[2].ID)
	assert.Equal(t, CategoryMarketing, cats[3].ID)
}

func TestGetOptionalServiceByID(t *testing.T) {
	s, ok := GetOptionalServiceByID("whatsapp-business")
	require.True(t, ok)
	assert.Equal(t, 80, s.Price)
	assert.False(t, s.Recurring)

	_, ok = GetOptionalServiceByID("nonexistent-id")
	assert.False(t, ok)
}

func TestRegistryInvariants(t *testing.T) {
	categoryIDs := make(map[CategoryID]bool, len(categories))
	for _, cat := range categories {
		categoryIDs[cat.ID] = true
	}

	seen := make(map[string]bool, len(services))
	for _, s := range services {
		assert.False(t, seen[s.ID], "duplicate service id %s", s.ID)
		seen[s.ID] = true

		assert.NotEmpty(t, s.CompatibleTiers, "service %s has no compatible tiers", s.ID)
		assert.True(t, categoryIDs[s.Category], "service %s has unknown category %s", s.ID, s.Category)
		assert.Positive(t, s.Price, "service %s", s.ID)
	}
}
