package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findRow(t *testing.T, tier Tier, category, feature string) ComparisonRow {
	t.Helper()
	for _, cat := range GetTierLevelComparisonData(tier) {
		if cat.Name != category {
			continue
		}
		for _, row := range cat.Rows {
			if row.Feature == feature {
				return row
			}
		}
	}
	t.Fatalf("row %q not found in category %q of tier %s", feature, category, tier)
	return ComparisonRow{}
}

func TestGetTierLevelComparisonData_FourFixedCategories(t *testing.T) {
	want := []string{CategoryPages, CategoryTechnical, CategoryIntegrations, CategorySupport}

	for _, tier := range Tiers() {
		cats := GetTierLevelComparisonData(tier)
		require.Len(t, cats, 4, "tier %s", tier)
		for i, cat := range cats {
			assert.Equal(t, want[i], cat.Name, "tier %s", tier)
			assert.NotEmpty(t, cat.Rows, "tier %s category %s", tier, cat.Name)
		}
	}
}

func TestGetTierLevelComparisonData_BookingSystemPerTier(t *testing.T) {
	// Starter never includes bookings; pro and ecommerce carry a detail cell
	// on every level.
	starter := findRow(t, TierStarter, CategoryTechnical, "Sistema prenotazioni")
	for _, level := range Levels() {
		cell := starter.Cell(level)
		assert.Equal(t, CellKindBool, cell.Kind)
		assert.False(t, cell.Included)
	}

	for _, tier := range []Tier{TierPro, TierEcommerce} {
		row := findRow(t, tier, CategoryTechnical, "Sistema prenotazioni")
		for _, level := range Levels() {
			cell := row.Cell(level)
			assert.Equal(t, CellKindDetail, cell.Kind, "tier %s level %s", tier, level)
			assert.NotEmpty(t, cell.Value, "tier %s level %s", tier, level)
			assert.NotEmpty(t, cell.Long, "tier %s level %s", tier, level)
		}
	}
}

func TestComparisonCell_MarshalJSON(t *testing.T) {
	boolJSON, err := json.Marshal(cellYes())
	require.NoError(t, err)
	assert.JSONEq(t, `true`, string(boolJSON))

	valueJSON, err := json.Marshal(cellValue("12 foto"))
	require.NoError(t, err)
	assert.JSONEq(t, `"12 foto"`, string(valueJSON))

	detailJSON, err := json.Marshal(cellDetail("Calendario", "Prenotazioni online", "Calendario integrato"))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"value": "Calendario",
		"shortDescription": "Prenotazioni online",
		"longDescription": "Calendario integrato"
	}`, string(detailJSON))
}

func TestComparisonRow_CellOrderMatchesLevels(t *testing.T) {
	row := findRow(t, TierStarter, CategoryPages, "Pagine incluse")

	assert.Equal(t, "3", row.Cell(LevelBase).Value)
	assert.Equal(t, "5", row.Cell(LevelStandard).Value)
	assert.Equal(t, "8", row.Cell(LevelPremium).Value)
}
