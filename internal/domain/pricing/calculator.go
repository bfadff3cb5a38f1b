// Package pricing derives totals and included-feature views from the catalog
// and the optional-service registry. Every function is pure: no I/O, fully
// deterministic given its inputs.
package pricing

import (
	"fmt"

	"atelier/internal/domain/addon"
	"atelier/internal/domain/catalog"
)

// CalculateTotalPrice returns the level base price plus the sum of the
// selected services. Discounts and taxes are applied later, on the persisted
// quote. An empty selection yields exactly the base price.
func CalculateTotalPrice(tier catalog.Tier, level catalog.Level, selected []addon.Service) int {
	total := catalog.GetTierPrice(tier, level)
	for _, s := range selected {
		total += s.Price
	}
	return total
}

// CalculateOptionalServicesTotal sums the prices of the services identified
// by ids. Unknown ids contribute zero: a retired service lingering in a
// stale client selection must not fail the whole preview.
func CalculateOptionalServicesTotal(ids []string) int {
	total, _ := ResolveOptionalServicesTotal(ids)
	return total
}

// ResolveOptionalServicesTotal is CalculateOptionalServicesTotal for callers
// that want to know which ids were silently dropped, e.g. to log a warning
// or prune the stored selection.
func ResolveOptionalServicesTotal(ids []string) (total int, missing []string) {
	for _, id := range ids {
		s, ok := addon.GetOptionalServiceByID(id)
		if !ok {
			missing = append(missing, id)
			continue
		}
		total += s.Price
	}
	return total, missing
}

// GetIncludedFeaturesForLevel returns the canonical feature tags of a level
// in deterministic order. Tags are authored catalog data, never inferred
// from the free-text descriptions.
func GetIncludedFeaturesForLevel(tier catalog.Tier, level catalog.Level) []catalog.FeatureTag {
	return catalog.GetLevelData(tier, level).Tags.List()
}

// FormatServicePrice renders a whole-euro price for display, suffixed with
// "/anno" for recurring services.
func FormatServicePrice(price int, recurring bool) string {
	if recurring {
		return fmt.Sprintf("€%d/anno", price)
	}
	return fmt.Sprintf("€%d", price)
}
