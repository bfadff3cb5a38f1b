// Package addon defines the optional services that can be added to any quote
// independently of the chosen tier and level, plus the category configuration
// used to group them on the pricing page.
package addon

import (
	"sort"

	"atelier/internal/domain/catalog"
)

// CategoryID identifies one of the four fixed service categories.
type CategoryID string

const (
	CategoryPhotography  CategoryID = "photography"
	CategoryContent      CategoryID = "content"
	CategoryIntegrations CategoryID = "integrations"
	CategoryMarketing    CategoryID = "marketing"
)

// Category is the presentation config of a service group.
type Category struct {
	ID              CategoryID `json:"id"`
	Name            string     `json:"name"`
	Icon            string     `json:"icon"`
	Gradient        string     `json:"gradient"`
	DefaultExpanded bool       `json:"default_expanded"`
	SortOrder       int        `json:"sort_order"`
}

// Service is a purchasable add-on.
type Service struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	Category        CategoryID     `json:"category"`
	Price           int            `json:"price"`
	Recurring       bool           `json:"recurring"`
	CompatibleTiers []catalog.Tier `json:"compatible_tiers"`
	Features        []string       `json:"features"`
	DefaultSelected bool           `json:"default_selected"`
}

// CompatibleWith reports whether the service can be sold with the tier.
func (s Service) CompatibleWith(tier catalog.Tier) bool {
	for _, t := range s.CompatibleTiers {
		if t == tier {
			return true
		}
	}
	return false
}

// GetCompatibleOptionalServices returns the services compatible with the
// tier, preserving declaration order.
func GetCompatibleOptionalServices(tier catalog.Tier) []Service {
	out := make([]Service, 0, len(services))
	for _, s := range services {
		if s.CompatibleWith(tier) {
			out = append(out, s)
		}
	}
	return out
}

// GetServicesByCategory returns the services of one category, preserving
// declaration order.
func GetServicesByCategory(id CategoryID) []Service {
	out := make([]Service, 0, len(services))
	for _, s := range services {
		if s.Category == id {
			out = append(out, s)
		}
	}
	return out
}

// GetOptionalServiceCategoriesConfig returns all categories sorted ascending
// by sort order. The sort is stable: ties keep declaration order.
func GetOptionalServiceCategoriesConfig() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SortOrder < out[j].SortOrder
	})
	return out
}

// GetOptionalServiceByID looks up a service. Callers must handle absence:
// selections can reference services retired since the previous session.
func GetOptionalServiceByID(id string) (Service, bool) {
	for _, s := range services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// AllServices returns the registry in declaration order.
func AllServices() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}
