package quote

import (
	"atelier/internal/domain/addon"
)

// SelectedService is the snapshot of an optional service at selection time.
// The snapshot is persisted with the quote so later catalog changes never
// alter an existing quote's content or price.
type SelectedService struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Recurring bool   `json:"recurring"`
}

// SnapshotServices resolves service ids against the registry and returns the
// snapshots plus the ids that no longer exist. Unknown ids are dropped, not
// fatal: stale selections from a previous session are expected.
func SnapshotServices(ids []string) (selected []SelectedService, missing []string) {
	for _, id := range ids {
		s, ok := addon.GetOptionalServiceByID(id)
		if !ok {
			missing = append(missing, id)
			continue
		}
		selected = append(selected, SelectedService{
			ID:        s.ID,
			Name:      s.Name,
			Price:     s.Price,
			Recurring: s.Recurring,
		})
	}
	return selected, missing
}

// ServicesPrice sums the snapshot prices.
func ServicesPrice(selected []SelectedService) int {
	total := 0
	for _, s := range selected {
		total += s.Price
	}
	return total
}
