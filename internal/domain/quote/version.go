package quote

import (
	"time"

	"atelier/internal/domain/catalog"
)

// Version is an immutable snapshot of a quote's content, recorded every time
// an editable quote changes. Versions let reviewers see what the customer
// changed between the first submission and the negotiation call.
type Version struct {
	ID        uint
	QuoteID   uint
	Version   int
	Tier      catalog.Tier
	Level     catalog.Level
	Selected  []SelectedService
	Totals    Totals
	Contact   ContactPreference
	CreatedAt time.Time
}

// SnapshotVersion captures the quote's current content as a version record.
func SnapshotVersion(q *Quote) Version {
	return Version{
		QuoteID:   q.ID(),
		Version:   q.Version(),
		Tier:      q.Tier(),
		Level:     q.Level(),
		Selected:  q.Selected(),
		Totals:    q.Totals(),
		Contact:   q.Contact(),
		CreatedAt: time.Now().UTC(),
	}
}
