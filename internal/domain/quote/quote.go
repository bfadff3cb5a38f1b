package quote

import (
	"fmt"
	"time"

	"atelier/internal/domain/catalog"
	"atelier/internal/shared/id"
)

// DefaultValidityDays is how long a quote stays actionable before the expiry
// sweep claims it. The window restarts on submission.
const DefaultValidityDays = 30

// Quote is a customer's tier/level/service selection and its lifecycle.
type Quote struct {
	id        uint
	sid       string
	number    string
	userID    uint
	tier      catalog.Tier
	level     catalog.Level
	selected  []SelectedService
	totals    Totals
	status    Status
	contact   ContactPreference
	notes     string
	version   int
	createdAt time.Time
	updatedAt time.Time

	submittedAt     *time.Time
	reviewStartedAt *time.Time
	decidedAt       *time.Time
	expiresAt       time.Time
}

// NewQuote creates a draft quote for the given selection. serviceIDs are
// resolved against the registry; unknown ids are dropped and reported back.
func NewQuote(userID uint, tier catalog.Tier, level catalog.Level, serviceIDs []string, contact ContactPreference) (*Quote, []string, error) {
	if userID == 0 {
		return nil, nil, fmt.Errorf("quote owner is required")
	}
	if !tier.IsValid() {
		return nil, nil, fmt.Errorf("invalid tier: %s", tier)
	}
	if !level.IsValid() {
		return nil, nil, fmt.Errorf("invalid level: %s", level)
	}
	if err := contact.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid contact preference: %w", err)
	}

	selected, missing := SnapshotServices(serviceIDs)
	totals, err := NewTotals(catalog.GetTierPrice(tier, level), ServicesPrice(selected), 0, DefaultTaxRateBps)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	q := &Quote{
		sid:       id.FormatWithPrefix(id.PrefixQuote, id.MustGenerate(id.DefaultLength)),
		userID:    userID,
		tier:      tier,
		level:     level,
		selected:  selected,
		totals:    totals,
		status:    StatusDraft,
		contact:   contact,
		version:   1,
		createdAt: now,
		updatedAt: now,
		expiresAt: now.AddDate(0, 0, DefaultValidityDays),
	}
	return q, missing, nil
}

// ReconstructQuote rebuilds a quote from persistence.
func ReconstructQuote(
	quoteID uint, sid, number string, userID uint,
	tier catalog.Tier, level catalog.Level,
	selected []SelectedService, totals Totals, status Status,
	contact ContactPreference, notes string, version int,
	createdAt, updatedAt time.Time,
	submittedAt, reviewStartedAt, decidedAt *time.Time, expiresAt time.Time,
) (*Quote, error) {
	if quoteID == 0 {
		return nil, fmt.Errorf("quote ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid quote status: %s", status)
	}

	return &Quote{
		id:              quoteID,
		sid:             sid,
		number:          number,
		userID:          userID,
		tier:            tier,
		level:           level,
		selected:        selected,
		totals:          totals,
		status:          status,
		contact:         contact,
		notes:           notes,
		version:         version,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		submittedAt:     submittedAt,
		reviewStartedAt: reviewStartedAt,
		decidedAt:       decidedAt,
		expiresAt:       expiresAt,
	}, nil
}

func (q *Quote) ID() uint                    { return q.id }
func (q *Quote) SID() string                 { return q.sid }
func (q *Quote) Number() string              { return q.number }
func (q *Quote) UserID() uint                { return q.userID }
func (q *Quote) GetOwnerID() uint            { return q.userID }
func (q *Quote) Tier() catalog.Tier          { return q.tier }
func (q *Quote) Level() catalog.Level        { return q.level }
func (q *Quote) Selected() []SelectedService { return q.selected }
func (q *Quote) Totals() Totals              { return q.totals }
func (q *Quote) Status() Status              { return q.status }
func (q *Quote) Contact() ContactPreference  { return q.contact }
func (q *Quote) AdminNotes() string          { return q.notes }
func (q *Quote) Version() int                { return q.version }
func (q *Quote) CreatedAt() time.Time        { return q.createdAt }
func (q *Quote) UpdatedAt() time.Time        { return q.updatedAt }
func (q *Quote) SubmittedAt() *time.Time     { return q.submittedAt }
func (q *Quote) ReviewStartedAt() *time.Time { return q.reviewStartedAt }
func (q *Quote) DecidedAt() *time.Time       { return q.decidedAt }
func (q *Quote) ExpiresAt() time.Time        { return q.expiresAt }

// SetID assigns the persistence identifier exactly once.
func (q *Quote) SetID(quoteID uint) error {
	if q.id != 0 {
		return fmt.Errorf("quote ID is already set")
	}
	if quoteID == 0 {
		return fmt.Errorf("quote ID cannot be zero")
	}
	q.id = quoteID
	return nil
}

// AssignNumber sets the human-readable quote number exactly once, derived
// from the persisted sequence.
func (q *Quote) AssignNumber(year int, sequence uint64) error {
	if q.number != "" {
		return fmt.Errorf("quote number is already assigned")
	}
	q.number = id.QuoteNumber(year, sequence)
	return nil
}

// IsEditable reports whether the customer may still change the selection.
func (q *Quote) IsEditable() bool {
	return q.status.IsEditable()
}

// UpdateSelection replaces the tier/level/service selection of an editable
// quote, recomputing the totals. Any applied discount is cleared: discount
// eligibility depends on the selection and must be revalidated.
func (q *Quote) UpdateSelection(tier catalog.Tier, level catalog.Level, serviceIDs []string) ([]string, error) {
	if !q.IsEditable() {
		return nil, fmt.Errorf("%w: status %s", ErrQuoteNotEditable, q.status)
	}
	if !tier.IsValid() {
		return nil, fmt.Errorf("invalid tier: %s", tier)
	}
	if !level.IsValid() {
		return nil, fmt.Errorf("invalid level: %s", level)
	}

	selected, missing := SnapshotServices(serviceIDs)
	totals, err := NewTotals(catalog.GetTierPrice(tier, level), ServicesPrice(selected), 0, q.totals.TaxRateBps)
	if err != nil {
		return nil, err
	}

	q.tier = tier
	q.level = level
	q.selected = selected
	q.totals = totals
	q.touch()
	return missing, nil
}

// ApplyDiscount sets the discount amount on an editable quote and recomputes
// the totals.
func (q *Quote) ApplyDiscount(amount int) error {
	if !q.IsEditable() {
		return fmt.Errorf("%w: status %s", ErrQuoteNotEditable, q.status)
	}
	totals, err := NewTotals(q.totals.BasePrice, q.totals.ServicesPrice, amount, q.totals.TaxRateBps)
	if err != nil {
		return err
	}
	q.totals = totals
	q.touch()
	return nil
}

// UpdateContact replaces the contact preference on an editable quote.
func (q *Quote) UpdateContact(contact ContactPreference) error {
	if !q.IsEditable() {
		return fmt.Errorf("%w: status %s", ErrQuoteNotEditable, q.status)
	}
	if err := contact.Validate(); err != nil {
		return fmt.Errorf("invalid contact preference: %w", err)
	}
	q.contact = contact
	q.touch()
	return nil
}

// Submit moves a draft to submitted and restarts the validity window.
func (q *Quote) Submit() error {
	if err := q.transition(StatusSubmitted); err != nil {
		return err
	}
	now := time.Now().UTC()
	q.submittedAt = &now
	q.expiresAt = now.AddDate(0, 0, DefaultValidityDays)
	return nil
}

// StartReview moves a submitted quote into review.
func (q *Quote) StartReview() error {
	if err := q.transition(StatusUnderReview); err != nil {
		return err
	}
	now := time.Now().UTC()
	q.reviewStartedAt = &now
	return nil
}

// Accept closes the review with an acceptance.
func (q *Quote) Accept() error {
	if err := q.transition(StatusAccepted); err != nil {
		return err
	}
	now := time.Now().UTC()
	q.decidedAt = &now
	return nil
}

// Reject closes the review with a rejection.
func (q *Quote) Reject() error {
	if err := q.transition(StatusRejected); err != nil {
		return err
	}
	now := time.Now().UTC()
	q.decidedAt = &now
	return nil
}

// MarkExpired is called by the sweep once the validity window has passed.
// Expiring an already-terminal quote is a no-op error.
func (q *Quote) MarkExpired() error {
	return q.transition(StatusExpired)
}

// SetAdminNotes stores reviewer notes (markdown source).
func (q *Quote) SetAdminNotes(notes string) {
	q.notes = notes
	q.touch()
}

func (q *Quote) transition(target Status) error {
	if !q.status.CanTransitionTo(target) {
		return ErrInvalidTransition(q.status, target)
	}
	q.status = target
	q.touch()
	return nil
}

func (q *Quote) touch() {
	q.updatedAt = time.Now().UTC()
	q.version++
}
