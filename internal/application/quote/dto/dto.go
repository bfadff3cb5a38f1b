package dto

import (
	"time"

	"atelier/internal/domain/quote"
)

type SelectedServiceDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Recurring bool   `json:"recurring"`
}

type TotalsDTO struct {
	BasePrice      int `json:"base_price"`
	ServicesPrice  int `json:"services_price"`
	DiscountAmount int `json:"discount_amount"`
	TaxAmount      int `json:"tax_amount"`
	TotalPrice     int `json:"total_price"`
}

type ContactDTO struct {
	Name          string `json:"name"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Channel       string `json:"channel"`
	PreferredTime string `json:"preferred_time,omitempty"`
	Message       string `json:"message,omitempty"`
}

type QuoteDTO struct {
	SID         string               `json:"id"`
	Number      string               `json:"number,omitempty"`
	Tier        string               `json:"tier"`
	Level       string               `json:"level"`
	Services    []SelectedServiceDTO `json:"services"`
	Totals      TotalsDTO            `json:"totals"`
	Status      string               `json:"status"`
	Editable    bool                 `json:"editable"`
	Contact     ContactDTO           `json:"contact"`
	Version     int                  `json:"version"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
	SubmittedAt *time.Time           `json:"submitted_at,omitempty"`
	ExpiresAt   time.Time            `json:"expires_at"`
}

// AdminQuoteDTO extends QuoteDTO with fields only reviewers see.
type AdminQuoteDTO struct {
	QuoteDTO
	InternalID      uint       `json:"internal_id"`
	UserID          uint       `json:"user_id"`
	AdminNotes      string     `json:"admin_notes,omitempty"`
	AdminNotesHTML  string     `json:"admin_notes_html,omitempty"`
	ReviewStartedAt *time.Time `json:"review_started_at,omitempty"`
	DecidedAt       *time.Time `json:"decided_at,omitempty"`
}

type VersionDTO struct {
	Version   int                  `json:"version"`
	Tier      string               `json:"tier"`
	Level     string               `json:"level"`
	Services  []SelectedServiceDTO `json:"services"`
	Totals    TotalsDTO            `json:"totals"`
	CreatedAt time.Time            `json:"created_at"`
}

func servicesToDTO(selected []quote.SelectedService) []SelectedServiceDTO {
	out := make([]SelectedServiceDTO, 0, len(selected))
	for _, s := range selected {
		out = append(out, SelectedServiceDTO{ID: s.ID, Name: s.Name, Price: s.Price, Recurring: s.Recurring})
	}
	return out
}

func totalsToDTO(t quote.Totals) TotalsDTO {
	return TotalsDTO{
		BasePrice:      t.BasePrice,
		ServicesPrice:  t.ServicesPrice,
		DiscountAmount: t.DiscountAmount,
		TaxAmount:      t.TaxAmount,
		TotalPrice:     t.TotalPrice,
	}
}

func contactToDTO(c quote.ContactPreference) ContactDTO {
	return ContactDTO{
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		Channel:       string(c.Channel),
		PreferredTime: c.PreferredTime,
		Message:       c.Message,
	}
}

func QuoteToDTO(q *quote.Quote) QuoteDTO {
	return QuoteDTO{
		SID:         q.SID(),
		Number:      q.Number(),
		Tier:        q.Tier().String(),
		Level:       q.Level().String(),
		Services:    servicesToDTO(q.Selected()),
		Totals:      totalsToDTO(q.Totals()),
		Status:      q.Status().String(),
		Editable:    q.IsEditable(),
		Contact:     contactToDTO(q.Contact()),
		Version:     q.Version(),
		CreatedAt:   q.CreatedAt(),
		UpdatedAt:   q.UpdatedAt(),
		SubmittedAt: q.SubmittedAt(),
		ExpiresAt:   q.ExpiresAt(),
	}
}

// QuoteToAdminDTO includes reviewer-only fields. notesHTML is the rendered
// markdown of the admin notes, empty when not rendered.
func QuoteToAdminDTO(q *quote.Quote, notesHTML string) AdminQuoteDTO {
	return AdminQuoteDTO{
		QuoteDTO:        QuoteToDTO(q),
		InternalID:      q.ID(),
		UserID:          q.UserID(),
		AdminNotes:      q.AdminNotes(),
		AdminNotesHTML:  notesHTML,
		ReviewStartedAt: q.ReviewStartedAt(),
		DecidedAt:       q.DecidedAt(),
	}
}

func VersionToDTO(v *quote.Version) VersionDTO {
	return VersionDTO{
		Version:   v.Version,
		Tier:      v.Tier.String(),
		Level:     v.Level.String(),
		Services:  servicesToDTO(v.Selected),
		Totals:    totalsToDTO(v.Totals),
		CreatedAt: v.CreatedAt,
	}
}
