package quote

import (
	"fmt"
	"strings"
)

// ContactChannel is how the customer prefers to be reached.
type ContactChannel string

const (
	ContactChannelEmail    ContactChannel = "email"
	ContactChannelPhone    ContactChannel = "phone"
	ContactChannelWhatsApp ContactChannel = "whatsapp"
)

func (c ContactChannel) IsValid() bool {
	return c == ContactChannelEmail || c == ContactChannelPhone || c == ContactChannelWhatsApp
}

// ContactPreference carries the outreach details attached to a quote.
type ContactPreference struct {
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone"`
	Channel       ContactChannel `json:"channel"`
	PreferredTime string         `json:"preferred_time"`
	Message       string         `json:"message"`
}

// Validate checks the preference is actionable for the chosen channel.
func (p ContactPreference) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("contact name is required")
	}
	if !p.Channel.IsValid() {
		return fmt.Errorf("invalid contact channel: %s", p.Channel)
	}
	switch p.Channel {
	case ContactChannelEmail:
		if strings.TrimSpace(p.Email) == "" {
			return fmt.Errorf("email is required for the email channel")
		}
	case ContactChannelPhone, ContactChannelWhatsApp:
		if strings.TrimSpace(p.Phone) == "" {
			return fmt.Errorf("phone number is required for the %s channel", p.Channel)
		}
	}
	return nil
}
