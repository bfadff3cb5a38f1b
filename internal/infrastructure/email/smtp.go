package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"atelier/internal/domain/quote"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	// ReviewDesk receives a copy of every submission notification.
	ReviewDesk string
	BaseURL    string
}

// SMTPQuoteNotifier sends quote lifecycle emails over plain SMTP.
type SMTPQuoteNotifier struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPQuoteNotifier(config SMTPConfig) *SMTPQuoteNotifier {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPQuoteNotifier{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPQuoteNotifier) NotifySubmitted(_ context.Context, q *quote.Quote) error {
	quoteURL := fmt.Sprintf("%s/quotes/%s", s.config.BaseURL, q.SID())
	contact := q.Contact()

	subject := fmt.Sprintf("Preventivo %s ricevuto", q.Number())
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Grazie, %s!</h2>
			<p>Abbiamo ricevuto la tua richiesta di preventivo <strong>%s</strong> (%s, livello %s).</p>
			<p>Totale stimato: <strong>€%d</strong> (IVA inclusa).</p>
			<p>Il preventivo resta valido fino al %s. Puoi seguirne lo stato qui:</p>
			<p><a href="%s">%s</a></p>
			<p>Ti ricontatteremo entro due giorni lavorativi.</p>
		</body>
		</html>
	`, contact.Name, q.Number(), q.Tier(), q.Level(), q.Totals().TotalPrice,
		q.ExpiresAt().Format("02/01/2006"), quoteURL, quoteURL)

	plainBody := fmt.Sprintf(`
Grazie, %s!

Abbiamo ricevuto la tua richiesta di preventivo %s (%s, livello %s).
Totale stimato: €%d (IVA inclusa).

Il preventivo resta valido fino al %s. Puoi seguirne lo stato qui:
%s

Ti ricontatteremo entro due giorni lavorativi.
	`, contact.Name, q.Number(), q.Tier(), q.Level(), q.Totals().TotalPrice,
		q.ExpiresAt().Format("02/01/2006"), quoteURL)

	if err := s.sendEmail(contact.Email, subject, htmlBody, plainBody, s.config.ReviewDesk); err != nil {
		return err
	}
	return nil
}

func (s *SMTPQuoteNotifier) NotifyDecision(_ context.Context, q *quote.Quote) error {
	quoteURL := fmt.Sprintf("%s/quotes/%s", s.config.BaseURL, q.SID())
	contact := q.Contact()

	var subject, headline, detail string
	switch q.Status() {
	case quote.StatusAccepted:
		subject = fmt.Sprintf("Preventivo %s confermato", q.Number())
		headline = "Il tuo preventivo è stato confermato!"
		detail = "Prenota un appuntamento dalla tua area personale per avviare il progetto."
	case quote.StatusRejected:
		subject = fmt.Sprintf("Preventivo %s: aggiornamento", q.Number())
		headline = "Non possiamo procedere con il preventivo così com'è."
		detail = "Rispondi a questa email per discutere alternative o modifiche."
	default:
		return fmt.Errorf("quote %s has no decision to notify", q.SID())
	}

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>%s</h2>
			<p>Preventivo <strong>%s</strong> (%s, livello %s), totale €%d.</p>
			<p>%s</p>
			<p><a href="%s">Vedi il preventivo</a></p>
		</body>
		</html>
	`, headline, q.Number(), q.Tier(), q.Level(), q.Totals().TotalPrice, detail, quoteURL)

	plainBody := fmt.Sprintf(`
%s

Preventivo %s (%s, livello %s), totale €%d.
%s

%s
	`, headline, q.Number(), q.Tier(), q.Level(), q.Totals().TotalPrice, detail, quoteURL)

	return s.sendEmail(contact.Email, subject, htmlBody, plainBody, "")
}

func (s *SMTPQuoteNotifier) sendEmail(to, subject, htmlBody, plainBody, bcc string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	if bcc != "" {
		m.SetHeader("Bcc", bcc)
	}
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
