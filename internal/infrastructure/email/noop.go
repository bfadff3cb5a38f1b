package email

import (
	"context"

	"atelier/internal/domain/quote"
	"atelier/internal/shared/logger"
)

// NoopQuoteNotifier is used when email delivery is disabled. It only logs,
// so local environments work without an SMTP server.
type NoopQuoteNotifier struct {
	logger logger.Interface
}

func NewNoopQuoteNotifier(logger logger.Interface) *NoopQuoteNotifier {
	return &NoopQuoteNotifier{logger: logger}
}

func (n *NoopQuoteNotifier) NotifySubmitted(_ context.Context, q *quote.Quote) error {
	n.logger.Infow("email disabled, skipping submission notification", "quote_number", q.Number())
	return nil
}

func (n *NoopQuoteNotifier) NotifyDecision(_ context.Context, q *quote.Quote) error {
	n.logger.Infow("email disabled, skipping decision notification", "quote_number", q.Number(), "status", q.Status())
	return nil
}
