package usecases

import (
	"context"

	"atelier/internal/domain/quote"
)

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// QuoteNotifier sends lifecycle emails to the customer and the review desk.
// Implementations must not block the request path longer than necessary;
// failures are logged, never surfaced to the caller.
type QuoteNotifier interface {
	NotifySubmitted(ctx context.Context, q *quote.Quote) error
	NotifyDecision(ctx context.Context, q *quote.Quote) error
}

// NotesRenderer turns markdown admin notes into sanitized HTML.
type NotesRenderer interface {
	Render(markdown string) (string, error)
}
