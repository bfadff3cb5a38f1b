package usecases

import (
	"context"
	"fmt"

	"atelier/internal/domain/account"
	"atelier/internal/domain/quote"
	"atelier/internal/shared/errors"
	"atelier/internal/shared/logger"
)

type UpdateAdminNotesCommand struct {
	QuoteSID string
	AdminID  uint
	Notes    string
}

type UpdateAdminNotesResult struct {
	Quote     *quote.Quote
	NotesHTML string
}

// UpdateAdminNotesUseCase stores reviewer notes and returns the rendered
// HTML for immediate display.
type UpdateAdminNotesUseCase struct {
	quoteRepo quote.Repository
	auditRepo account.AuditRepository
	renderer  NotesRenderer
	txManager TransactionManager
	logger    logger.Interface
}

func NewUpdateAdminNotesUseCase(
	quoteRepo quote.Repository,
	auditRepo account.AuditRepository,
	renderer NotesRenderer,
	txManager TransactionManager,
	logger logger.Interface,
) *UpdateAdminNotesUseCase {
	return &UpdateAdminNotesUseCase{
		quoteRepo: quoteRepo,
		auditRepo: auditRepo,
		renderer:  renderer,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *UpdateAdminNotesUseCase) Execute(ctx context.Context, cmd UpdateAdminNotesCommand) (*UpdateAdminNotesResult, error) {
	q, err := uc.quoteRepo.FindBySID(ctx, cmd.QuoteSID)
	if err != nil {
		uc.logger.Errorw("failed to get quote", "error", err, "quote_sid", cmd.QuoteSID)
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}
	if q == nil {
		return nil, errors.NewNotFoundError("quote not found")
	}

	html, err := uc.renderer.Render(cmd.Notes)
	if err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid notes markdown: %v", err))
	}
	q.SetAdminNotes(cmd.Notes)

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.quoteRepo.Update(txCtx, q); err != nil {
			return fmt.Errorf("failed to update quote: %w", err)
		}
		entry := account.NewAuditEntry(cmd.AdminID, account.AuditQuoteNotesUpdated, "quote", q.ID(), q.Number())
		return uc.auditRepo.Create(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("failed to persist notes", "error", err, "quote_sid", cmd.QuoteSID)
		return nil, err
	}

	return &UpdateAdminNotesResult{Quote: q, NotesHTML: html}, nil
}
