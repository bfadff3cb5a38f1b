package usecases

import (
	"context"
	"fmt"

	"atelier/internal/domain/quote"
	"atelier/internal/shared/errors"
	"atelier/internal/shared/logger"
	"atelier/internal/shared/utils"
)

type SubmitQuoteCommand struct {
	QuoteSID string
	UserID   uint
}

type SubmitQuoteUseCase struct {
	quoteRepo quote.Repository
	notifier  QuoteNotifier
	logger    logger.Interface
}

func NewSubmitQuoteUseCase(quoteRepo quote.Repository, notifier QuoteNotifier, logger logger.Interface) *SubmitQuoteUseCase {
	return &SubmitQuoteUseCase{quoteRepo: quoteRepo, notifier: notifier, logger: logger}
}

func (uc *SubmitQuoteUseCase) Execute(ctx context.Context, cmd SubmitQuoteCommand) (*quote.Quote, error) {
	q, err := uc.quoteRepo.FindBySID(ctx, cmd.QuoteSID)
	if err != nil {
		uc.logger.Errorw("failed to get quote", "error", err, "quote_sid", cmd.QuoteSID)
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}
	if q == nil {
		return nil, errors.NewNotFoundError("quote not found")
	}
	if q.UserID() != cmd.UserID {
		return nil, errors.NewForbiddenError("quote belongs to another user")
	}

	if err := q.Submit(); err != nil {
		return nil, errors.NewStateError(err.Error())
	}
	if err := uc.quoteRepo.Update(ctx, q); err != nil {
		uc.logger.Errorw("failed to persist submission", "error", err, "quote_sid", cmd.QuoteSID)
		return nil, fmt.Errorf("failed to submit quote: %w", err)
	}

	if uc.notifier != nil {
		if err := uc.notifier.NotifySubmitted(ctx, q); err != nil {
			uc.logger.Warnw("failed to send submission notification", "error", err, "quote_sid", q.SID())
		}
	}

	uc.logger.Infow("quote submitted",
		"quote_sid", q.SID(),
		"number", q.Number(),
		"user_id", cmd.UserID,
		"contact_email", utils.MaskEmail(q.Contact().Email),
		"contact_phone", utils.MaskPhone(q.Contact().Phone),
	)
	return q, nil
}
