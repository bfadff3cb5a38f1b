package usecases

import (
	"context"
	"fmt"

	"atelier/internal/domain/quote"
	"atelier/internal/shared/errors"
	"atelier/internal/shared/logger"
)

type GetQuoteQuery struct {
	QuoteSID string
	UserID   uint
	// IsAdmin skips the ownership check for the review desk.
	IsAdmin bool
}

type GetQuoteUseCase struct {
	quoteRepo quote.Repository
	logger    logger.Interface
}

func NewGetQuoteUseCase(quoteRepo quote.Repository, logger logger.Interface) *GetQuoteUseCase {
	return &GetQuoteUseCase{quoteRepo: quoteRepo, logger: logger}
}

func (uc *GetQuoteUseCase) Execute(ctx context.Context, query GetQuoteQuery) (*quote.Quote, error) {
	q, err := uc.quoteRepo.FindBySID(ctx, query.QuoteSID)
	if err != nil {
		uc.logger.Errorw("failed to get quote", "error", err, "quote_sid", query.QuoteSID)
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}
	if q == nil {
		return nil, errors.NewNotFoundError("quote not found")
	}
	if !query.IsAdmin && q.UserID() != query.UserID {
		return nil, errors.NewForbiddenError("quote belongs to another user")
	}
	return q, nil
}
