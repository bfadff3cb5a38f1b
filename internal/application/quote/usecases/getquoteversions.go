package usecases

import (
	"context"
	"fmt"

	"atelier/internal/domain/quote"
	"atelier/internal/shared/errors"
	"atelier/internal/shared/logger"
)

type GetQuoteVersionsQuery struct {
	QuoteSID string
}

// GetQuoteVersionsUseCase returns the change history of a quote for the
// review desk.
type GetQuoteVersionsUseCase struct {
	quoteRepo   quote.Repository
	versionRepo quote.VersionRepository
	logger      logger.Interface
}

func NewGetQuoteVersionsUseCase(quoteRepo quote.Repository, versionRepo quote.VersionRepository, logger logger.Interface) *GetQuoteVersionsUseCase {
	return &GetQuoteVersionsUseCase{quoteRepo: quoteRepo, versionRepo: versionRepo, logger: logger}
}

func (uc *GetQuoteVersionsUseCase) Execute(ctx context.Context, query GetQuoteVersionsQuery) ([]*quote.Version, error) {
	q, err := uc.quoteRepo.FindBySID(ctx, query.QuoteSID)
	if err != nil {
		uc.logger.Errorw("failed to get quote", "error", err, "quote_sid", query.QuoteSID)
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}
	if q == nil {
		return nil, errors.NewNotFoundError("quote not found")
	}

	versions, err := uc.versionRepo.ListByQuoteID(ctx, q.ID())
	if err != nil {
		uc.logger.Errorw("failed to list quote versions", "error", err, "quote_sid", query.QuoteSID)
		return nil, fmt.Errorf("failed to list quote versions: %w", err)
	}
	return versions, nil
}
