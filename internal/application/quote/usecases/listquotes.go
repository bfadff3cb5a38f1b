package usecases

import (
	"context"
	"fmt"
	"time"

	"atelier/internal/domain/quote"
	"atelier/internal/shared/logger"
	"atelier/internal/shared/utils"
)

// ListMyQuotesQuery pages through the requesting user's own quotes.
type ListMyQuotesQuery struct {
	UserID     uint
	Pagination utils.Pagination
}

// ListQuotesQuery is the admin review queue listing.
type ListQuotesQuery struct {
	Status     string
	UserID     uint
	Tier       string
	Since      *time.Time
	Pagination utils.Pagination
}

type ListQuotesResult struct {
	Quotes []*quote.Quote
	Total  int64
}

type ListQuotesUseCase struct {
	quoteRepo quote.Repository
	logger    logger.Interface
}

func NewListQuotesUseCase(quoteRepo quote.Repository, logger logger.Interface) *ListQuotesUseCase {
	return &ListQuotesUseCase{quoteRepo: quoteRepo, logger: logger}
}

func (uc *ListQuotesUseCase) ExecuteForUser(ctx context.Context, query ListMyQuotesQuery) (*ListQuotesResult, error) {
	p := utils.ValidatePagination(query.Pagination.Page, query.Pagination.PageSize)
	quotes, total, err := uc.quoteRepo.FindByUserID(ctx, query.UserID, p.Offset(), p.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list user quotes", "error", err, "user_id", query.UserID)
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	return &ListQuotesResult{Quotes: quotes, Total: total}, nil
}

func (uc *ListQuotesUseCase) ExecuteForAdmin(ctx context.Context, query ListQuotesQuery) (*ListQuotesResult, error) {
	filter := quote.ListFilter{SinceAt: query.Since}
	if query.Status != "" {
		status := quote.Status(query.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("unknown quote status: %q", query.Status)
		}
		filter.Status = &status
	}
	if query.UserID != 0 {
		filter.UserID = &query.UserID
	}
	if query.Tier != "" {
		filter.Tier = &query.Tier
	}

	p := utils.ValidatePagination(query.Pagination.Page, query.Pagination.PageSize)
	quotes, total, err := uc.quoteRepo.List(ctx, filter, p.Offset(), p.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list quotes", "error", err)
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	return &ListQuotesResult{Quotes: quotes, Total: total}, nil
}
