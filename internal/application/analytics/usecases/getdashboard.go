package usecases

import (
	"context"
	"fmt"
	"time"

	"atelier/internal/domain/analytics"
	"atelier/internal/domain/quote"
	"atelier/internal/shared/biztime"
	"atelier/internal/shared/logger"
)

type GetDashboardQuery struct {
	// Days is the report window ending now. Defaults to 30.
	Days int
}

type DashboardResult struct {
	Funnel       []analytics.FunnelStep   `json:"funnel"`
	TierInterest []analytics.TierInterest `json:"tier_interest"`
	Quotes       analytics.QuoteSummary   `json:"quotes"`
}

// GetDashboardUseCase assembles the admin analytics dashboard.
type GetDashboardUseCase struct {
	eventRepo analytics.Repository
	quoteRepo quote.Repository
	logger    logger.Interface
}

func NewGetDashboardUseCase(eventRepo analytics.Repository, quoteRepo quote.Repository, logger logger.Interface) *GetDashboardUseCase {
	return &GetDashboardUseCase{eventRepo: eventRepo, quoteRepo: quoteRepo, logger: logger}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context, query GetDashboardQuery) (*DashboardResult, error) {
	days := query.Days
	if days <= 0 {
		days = 30
	}
	until := biztime.NowUTC()
	from := until.Add(-time.Duration(days) * 24 * time.Hour)

	counts, err := uc.eventRepo.CountSessionsByStep(ctx, from, until)
	if err != nil {
		uc.logger.Errorw("failed to count journey sessions", "error", err)
		return nil, fmt.Errorf("failed to count journey sessions: %w", err)
	}

	interest, err := uc.eventRepo.CountTierSelections(ctx, from, until)
	if err != nil {
		uc.logger.Errorw("failed to count tier selections", "error", err)
		return nil, fmt.Errorf("failed to count tier selections: %w", err)
	}

	byStatus, err := uc.quoteRepo.CountByStatus(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count quotes by status", "error", err)
		return nil, fmt.Errorf("failed to count quotes: %w", err)
	}
	summary := analytics.QuoteSummary{ByStatus: make(map[string]int64, len(byStatus))}
	for status, n := range byStatus {
		summary.ByStatus[status.String()] = n
	}

	return &DashboardResult{
		Funnel:       analytics.BuildFunnel(counts),
		TierInterest: interest,
		Quotes:       summary,
	}, nil
}
