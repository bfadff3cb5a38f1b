package usecases

import (
	"atelier/internal/domain/catalog"
	"atelier/internal/shared/logger"
)

type GetComparisonQuery struct {
	Tier string
}

type GetComparisonUseCase struct {
	logger logger.Interface
}

func NewGetComparisonUseCase(logger logger.Interface) *GetComparisonUseCase {
	return &GetComparisonUseCase{logger: logger}
}

// Execute returns the level comparison table for one tier.
func (uc *GetComparisonUseCase) Execute(query GetComparisonQuery) ([]catalog.ComparisonCategory, error) {
	tier, err := catalog.ParseTier(query.Tier)
	if err != nil {
		uc.logger.Warnw("comparison requested for unknown tier", "tier", query.Tier)
		return nil, err
	}
	return catalog.GetTierLevelComparisonData(tier), nil
}
