package usecases

import (
	"atelier/internal/application/catalog/dto"
	"atelier/internal/domain/catalog"
	"atelier/internal/shared/logger"
)

type GetTierQuery struct {
	Tier string
}

type GetTierUseCase struct {
	logger logger.Interface
}

func NewGetTierUseCase(logger logger.Interface) *GetTierUseCase {
	return &GetTierUseCase{logger: logger}
}

// Execute returns the full detail of one tier including its three levels.
func (uc *GetTierUseCase) Execute(query GetTierQuery) (*dto.TierDTO, error) {
	tier, err := catalog.ParseTier(query.Tier)
	if err != nil {
		return nil, err
	}
	result := dto.TierToDTO(tier)
	return &result, nil
}
