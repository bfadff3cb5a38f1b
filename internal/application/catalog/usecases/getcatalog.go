package usecases

import (
	"atelier/internal/application/catalog/dto"
	"atelier/internal/domain/addon"
	"atelier/internal/domain/catalog"
	"atelier/internal/shared/logger"
)

// CatalogResult is the full pricing page payload.
type CatalogResult struct {
	Tiers      []dto.TierDTO     `json:"tiers"`
	Services   []dto.ServiceDTO  `json:"services"`
	Categories []dto.CategoryDTO `json:"categories"`
}

type GetCatalogUseCase struct {
	logger logger.Interface
}

func NewGetCatalogUseCase(logger logger.Interface) *GetCatalogUseCase {
	return &GetCatalogUseCase{logger: logger}
}

// Execute assembles the catalog. Content is compiled in, so this never fails.
func (uc *GetCatalogUseCase) Execute() *CatalogResult {
	result := &CatalogResult{}
	for _, tier := range catalog.Tiers() {
		result.Tiers = append(result.Tiers, dto.TierToDTO(tier))
	}
	for _, s := range addon.AllServices() {
		result.Services = append(result.Services, dto.ServiceToDTO(s))
	}
	for _, c := range addon.GetOptionalServiceCategoriesConfig() {
		result.Categories = append(result.Categories, dto.CategoryToDTO(c))
	}
	return result
}
