package usecases

import (
	"atelier/internal/application/catalog/dto"
	"atelier/internal/domain/addon"
	"atelier/internal/shared/logger"
)

type GetCategoriesUseCase struct {
	logger logger.Interface
}

func NewGetCategoriesUseCase(logger logger.Interface) *GetCategoriesUseCase {
	return &GetCategoriesUseCase{logger: logger}
}

// Execute returns the service categories sorted by their fixed sort order.
func (uc *GetCategoriesUseCase) Execute() []dto.CategoryDTO {
	config := addon.GetOptionalServiceCategoriesConfig()
	out := make([]dto.CategoryDTO, 0, len(config))
	for _, c := range config {
		out = append(out, dto.CategoryToDTO(c))
	}
	return out
}
