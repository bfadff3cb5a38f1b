package usecases

import (
	"atelier/internal/application/catalog/dto"
	"atelier/internal/domain/addon"
	"atelier/internal/domain/catalog"
	"atelier/internal/shared/logger"
)

type ListServicesQuery struct {
	// Tier filters to services compatible with one tier. Empty means all.
	Tier string
}

type ListServicesUseCase struct {
	logger logger.Interface
}

func NewListServicesUseCase(logger logger.Interface) *ListServicesUseCase {
	return &ListServicesUseCase{logger: logger}
}

// Execute lists optional services in declaration order.
func (uc *ListServicesUseCase) Execute(query ListServicesQuery) ([]dto.ServiceDTO, error) {
	var services []addon.Service
	if query.Tier == "" {
		services = addon.AllServices()
	} else {
		tier, err := catalog.ParseTier(query.Tier)
		if err != nil {
			return nil, err
		}
		services = addon.GetCompatibleOptionalServices(tier)
	}

	out := make([]dto.ServiceDTO, 0, len(services))
	for _, s := range services {
		out = append(out, dto.ServiceToDTO(s))
	}
	return out, nil
}
