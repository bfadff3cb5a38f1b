package usecases

import (
	"atelier/internal/domain/addon"
	"atelier/internal/domain/catalog"
	"atelier/internal/domain/pricing"
	"atelier/internal/domain/quote"
	"atelier/internal/shared/logger"
)

type PreviewPriceQuery struct {
	Tier       string
	Level      string
	ServiceIDs []string
}

// PreviewPriceResult mirrors the quote totals so the live preview and the
// persisted quote can never disagree.
type PreviewPriceResult struct {
	BasePrice       int      `json:"base_price"`
	ServicesPrice   int      `json:"services_price"`
	TaxAmount       int      `json:"tax_amount"`
	TotalPrice      int      `json:"total_price"`
	UnknownServices []string `json:"unknown_services,omitempty"`
}

type PreviewPriceUseCase struct {
	logger logger.Interface
}

func NewPreviewPriceUseCase(logger logger.Interface) *PreviewPriceUseCase {
	return &PreviewPriceUseCase{logger: logger}
}

// Execute computes the price preview for a selection before any quote exists.
func (uc *PreviewPriceUseCase) Execute(query PreviewPriceQuery) (*PreviewPriceResult, error) {
	tier, err := catalog.ParseTier(query.Tier)
	if err != nil {
		return nil, err
	}
	level, err := catalog.ParseLevel(query.Level)
	if err != nil {
		return nil, err
	}

	servicesTotal, missing := pricing.ResolveOptionalServicesTotal(query.ServiceIDs)
	if len(missing) > 0 {
		uc.logger.Warnw("price preview references unknown services", "missing", missing)
	}

	var selected []addon.Service
	for _, id := range query.ServiceIDs {
		if s, ok := addon.GetOptionalServiceByID(id); ok {
			selected = append(selected, s)
		}
	}
	subtotal := pricing.CalculateTotalPrice(tier, level, selected)

	totals, err := quote.NewTotals(subtotal-servicesTotal, servicesTotal, 0, quote.DefaultTaxRateBps)
	if err != nil {
		return nil, err
	}

	return &PreviewPriceResult{
		BasePrice:       totals.BasePrice,
		ServicesPrice:   totals.ServicesPrice,
		TaxAmount:       totals.TaxAmount,
		TotalPrice:      totals.TotalPrice,
		UnknownServices: missing,
	}, nil
}
