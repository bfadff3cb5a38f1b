package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atelier/internal/application/catalog/usecases"
	"atelier/internal/shared/logger"
	"atelier/internal/shared/utils"
)

// CatalogHandler serves the public pricing page: tiers, optional services
// and the live price preview.
type CatalogHandler struct {
	getCatalogUC    *usecases.GetCatalogUseCase
	getTierUC       *usecases.GetTierUseCase
	getComparisonUC *usecases.GetComparisonUseCase
	listServicesUC  *usecases.ListServicesUseCase
	getCategoriesUC *usecases.GetCategoriesUseCase
	previewPriceUC  *usecases.PreviewPriceUseCase
	logger          logger.Interface
}

func NewCatalogHandler(
	getCatalogUC *usecases.GetCatalogUseCase,
	getTierUC *usecases.GetTierUseCase,
	getComparisonUC *usecases.GetComparisonUseCase,
	listServicesUC *usecases.ListServicesUseCase,
	getCategoriesUC *usecases.GetCategoriesUseCase,
	previewPriceUC *usecases.PreviewPriceUseCase,
) *CatalogHandler {
	return &CatalogHandler{
		getCatalogUC:    getCatalogUC,
		getTierUC:       getTierUC,
		getComparisonUC: getComparisonUC,
		listServicesUC:  listServicesUC,
		getCategoriesUC: getCategoriesUC,
		previewPriceUC:  previewPriceUC,
		logger:          logger.NewLogger(),
	}
}

// GetCatalog handles GET /catalog
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	utils.OKResponse(c, h.getCatalogUC.Execute())
}

// GetTier handles GET /catalog/:tier
func (h *CatalogHandler) GetTier(c *gin.Context) {
	result, err := h.getTierUC.Execute(usecases.GetTierQuery{
		Tier: c.Param("tier"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

// ListServices handles GET /catalog/services
func (h *CatalogHandler) ListServices(c *gin.Context) {
	result, err := h.listServicesUC.Execute(usecases.ListServicesQuery{
		Tier: c.Query("tier"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, gin.H{"services": result})
}

// GetCategories handles GET /catalog/categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	utils.OKResponse(c, gin.H{"categories": h.getCategoriesUC.Execute()})
}

// GetComparison handles GET /catalog/:tier/comparison
func (h *CatalogHandler) GetComparison(c *gin.Context) {
	result, err := h.getComparisonUC.Execute(usecases.GetComparisonQuery{
		Tier: c.Param("tier"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

type previewPriceRequest struct {
	Tier       string   `json:"tier" binding:"required"`
	Level      string   `json:"level" binding:"required"`
	ServiceIDs []string `json:"service_ids"`
}

// PreviewPrice handles POST /pricing/preview
func (h *CatalogHandler) PreviewPrice(c *gin.Context) {
	var req previewPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for price preview", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.previewPriceUC.Execute(usecases.PreviewPriceQuery{
		Tier:       req.Tier,
		Level:      req.Level,
		ServiceIDs: req.ServiceIDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}
