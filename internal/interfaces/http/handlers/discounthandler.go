package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atelier/internal/application/discount/usecases"
	quotedto "atelier/internal/application/quote/dto"
	"atelier/internal/shared/constants"
	"atelier/internal/shared/id"
	"atelier/internal/shared/logger"
	"atelier/internal/shared/utils"
)

type DiscountHandler struct {
	validateDiscountUC *usecases.ValidateDiscountUseCase
	applyDiscountUC    *usecases.ApplyDiscountUseCase
	logger             logger.Interface
}

func NewDiscountHandler(
	validateDiscountUC *usecases.ValidateDiscountUseCase,
	applyDiscountUC *usecases.ApplyDiscountUseCase,
) *DiscountHandler {
	return &DiscountHandler{
		validateDiscountUC: validateDiscountUC,
		applyDiscountUC:    applyDiscountUC,
		logger:             logger.NewLogger(),
	}
}

type validateDiscountRequest struct {
	Code     string `json:"code" binding:"required"`
	Tier     string `json:"tier" binding:"required"`
	Subtotal int    `json:"subtotal" binding:"required"`
}

// ValidateDiscount handles POST /discounts/validate. It never returns an
// error for an unusable code; the outcome is part of the payload so the
// front end can show the reason inline.
func (h *DiscountHandler) ValidateDiscount(c *gin.Context) {
	var req validateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.validateDiscountUC.Execute(c.Request.Context(), usecases.ValidateDiscountQuery{
		Code:     req.Code,
		Tier:     req.Tier,
		Subtotal: req.Subtotal,
		UserID:   c.GetUint(constants.ContextKeyUserID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

type applyDiscountRequest struct {
	Code string `json:"code" binding:"required"`
}

// ApplyDiscount handles POST /quotes/:id/discount
func (h *DiscountHandler) ApplyDiscount(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixQuote, "quote")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req applyDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.applyDiscountUC.Execute(c.Request.Context(), usecases.ApplyDiscountCommand{
		QuoteSID: sid,
		UserID:   c.GetUint(constants.ContextKeyUserID),
		Code:     req.Code,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"quote":  quotedto.QuoteToDTO(result.Quote),
		"amount": result.Amount,
	})
}
