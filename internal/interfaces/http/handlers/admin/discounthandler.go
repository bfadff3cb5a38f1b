package admin

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"atelier/internal/application/discount/usecases"
	"atelier/internal/domain/discount"
	"atelier/internal/shared/constants"
	"atelier/internal/shared/id"
	"atelier/internal/shared/logger"
	"atelier/internal/shared/utils"
)

type DiscountHandler struct {
	manageDiscountsUC *usecases.ManageDiscountsUseCase
	logger            logger.Interface
}

func NewDiscountHandler(manageDiscountsUC *usecases.ManageDiscountsUseCase) *DiscountHandler {
	return &DiscountHandler{
		manageDiscountsUC: manageDiscountsUC,
		logger:            logger.NewLogger(),
	}
}

type discountResponse struct {
	ID          string     `json:"id"`
	Code        string     `json:"code"`
	Description string     `json:"description,omitempty"`
	Type        string     `json:"type"`
	Value       int        `json:"value"`
	AppliesTo   []string   `json:"applies_to,omitempty"`
	UsageLimit  int        `json:"usage_limit"`
	UsageCount  int        `json:"usage_count"`
	PerUserOnce bool       `json:"per_user_once"`
	ValidFrom   *time.Time `json:"valid_from,omitempty"`
	ValidUntil  *time.Time `json:"valid_until,omitempty"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"created_at"`
}

func toDiscountResponse(d *discount.Discount) discountResponse {
	resp := discountResponse{
		ID:          d.SID(),
		Code:        d.Code(),
		Description: d.Description(),
		Type:        string(d.Kind()),
		Value:       d.Value(),
		UsageLimit:  d.UsageLimit(),
		UsageCount:  d.UsageCount(),
		PerUserOnce: d.PerUserOnce(),
		Active:      d.IsActive(),
		CreatedAt:   d.CreatedAt(),
	}
	for _, tier := range d.AppliesTo() {
		resp.AppliesTo = append(resp.AppliesTo, string(tier))
	}
	if from := d.ValidFrom(); !from.IsZero() {
		resp.ValidFrom = &from
	}
	if until := d.ValidUntil(); !until.IsZero() {
		resp.ValidUntil = &until
	}
	return resp
}

type createDiscountRequest struct {
	Code        string   `json:"code" binding:"required"`
	Description string   `json:"description"`
	Type        string   `json:"type" binding:"required,oneof=percentage fixed"`
	Value       int      `json:"value" binding:"required"`
	AppliesTo   []string `json:"applies_to"`
	UsageLimit  int      `json:"usage_limit"`
	PerUserOnce bool     `json:"per_user_once"`
	ValidFrom   string   `json:"valid_from"`
	ValidUntil  string   `json:"valid_until"`
}

// CreateDiscount handles POST /admin/discounts
func (h *DiscountHandler) CreateDiscount(c *gin.Context) {
	var req createDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create discount", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.CreateDiscountCommand{
		AdminID:     c.GetUint(constants.ContextKeyUserID),
		Code:        req.Code,
		Description: req.Description,
		Type:        req.Type,
		Value:       req.Value,
		AppliesTo:   req.AppliesTo,
		UsageLimit:  req.UsageLimit,
		PerUserOnce: req.PerUserOnce,
	}

	if req.ValidFrom != "" {
		from, err := time.Parse("2006-01-02", req.ValidFrom)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "valid_from must be YYYY-MM-DD")
			return
		}
		cmd.ValidFrom = from
	}
	if req.ValidUntil != "" {
		until, err := time.Parse("2006-01-02", req.ValidUntil)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "valid_until must be YYYY-MM-DD")
			return
		}
		cmd.ValidUntil = until
	}

	d, err := h.manageDiscountsUC.Create(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, toDiscountResponse(d), "discount created")
}

type toggleDiscountRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// ToggleDiscount handles PATCH /admin/discounts/:id
func (h *DiscountHandler) ToggleDiscount(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixDiscount, "discount")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req toggleDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "active is required")
		return
	}

	d, err := h.manageDiscountsUC.Toggle(c.Request.Context(), usecases.ToggleDiscountCommand{
		AdminID:     c.GetUint(constants.ContextKeyUserID),
		DiscountSID: sid,
		Active:      *req.Active,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, toDiscountResponse(d))
}

// ListDiscounts handles GET /admin/discounts
func (h *DiscountHandler) ListDiscounts(c *gin.Context) {
	result, err := h.manageDiscountsUC.List(c.Request.Context(), usecases.ListDiscountsQuery{
		ActiveOnly: c.Query("active") == "true",
		Pagination: utils.ParsePagination(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	discounts := make([]discountResponse, 0, len(result.Discounts))
	for _, d := range result.Discounts {
		discounts = append(discounts, toDiscountResponse(d))
	}
	utils.OKResponse(c, gin.H{"discounts": discounts, "total": result.Total})
}
