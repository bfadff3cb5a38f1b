package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atelier/internal/application/quote/dto"
	"atelier/internal/application/quote/usecases"
	"atelier/internal/shared/constants"
	"atelier/internal/shared/id"
	"atelier/internal/shared/logger"
	"atelier/internal/shared/utils"
)

// QuoteHandler is the customer-facing quote API. Admin review lives in the
// admin package.
type QuoteHandler struct {
	createQuoteUC *usecases.CreateQuoteUseCase
	updateQuoteUC *usecases.UpdateQuoteUseCase
	getQuoteUC    *usecases.GetQuoteUseCase
	listQuotesUC  *usecases.ListQuotesUseCase
	submitQuoteUC *usecases.SubmitQuoteUseCase
	logger        logger.Interface
}

func NewQuoteHandler(
	createQuoteUC *usecases.CreateQuoteUseCase,
	updateQuoteUC *usecases.UpdateQuoteUseCase,
	getQuoteUC *usecases.GetQuoteUseCase,
	listQuotesUC *usecases.ListQuotesUseCase,
	submitQuoteUC *usecases.SubmitQuoteUseCase,
) *QuoteHandler {
	return &QuoteHandler{
		createQuoteUC: createQuoteUC,
		updateQuoteUC: updateQuoteUC,
		getQuoteUC:    getQuoteUC,
		listQuotesUC:  listQuotesUC,
		submitQuoteUC: submitQuoteUC,
		logger:        logger.NewLogger(),
	}
}

type createQuoteRequest struct {
	Tier          string   `json:"tier" binding:"required,tier"`
	Level         string   `json:"level" binding:"required,level"`
	ServiceIDs    []string `json:"service_ids"`
	ContactName   string   `json:"contact_name" binding:"required"`
	ContactEmail  string   `json:"contact_email"`
	ContactPhone  string   `json:"contact_phone"`
	Channel       string   `json:"channel" binding:"required"`
	PreferredTime string   `json:"preferred_time"`
	Message       string   `json:"message"`
}

// CreateQuote handles POST /quotes
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req createQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create quote", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createQuoteUC.Execute(c.Request.Context(), usecases.CreateQuoteCommand{
		UserID:        c.GetUint(constants.ContextKeyUserID),
		Tier:          req.Tier,
		Level:         req.Level,
		ServiceIDs:    req.ServiceIDs,
		ContactName:   req.ContactName,
		ContactEmail:  req.ContactEmail,
		ContactPhone:  req.ContactPhone,
		Channel:       req.Channel,
		PreferredTime: req.PreferredTime,
		Message:       req.Message,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	payload := gin.H{"quote": dto.QuoteToDTO(result.Quote)}
	if len(result.UnknownServices) > 0 {
		payload["unknown_services"] = result.UnknownServices
	}
	utils.CreatedResponse(c, payload, "quote created")
}

type updateQuoteRequest struct {
	Tier       string   `json:"tier" binding:"required"`
	Level      string   `json:"level" binding:"required"`
	ServiceIDs []string `json:"service_ids"`
}

// UpdateQuote handles PUT /quotes/:id
func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixQuote, "quote")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateQuoteUC.Execute(c.Request.Context(), usecases.UpdateQuoteCommand{
		QuoteSID:   sid,
		UserID:     c.GetUint(constants.ContextKeyUserID),
		Tier:       req.Tier,
		Level:      req.Level,
		ServiceIDs: req.ServiceIDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	payload := gin.H{"quote": dto.QuoteToDTO(result.Quote)}
	if len(result.UnknownServices) > 0 {
		payload["unknown_services"] = result.UnknownServices
	}
	utils.OKResponse(c, payload)
}

// GetQuote handles GET /quotes/:id
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixQuote, "quote")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	q, err := h.getQuoteUC.Execute(c.Request.Context(), usecases.GetQuoteQuery{
		QuoteSID: sid,
		UserID:   c.GetUint(constants.ContextKeyUserID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, dto.QuoteToDTO(q))
}

// ListQuotes handles GET /quotes
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	result, err := h.listQuotesUC.ExecuteForUser(c.Request.Context(), usecases.ListMyQuotesQuery{
		UserID:     c.GetUint(constants.ContextKeyUserID),
		Pagination: utils.ParsePagination(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	quotes := make([]dto.QuoteDTO, 0, len(result.Quotes))
	for _, q := range result.Quotes {
		quotes = append(quotes, dto.QuoteToDTO(q))
	}
	utils.OKResponse(c, gin.H{"quotes": quotes, "total": result.Total})
}

// SubmitQuote handles POST /quotes/:id/submit
func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixQuote, "quote")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	q, err := h.submitQuoteUC.Execute(c.Request.Context(), usecases.SubmitQuoteCommand{
		QuoteSID: sid,
		UserID:   c.GetUint(constants.ContextKeyUserID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, dto.QuoteToDTO(q))
}
