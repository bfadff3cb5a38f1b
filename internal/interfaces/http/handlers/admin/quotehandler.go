package admin

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"atelier/internal/application/quote/dto"
	"atelier/internal/application/quote/usecases"
	"atelier/internal/shared/constants"
	"atelier/internal/shared/id"
	"atelier/internal/shared/logger"
	"atelier/internal/shared/utils"
)

// QuoteHandler is the review desk: queue listing, review lifecycle,
// internal notes and change history.
type QuoteHandler struct {
	listQuotesUC  *usecases.ListQuotesUseCase
	getQuoteUC    *usecases.GetQuoteUseCase
	reviewQuoteUC *usecases.ReviewQuoteUseCase
	updateNotesUC *usecases.UpdateAdminNotesUseCase
	getVersionsUC *usecases.GetQuoteVersionsUseCase
	logger        logger.Interface
}

func NewQuoteHandler(
	listQuotesUC *usecases.ListQuotesUseCase,
	getQuoteUC *usecases.GetQuoteUseCase,
	reviewQuoteUC *usecases.ReviewQuoteUseCase,
	updateNotesUC *usecases.UpdateAdminNotesUseCase,
	getVersionsUC *usecases.GetQuoteVersionsUseCase,
) *QuoteHandler {
	return &QuoteHandler{
		listQuotesUC:  listQuotesUC,
		getQuoteUC:    getQuoteUC,
		reviewQuoteUC: reviewQuoteUC,
		updateNotesUC: updateNotesUC,
		getVersionsUC: getVersionsUC,
		logger:        logger.NewLogger(),
	}
}

// ListQuotes handles GET /admin/quotes
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	query := usecases.ListQuotesQuery{
		Status:     c.Query("status"),
		Tier:       c.Query("tier"),
		Pagination: utils.ParsePagination(c),
	}

	if raw := c.Query("since"); raw != "" {
		since, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "since must be YYYY-MM-DD")
			return
		}
		query.Since = &since
	}

	result, err := h.listQuotesUC.ExecuteForAdmin(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	quotes := make([]dto.AdminQuoteDTO, 0, len(result.Quotes))
	for _, q := range result.Quotes {
		quotes = append(quotes, dto.QuoteToAdminDTO(q, ""))
	}
	utils.OKResponse(c, gin.H{"quotes": quotes, "total": result.Total})
}

// GetQuote handles GET /admin/quotes/:id
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixQuote, "quote")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	q, err := h.getQuoteUC.Execute(c.Request.Context(), usecases.GetQuoteQuery{
		QuoteSID: sid,
		UserID:   c.GetUint(constants.ContextKeyUserID),
		IsAdmin:  true,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, dto.QuoteToAdminDTO(q, ""))
}

// StartReview handles POST /admin/quotes/:id/review
func (h *QuoteHandler) StartReview(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixQuote, "quote")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	q, err := h.reviewQuoteUC.StartReview(c.Request.Context(), usecases.StartReviewCommand{
		QuoteSID: sid,
		AdminID:  c.GetUint(constants.ContextKeyUserID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, dto.QuoteToAdminDTO(q, ""))
}

type decideQuoteRequest struct {
	Decision string `json:"decision" binding:"required,oneof=accept reject"`
	Notes    string `json:"notes"`
}

// DecideQuote handles POST /admin/quotes/:id/decision
func (h *QuoteHandler) DecideQuote(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixQuote, "quote")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req decideQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "decision must be accept or reject")
		return
	}

	q, err := h.reviewQuoteUC.Decide(c.Request.Context(), usecases.DecideQuoteCommand{
		QuoteSID: sid,
		AdminID:  c.GetUint(constants.ContextKeyUserID),
		Decision: usecases.Decision(req.Decision),
		Notes:    req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, dto.QuoteToAdminDTO(q, ""))
}

type updateNotesRequest struct {
	Notes string `json:"notes"`
}

// UpdateNotes handles PUT /admin/quotes/:id/notes
func (h *QuoteHandler) UpdateNotes(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixQuote, "quote")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateNotesUC.Execute(c.Request.Context(), usecases.UpdateAdminNotesCommand{
		QuoteSID: sid,
		AdminID:  c.GetUint(constants.ContextKeyUserID),
		Notes:    req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, dto.QuoteToAdminDTO(result.Quote, result.NotesHTML))
}

// GetVersions handles GET /admin/quotes/:id/versions
func (h *QuoteHandler) GetVersions(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixQuote, "quote")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	versions, err := h.getVersionsUC.Execute(c.Request.Context(), usecases.GetQuoteVersionsQuery{
		QuoteSID: sid,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	out := make([]dto.VersionDTO, 0, len(versions))
	for _, v := range versions {
		out = append(out, dto.VersionToDTO(v))
	}
	utils.OKResponse(c, gin.H{"versions": out})
}
