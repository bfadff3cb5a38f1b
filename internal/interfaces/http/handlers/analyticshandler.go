package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atelier/internal/application/analytics/usecases"
	"atelier/internal/shared/constants"
	"atelier/internal/shared/logger"
	"atelier/internal/shared/utils"
)

// AnalyticsHandler records anonymous journey events from the pricing page.
type AnalyticsHandler struct {
	recordEventUC *usecases.RecordEventUseCase
	logger        logger.Interface
}

func NewAnalyticsHandler(recordEventUC *usecases.RecordEventUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{
		recordEventUC: recordEventUC,
		logger:        logger.NewLogger(),
	}
}

type recordEventRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Type      string `json:"type" binding:"required"`
	Tier      string `json:"tier"`
	Level     string `json:"level"`
	Metadata  string `json:"metadata"`
}

// RecordEvent handles POST /events. Auth is optional; logged-in visitors get
// their events attributed to their account.
func (h *AnalyticsHandler) RecordEvent(c *gin.Context) {
	var req recordEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	var userID *uint
	if uid := c.GetUint(constants.ContextKeyUserID); uid != 0 {
		userID = &uid
	}

	err := h.recordEventUC.Execute(c.Request.Context(), usecases.RecordEventCommand{
		SessionID: req.SessionID,
		UserID:    userID,
		Type:      req.Type,
		Tier:      req.Tier,
		Level:     req.Level,
		Metadata:  req.Metadata,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusAccepted, "event recorded", nil)
}
