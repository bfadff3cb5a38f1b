package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"atelier/internal/application/analytics/usecases"
	"atelier/internal/shared/logger"
	"atelier/internal/shared/utils"
)

type DashboardHandler struct {
	getDashboardUC *usecases.GetDashboardUseCase
	logger         logger.Interface
}

func NewDashboardHandler(getDashboardUC *usecases.GetDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{
		getDashboardUC: getDashboardUC,
		logger:         logger.NewLogger(),
	}
}

// GetDashboard handles GET /admin/analytics/dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	days := 0
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "days must be a positive integer")
			return
		}
		days = parsed
	}

	result, err := h.getDashboardUC.Execute(c.Request.Context(), usecases.GetDashboardQuery{
		Days: days,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}
