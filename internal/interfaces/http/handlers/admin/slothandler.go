package admin

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"atelier/internal/application/booking/usecases"
	"atelier/internal/domain/booking"
	"atelier/internal/shared/constants"
	"atelier/internal/shared/logger"
	"atelier/internal/shared/utils"
)

type SlotHandler struct {
	manageSlotsUC *usecases.ManageSlotsUseCase
	logger        logger.Interface
}

func NewSlotHandler(manageSlotsUC *usecases.ManageSlotsUseCase) *SlotHandler {
	return &SlotHandler{
		manageSlotsUC: manageSlotsUC,
		logger:        logger.NewLogger(),
	}
}

type slotResponse struct {
	ID          uint      `json:"id"`
	Weekday     int       `json:"weekday"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	MaxBookings int       `json:"max_bookings"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

func toSlotResponse(s *booking.TimeSlot) slotResponse {
	return slotResponse{
		ID:          s.ID(),
		Weekday:     int(s.Weekday()),
		StartTime:   s.StartTime(),
		EndTime:     s.EndTime(),
		MaxBookings: s.MaxBookings(),
		Active:      s.IsActive(),
		CreatedAt:   s.CreatedAt(),
	}
}

type createSlotRequest struct {
	Weekday     int    `json:"weekday" binding:"min=0,max=6"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	MaxBookings int    `json:"max_bookings" binding:"required,min=1"`
}

// CreateSlot handles POST /admin/slots
func (h *SlotHandler) CreateSlot(c *gin.Context) {
	var req createSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create slot", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	slot, err := h.manageSlotsUC.Create(c.Request.Context(), usecases.CreateSlotCommand{
		AdminID:     c.GetUint(constants.ContextKeyUserID),
		Weekday:     req.Weekday,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		MaxBookings: req.MaxBookings,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, toSlotResponse(slot), "slot created")
}

type updateSlotRequest struct {
	MaxBookings int   `json:"max_bookings"`
	Active      *bool `json:"active"`
}

// UpdateSlot handles PATCH /admin/slots/:id
func (h *SlotHandler) UpdateSlot(c *gin.Context) {
	slotID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || slotID == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid slot id")
		return
	}

	var req updateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	slot, err := h.manageSlotsUC.Update(c.Request.Context(), usecases.UpdateSlotCommand{
		AdminID:     c.GetUint(constants.ContextKeyUserID),
		SlotID:      uint(slotID),
		MaxBookings: req.MaxBookings,
		Active:      req.Active,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, toSlotResponse(slot))
}

// ListSlots handles GET /admin/slots
func (h *SlotHandler) ListSlots(c *gin.Context) {
	slots, err := h.manageSlotsUC.ListAll(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	out := make([]slotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, toSlotResponse(s))
	}
	utils.OKResponse(c, gin.H{"slots": out})
}
