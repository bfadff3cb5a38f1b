package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"atelier/internal/application/booking/usecases"
	"atelier/internal/domain/booking"
	"atelier/internal/shared/authorization"
	"atelier/internal/shared/constants"
	"atelier/internal/shared/id"
	"atelier/internal/shared/logger"
	"atelier/internal/shared/utils"
)

type BookingHandler struct {
	getAvailabilityUC *usecases.GetAvailabilityUseCase
	bookSlotUC        *usecases.BookSlotUseCase
	cancelBookingUC   *usecases.CancelBookingUseCase
	logger            logger.Interface
}

func NewBookingHandler(
	getAvailabilityUC *usecases.GetAvailabilityUseCase,
	bookSlotUC *usecases.BookSlotUseCase,
	cancelBookingUC *usecases.CancelBookingUseCase,
) *BookingHandler {
	return &BookingHandler{
		getAvailabilityUC: getAvailabilityUC,
		bookSlotUC:        bookSlotUC,
		cancelBookingUC:   cancelBookingUC,
		logger:            logger.NewLogger(),
	}
}

// GetAvailability handles GET /bookings/availability
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	days := 0
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "days must be a positive integer")
			return
		}
		days = parsed
	}

	result, err := h.getAvailabilityUC.Execute(c.Request.Context(), usecases.GetAvailabilityQuery{
		Days: days,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, gin.H{"availability": result})
}

type bookSlotRequest struct {
	QuoteID string `json:"quote_id" binding:"required"`
	SlotID  uint   `json:"slot_id" binding:"required"`
	Date    string `json:"date" binding:"required"`
}

type bookingResponse struct {
	ID        string    `json:"id"`
	SlotID    uint      `json:"slot_id"`
	Date      string    `json:"date"`
	Confirmed bool      `json:"confirmed"`
	CreatedAt time.Time `json:"created_at"`
}

func toBookingResponse(b *booking.Booking) bookingResponse {
	return bookingResponse{
		ID:        b.SID(),
		SlotID:    b.SlotID(),
		Date:      b.Date().Format("2006-01-02"),
		Confirmed: b.IsConfirmed(),
		CreatedAt: b.CreatedAt(),
	}
}

// BookSlot handles POST /bookings
func (h *BookingHandler) BookSlot(c *gin.Context) {
	var req bookSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for book slot", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	b, err := h.bookSlotUC.Execute(c.Request.Context(), usecases.BookSlotCommand{
		QuoteSID: req.QuoteID,
		UserID:   c.GetUint(constants.ContextKeyUserID),
		SlotID:   req.SlotID,
		Date:     date,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toBookingResponse(b), "slot booked")
}

// CancelBooking handles DELETE /bookings/:id
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixBooking, "booking")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	role := authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole))
	err = h.cancelBookingUC.Execute(c.Request.Context(), usecases.CancelBookingCommand{
		BookingSID: sid,
		UserID:     c.GetUint(constants.ContextKeyUserID),
		IsAdmin:    role.IsAdmin(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "booking cancelled", nil)
}
