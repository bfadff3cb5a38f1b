package routes

import (
	"github.com/gin-gonic/gin"

	"atelier/internal/interfaces/http/handlers"
	"atelier/internal/interfaces/http/middleware"
)

// BookingRouteConfig holds dependencies for consultation booking routes.
type BookingRouteConfig struct {
	BookingHandler *handlers.BookingHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupBookingRoutes configures slot availability and booking.
func SetupBookingRoutes(engine *gin.Engine, cfg *BookingRouteConfig) {
	// availability is registered on the public routes
	bookings := engine.Group("/bookings")
	bookings.Use(cfg.AuthMiddleware.RequireAuth())
	{
		bookings.POST("", cfg.BookingHandler.BookSlot)
		bookings.DELETE("/:id", cfg.BookingHandler.CancelBooking)
	}
}
