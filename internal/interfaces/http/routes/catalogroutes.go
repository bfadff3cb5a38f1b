// Package routes provides HTTP route configurations.
package routes

import (
	"github.com/gin-gonic/gin"

	"atelier/internal/interfaces/http/handlers"
	"atelier/internal/interfaces/http/middleware"
)

// CatalogRouteConfig holds dependencies for the public pricing surface.
type CatalogRouteConfig struct {
	CatalogHandler   *handlers.CatalogHandler
	BookingHandler   *handlers.BookingHandler
	AnalyticsHandler *handlers.AnalyticsHandler
	AuthMiddleware   *middleware.AuthMiddleware
	RateLimit        gin.HandlerFunc // may be nil
}

// SetupCatalogRoutes configures the unauthenticated catalog, price preview
// and journey event routes.
func SetupCatalogRoutes(engine *gin.Engine, cfg *CatalogRouteConfig) {
	public := engine.Group("")
	if cfg.RateLimit != nil {
		public.Use(cfg.RateLimit)
	}
	{
		// static paths before the :tier parameter
		public.GET("/catalog", cfg.CatalogHandler.GetCatalog)
		public.GET("/catalog/services", cfg.CatalogHandler.ListServices)
		public.GET("/catalog/categories", cfg.CatalogHandler.GetCategories)
		public.GET("/catalog/:tier", cfg.CatalogHandler.GetTier)
		public.GET("/catalog/:tier/comparison", cfg.CatalogHandler.GetComparison)
		public.POST("/pricing/preview", cfg.CatalogHandler.PreviewPrice)
		public.GET("/bookings/availability", cfg.BookingHandler.GetAvailability)
		public.POST("/events", cfg.AuthMiddleware.OptionalAuth(), cfg.AnalyticsHandler.RecordEvent)
	}
}
