package routes

import (
	"github.com/gin-gonic/gin"

	"atelier/internal/interfaces/http/handlers"
	"atelier/internal/interfaces/http/middleware"
)

// QuoteRouteConfig holds dependencies for customer quote routes.
type QuoteRouteConfig struct {
	QuoteHandler    *handlers.QuoteHandler
	DiscountHandler *handlers.DiscountHandler
	AuthMiddleware  *middleware.AuthMiddleware
	RateLimit       gin.HandlerFunc // may be nil
}

// SetupQuoteRoutes configures quote management and discount validation for
// logged-in customers.
func SetupQuoteRoutes(engine *gin.Engine, cfg *QuoteRouteConfig) {
	// submission and discount validation additionally carry the rate limit
	limited := func(h gin.HandlerFunc) []gin.HandlerFunc {
		if cfg.RateLimit == nil {
			return []gin.HandlerFunc{h}
		}
		return []gin.HandlerFunc{cfg.RateLimit, h}
	}

	quotes := engine.Group("/quotes")
	quotes.Use(cfg.AuthMiddleware.RequireAuth())
	{
		quotes.POST("", cfg.QuoteHandler.CreateQuote)
		quotes.GET("", cfg.QuoteHandler.ListQuotes)
		quotes.GET("/:id", cfg.QuoteHandler.GetQuote)
		quotes.PUT("/:id", cfg.QuoteHandler.UpdateQuote)
		quotes.POST("/:id/submit", limited(cfg.QuoteHandler.SubmitQuote)...)
		quotes.POST("/:id/discount", cfg.DiscountHandler.ApplyDiscount)
	}

	discounts := engine.Group("/discounts")
	discounts.Use(cfg.AuthMiddleware.RequireAuth())
	{
		discounts.POST("/validate", limited(cfg.DiscountHandler.ValidateDiscount)...)
	}
}
