package routes

import (
	"github.com/gin-gonic/gin"

	"atelier/internal/infrastructure/permission"
	adminHandlers "atelier/internal/interfaces/http/handlers/admin"
	"atelier/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for admin-only routes.
type AdminRouteConfig struct {
	AdminQuoteHandler     *adminHandlers.QuoteHandler
	AdminDiscountHandler  *adminHandlers.DiscountHandler
	AdminSlotHandler      *adminHandlers.SlotHandler
	AdminDashboardHandler *adminHandlers.DashboardHandler
	AdminAccountHandler   *adminHandlers.AccountHandler
	AuthMiddleware        *middleware.AuthMiddleware
	PermissionMiddleware  *middleware.PermissionMiddleware
}

// SetupAdminRoutes configures admin-only routes. Every group is gated by a
// casbin policy check on top of authentication.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	adminQuotes := engine.Group("/admin/quotes")
	adminQuotes.Use(cfg.AuthMiddleware.RequireAuth())
	{
		adminQuotes.GET("",
			cfg.PermissionMiddleware.RequirePermission(permission.ResourceQuotes, permission.ActionRead),
			cfg.AdminQuoteHandler.ListQuotes)
		adminQuotes.GET("/:id",
			cfg.PermissionMiddleware.RequirePermission(permission.ResourceQuotes, permission.ActionRead),
			cfg.AdminQuoteHandler.GetQuote)
		adminQuotes.GET("/:id/versions",
			cfg.PermissionMiddleware.RequirePermission(permission.ResourceQuotes, permission.ActionRead),
			cfg.AdminQuoteHandler.GetVersions)
		adminQuotes.POST("/:id/review",
			cfg.PermissionMiddleware.RequirePermission(permission.ResourceQuotes, permission.ActionReview),
			cfg.AdminQuoteHandler.StartReview)
		adminQuotes.POST("/:id/decision",
			cfg.PermissionMiddleware.RequirePermission(permission.ResourceQuotes, permission.ActionReview),
			cfg.AdminQuoteHandler.DecideQuote)
		adminQuotes.PUT("/:id/notes",
			cfg.PermissionMiddleware.RequirePermission(permission.ResourceQuotes, permission.ActionReview),
			cfg.AdminQuoteHandler.UpdateNotes)
	}

	adminDiscounts := engine.Group("/admin/discounts")
	adminDiscounts.Use(
		cfg.AuthMiddleware.RequireAuth(),
		cfg.PermissionMiddleware.RequirePermission(permission.ResourceDiscounts, permission.ActionManage),
	)
	{
		adminDiscounts.POST("", cfg.AdminDiscountHandler.CreateDiscount)
		adminDiscounts.GET("", cfg.AdminDiscountHandler.ListDiscounts)
		adminDiscounts.PATCH("/:id", cfg.AdminDiscountHandler.ToggleDiscount)
	}

	adminSlots := engine.Group("/admin/slots")
	adminSlots.Use(
		cfg.AuthMiddleware.RequireAuth(),
		cfg.PermissionMiddleware.RequirePermission(permission.ResourceSlots, permission.ActionManage),
	)
	{
		adminSlots.POST("", cfg.AdminSlotHandler.CreateSlot)
		adminSlots.GET("", cfg.AdminSlotHandler.ListSlots)
		adminSlots.PATCH("/:id", cfg.AdminSlotHandler.UpdateSlot)
	}

	adminAnalytics := engine.Group("/admin/analytics")
	adminAnalytics.Use(
		cfg.AuthMiddleware.RequireAuth(),
		cfg.PermissionMiddleware.RequirePermission(permission.ResourceAnalytics, permission.ActionRead),
	)
	{
		adminAnalytics.GET("/dashboard", cfg.AdminDashboardHandler.GetDashboard)
	}

	adminAccounts := engine.Group("/admin/accounts")
	adminAccounts.Use(
		cfg.AuthMiddleware.RequireAuth(),
		cfg.PermissionMiddleware.RequirePermission(permission.ResourceAccounts, permission.ActionManage),
	)
	{
		adminAccounts.PUT("/:id/role", cfg.AdminAccountHandler.ChangeRole)
	}
}
