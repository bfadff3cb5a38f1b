// Package http wires the HTTP layer: repositories, use cases, handlers,
// middleware and routes.
package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	accountUC "atelier/internal/application/account/usecases"
	analyticsUC "atelier/internal/application/analytics/usecases"
	bookingUC "atelier/internal/application/booking/usecases"
	catalogUC "atelier/internal/application/catalog/usecases"
	discountUC "atelier/internal/application/discount/usecases"
	quoteUC "atelier/internal/application/quote/usecases"
	"atelier/internal/infrastructure/auth"
	"atelier/internal/infrastructure/config"
	"atelier/internal/infrastructure/email"
	"atelier/internal/infrastructure/permission"
	"atelier/internal/infrastructure/ratelimit"
	"atelier/internal/infrastructure/repository"
	"atelier/internal/interfaces/http/handlers"
	adminHandlers "atelier/internal/interfaces/http/handlers/admin"
	"atelier/internal/interfaces/http/middleware"
	"atelier/internal/interfaces/http/routes"
	"atelier/internal/shared/db"
	"atelier/internal/shared/logger"
	"atelier/internal/shared/services/markdown"
)

// Router owns the gin engine and the wired route configs.
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	logger logger.Interface

	catalogRoutes *routes.CatalogRouteConfig
	authRoutes    *routes.AuthRouteConfig
	quoteRoutes   *routes.QuoteRouteConfig
	bookingRoutes *routes.BookingRouteConfig
	adminRoutes   *routes.AdminRouteConfig
}

// NewRouter builds the full dependency graph for the HTTP server.
func NewRouter(database *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	registerValidations()

	engine := gin.New()

	// repositories
	userRepo := repository.NewUserRepository(database, log)
	quoteRepo := repository.NewQuoteRepository(database, log)
	versionRepo := repository.NewQuoteVersionRepository(database, log)
	discountRepo := repository.NewDiscountRepository(database, log)
	appliedRepo := repository.NewAppliedDiscountRepository(database, log)
	slotRepo := repository.NewTimeSlotRepository(database, log)
	bookingRepo := repository.NewBookingRepository(database, log)
	auditRepo := repository.NewAuditLogRepository(database, log)
	eventRepo := repository.NewJourneyEventRepository(database, log)

	txManager := db.NewTransactionManager(database)

	// services
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	var notifier quoteUC.QuoteNotifier
	if cfg.Email.Enabled {
		notifier = email.NewSMTPQuoteNotifier(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUser,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
			ReviewDesk:  cfg.Email.ReviewDesk,
			BaseURL:     cfg.Server.BaseURL,
		})
	} else {
		notifier = email.NewNoopQuoteNotifier(log)
	}

	notesRenderer := markdown.NewRenderer()

	enforcer, err := permission.NewEnforcer(database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := enforcer.SeedDefaultPolicies(); err != nil {
		return nil, fmt.Errorf("failed to seed permission policies: %w", err)
	}

	// use cases
	getCatalogUC := catalogUC.NewGetCatalogUseCase(log)
	getTierUC := catalogUC.NewGetTierUseCase(log)
	getComparisonUC := catalogUC.NewGetComparisonUseCase(log)
	listServicesUC := catalogUC.NewListServicesUseCase(log)
	getCategoriesUC := catalogUC.NewGetCategoriesUseCase(log)
	previewPriceUC := catalogUC.NewPreviewPriceUseCase(log)

	createQuoteUC := quoteUC.NewCreateQuoteUseCase(quoteRepo, versionRepo, txManager, log)
	updateQuoteUC := quoteUC.NewUpdateQuoteUseCase(quoteRepo, versionRepo, appliedRepo, txManager, log)
	getQuoteUC := quoteUC.NewGetQuoteUseCase(quoteRepo, log)
	listQuotesUC := quoteUC.NewListQuotesUseCase(quoteRepo, log)
	submitQuoteUC := quoteUC.NewSubmitQuoteUseCase(quoteRepo, notifier, log)
	reviewQuoteUC := quoteUC.NewReviewQuoteUseCase(quoteRepo, auditRepo, notifier, txManager, log)
	updateNotesUC := quoteUC.NewUpdateAdminNotesUseCase(quoteRepo, auditRepo, notesRenderer, txManager, log)
	getVersionsUC := quoteUC.NewGetQuoteVersionsUseCase(quoteRepo, versionRepo, log)

	validateDiscountUC := discountUC.NewValidateDiscountUseCase(discountRepo, appliedRepo, log)
	applyDiscountUC := discountUC.NewApplyDiscountUseCase(quoteRepo, discountRepo, appliedRepo, txManager, log)
	manageDiscountsUC := discountUC.NewManageDiscountsUseCase(discountRepo, auditRepo, txManager, log)

	getAvailabilityUC := bookingUC.NewGetAvailabilityUseCase(slotRepo, bookingRepo, log)
	bookSlotUC := bookingUC.NewBookSlotUseCase(bookingRepo, slotRepo, quoteRepo, txManager, log)
	cancelBookingUC := bookingUC.NewCancelBookingUseCase(bookingRepo, log)
	manageSlotsUC := bookingUC.NewManageSlotsUseCase(slotRepo, auditRepo, txManager, log)

	registerUC := accountUC.NewRegisterUseCase(userRepo, hasher, log)
	loginUC := accountUC.NewLoginUseCase(userRepo, hasher, jwtService, log)
	changeRoleUC := accountUC.NewChangeRoleUseCase(userRepo, auditRepo, txManager, log)

	recordEventUC := analyticsUC.NewRecordEventUseCase(eventRepo, log)
	getDashboardUC := analyticsUC.NewGetDashboardUseCase(eventRepo, quoteRepo, log)

	// middleware
	authMW := middleware.NewAuthMiddleware(jwtService, log)
	permMW := middleware.NewPermissionMiddleware(enforcer, log)

	var rateLimitMW gin.HandlerFunc
	if cfg.RateLimit.Enabled && redisClient != nil {
		limiter := ratelimit.NewRedisLimiter(redisClient, cfg.RateLimit.PerMinute)
		rateLimitMW = middleware.RateLimit(limiter, log)
	}

	bookingHandler := handlers.NewBookingHandler(getAvailabilityUC, bookSlotUC, cancelBookingUC)

	return &Router{
		engine: engine,
		cfg:    cfg,
		logger: log,
		catalogRoutes: &routes.CatalogRouteConfig{
			CatalogHandler: handlers.NewCatalogHandler(
				getCatalogUC, getTierUC, getComparisonUC, listServicesUC, getCategoriesUC, previewPriceUC),
			BookingHandler:   bookingHandler,
			AnalyticsHandler: handlers.NewAnalyticsHandler(recordEventUC),
			AuthMiddleware:   authMW,
			RateLimit:        rateLimitMW,
		},
		authRoutes: &routes.AuthRouteConfig{
			AuthHandler: handlers.NewAuthHandler(registerUC, loginUC),
			RateLimit:   rateLimitMW,
		},
		quoteRoutes: &routes.QuoteRouteConfig{
			QuoteHandler:    handlers.NewQuoteHandler(createQuoteUC, updateQuoteUC, getQuoteUC, listQuotesUC, submitQuoteUC),
			DiscountHandler: handlers.NewDiscountHandler(validateDiscountUC, applyDiscountUC),
			AuthMiddleware:  authMW,
			RateLimit:       rateLimitMW,
		},
		bookingRoutes: &routes.BookingRouteConfig{
			BookingHandler: bookingHandler,
			AuthMiddleware: authMW,
		},
		adminRoutes: &routes.AdminRouteConfig{
			AdminQuoteHandler:     adminHandlers.NewQuoteHandler(listQuotesUC, getQuoteUC, reviewQuoteUC, updateNotesUC, getVersionsUC),
			AdminDiscountHandler:  adminHandlers.NewDiscountHandler(manageDiscountsUC),
			AdminSlotHandler:      adminHandlers.NewSlotHandler(manageSlotsUC),
			AdminDashboardHandler: adminHandlers.NewDashboardHandler(getDashboardUC),
			AdminAccountHandler:   adminHandlers.NewAccountHandler(changeRoleUC),
			AuthMiddleware:        authMW,
			PermissionMiddleware:  permMW,
		},
	}, nil
}

// SetupRoutes applies global middleware and registers every route group.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.RequestLogger(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupCatalogRoutes(r.engine, r.catalogRoutes)
	routes.SetupAuthRoutes(r.engine, r.authRoutes)
	routes.SetupQuoteRoutes(r.engine, r.quoteRoutes)
	routes.SetupBookingRoutes(r.engine, r.bookingRoutes)
	routes.SetupAdminRoutes(r.engine, r.adminRoutes)
}

// GetEngine exposes the underlying gin engine for the HTTP server.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
