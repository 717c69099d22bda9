package v1

import (
	"github.com/gin-gonic/gin"

	"orcado/internal/domain/auth"
	"orcado/internal/domain/budget"
	"orcado/internal/domain/catalogs/canvascolor"
	"orcado/internal/domain/catalogs/client"
	"orcado/internal/domain/catalogs/priceitem"
	"orcado/internal/domain/catalogs/seller"
	"orcado/internal/domain/commission"
	"orcado/internal/domain/statistics"
	"orcado/internal/infrastructure/http/v1/handlers"
	"orcado/internal/infrastructure/http/v1/middleware"
	"orcado/internal/infrastructure/storage/postgres"
	"orcado/pkg/logger"
)

// RouterConfig holds everything the router needs. Services are built once
// in main and injected here; repositories never surface at this layer.
type RouterConfig struct {
	Pool   *postgres.Pool
	Logger *logger.Logger

	JWTValidator middleware.JWTValidator

	// IdempotencyStore enables idempotent budget creation when set.
	IdempotencyStore *postgres.IdempotencyStore

	AuthService        *auth.Service
	ClientService      *client.Service
	SellerService      *seller.Service
	PriceItemService   *priceitem.Service
	CanvasColorService *canvascolor.Service
	BudgetService      *budget.Service
	CommissionService  *commission.Service
	StatisticsService  *statistics.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	base := handlers.NewBaseHandler()

	// Health endpoints, no auth required
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("", healthHandler.Live)
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	api := router.Group("/api/v1")

	authHandler := handlers.NewAuthHandler(base, cfg.AuthService)

	// Public auth endpoints
	public := api.Group("/auth")
	{
		public.POST("/register", authHandler.Register)
		public.POST("/login", authHandler.Login)
		public.POST("/refresh", authHandler.Refresh)
	}

	// Everything else requires a valid bearer token
	protected := api.Group("")
	protected.Use(middleware.Auth(cfg.JWTValidator))

	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.GET("/me", authHandler.Me)
		protectedAuth.POST("/logout", authHandler.Logout)
		protectedAuth.POST("/change-password", authHandler.ChangePassword)

		adminAuth := protectedAuth.Group("/users")
		adminAuth.Use(middleware.RequireAdmin())
		adminAuth.GET("", authHandler.ListUsers)
		adminAuth.PATCH("/:id/role", authHandler.SetRole)
	}

	// Catalogs
	clientHandler := handlers.NewClientHandler(base, cfg.ClientService)
	RegisterCatalogRoutes(protected.Group("/clients"), clientHandler)

	sellerHandler := handlers.NewSellerHandler(base, cfg.SellerService)
	RegisterCatalogRoutes(protected.Group("/sellers"), sellerHandler)

	// Price table mutations are admin-only
	priceTableHandler := handlers.NewPriceTableHandler(base, cfg.PriceItemService)
	priceTable := protected.Group("/price-table")
	priceTable.GET("/categories", priceTableHandler.Categories)
	RegisterCatalogRoutes(priceTable, priceTableHandler, middleware.RequireAdmin())

	canvasColorHandler := handlers.NewCanvasColorHandler(base, cfg.CanvasColorService)
	RegisterCatalogRoutes(protected.Group("/canvas-colors"), canvasColorHandler)

	// Budgets
	budgetHandler := handlers.NewBudgetHandler(base, cfg.BudgetService)
	protected.GET("/budget-types", budgetHandler.Types)

	budgets := protected.Group("/budgets")
	{
		budgets.GET("", budgetHandler.List)
		if cfg.IdempotencyStore != nil {
			budgets.POST("", middleware.Idempotency(cfg.IdempotencyStore), budgetHandler.Create)
		} else {
			budgets.POST("", budgetHandler.Create)
		}
		budgets.GET("/:id", budgetHandler.Get)
		budgets.PUT("/:id", budgetHandler.Update)
		budgets.DELETE("/:id", budgetHandler.Delete)
		budgets.POST("/:id/duplicate", budgetHandler.Duplicate)
		budgets.PATCH("/:id/status", budgetHandler.ChangeStatus)
		budgets.GET("/:id/history", budgetHandler.History)
	}

	// Commissions
	commissionHandler := handlers.NewCommissionHandler(base, cfg.CommissionService)
	commissions := protected.Group("/commissions")
	{
		commissions.GET("", commissionHandler.List)
		commissions.GET("/summary", commissionHandler.Summary)
		commissions.PATCH("/:id/status", commissionHandler.ChangeStatus)
	}

	// Statistics
	statisticsHandler := handlers.NewStatisticsHandler(base, cfg.StatisticsService)
	protected.GET("/statistics/budgets", statisticsHandler.Budgets)

	return router
}
