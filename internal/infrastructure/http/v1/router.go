// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ricemill/internal/domain/auth"
	"ricemill/internal/domain/dashboard"
	"ricemill/internal/domain/expense"
	"ricemill/internal/domain/production"
	"ricemill/internal/domain/purchase"
	"ricemill/internal/domain/sale"
	"ricemill/internal/infrastructure/http/v1/handlers"
	"ricemill/internal/infrastructure/http/v1/middleware"
	"ricemill/pkg/logger"
)

// RouterConfig wires the services into the router.
type RouterConfig struct {
	Pool   *pgxpool.Pool
	Logger *logger.Logger

	AuthService       *auth.Service
	PurchaseService   *purchase.Service
	ProductionService *production.Service
	SaleService       *sale.Service
	ExpenseService    *expense.Service
	DashboardService  *dashboard.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware, outermost first.
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.Metrics())
	router.Use(middleware.ErrorHandler())

	// Probes and metrics need neither auth nor the API prefix.
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	baseHandler := handlers.NewBaseHandler()
	authHandler := handlers.NewAuthHandler(baseHandler, cfg.AuthService)

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/auth/login", authHandler.Login)

		protected := apiV1.Group("")
		protected.Use(middleware.Auth(cfg.AuthService))

		protected.POST("/auth/logout", authHandler.Logout)
		protected.GET("/auth/me", authHandler.Me)

		registerRecordRoutes(protected, "/purchases",
			handlers.NewPurchaseHandler(baseHandler, cfg.PurchaseService))
		registerRecordRoutes(protected, "/production",
			handlers.NewProductionHandler(baseHandler, cfg.ProductionService))
		registerRecordRoutes(protected, "/expenses",
			handlers.NewExpenseHandler(baseHandler, cfg.ExpenseService))

		saleHandler := handlers.NewSaleHandler(baseHandler, cfg.SaleService)
		sales := protected.Group("/sales")
		{
			sales.GET("", saleHandler.List)
			sales.POST("", saleHandler.Create)
			sales.GET("/:id", saleHandler.Get)
			sales.PUT("/:id", saleHandler.Update)
			sales.DELETE("/:id", saleHandler.Delete)
		}

		dashboardHandler := handlers.NewDashboardHandler(baseHandler, cfg.DashboardService)
		protected.GET("/dashboard/summary", dashboardHandler.Summary)

		exportHandler := handlers.NewExportHandler(
			baseHandler,
			cfg.PurchaseService,
			cfg.ProductionService,
			cfg.SaleService,
			cfg.ExpenseService,
		)
		exports := protected.Group("/exports")
		{
			exports.GET("/purchases.csv", exportHandler.Purchases)
			exports.GET("/production.csv", exportHandler.Production)
			exports.GET("/sales.csv", exportHandler.Sales)
			exports.GET("/expenses.csv", exportHandler.Expenses)
		}
	}

	return router
}

// crudHandler is the route surface shared by the record handlers.
type crudHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func registerRecordRoutes(rg *gin.RouterGroup, path string, h crudHandler) {
	group := rg.Group(path)
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		group.GET("/:id", h.Get)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}
