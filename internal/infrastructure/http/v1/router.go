// Package v1 provides HTTP API version 1 routing.
package v1

import (
	"github.com/gin-gonic/gin"

	"traso/internal/domain/auth"
	"traso/internal/domain/catalogs/fundaccount"
	"traso/internal/domain/catalogs/item"
	"traso/internal/domain/finance/allocation"
	"traso/internal/domain/finance/expenditure"
	"traso/internal/domain/finance/expense"
	"traso/internal/domain/finance/revenue"
	"traso/internal/domain/ledger"
	"traso/internal/infrastructure/http/v1/handlers"
	"traso/internal/infrastructure/http/v1/middleware"
	"traso/internal/infrastructure/storage/postgres"
	"traso/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	Pool    *postgres.Pool
	Logger  *logger.Logger
	Version string

	AuthService *auth.Service
	JWTService  *auth.JWTService

	ItemService        *item.Service
	FundAccountService *fundaccount.Service
	LedgerService      *ledger.Service

	RevenueService     *revenue.Service
	ExpenseService     *expense.Service
	ExpenditureService *expenditure.Service
	AllocationService  *allocation.Service
}

// NewRouter creates the HTTP router with all routes configured.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()

	// Recovery is innermost so ErrorHandler still runs its post-processing
	// and turns the recovered panic into an error response.
	router.Use(
		middleware.Trace(),
		injectLogger(cfg.Logger),
		middleware.Logger(cfg.Logger),
		middleware.ErrorHandler(),
		middleware.Recovery(),
	)

	healthHandler := handlers.NewHealthHandler(cfg.Pool, cfg.Version)
	healthHandler.RegisterRoutes(router.Group("/health"))

	authHandler := handlers.NewAuthHandler(cfg.AuthService)
	itemHandler := handlers.NewItemHandler(cfg.ItemService)
	fundAccountHandler := handlers.NewFundAccountHandler(cfg.FundAccountService)
	stockEntryHandler := handlers.NewStockEntryHandler(cfg.LedgerService)
	revenueHandler := handlers.NewRevenueHandler(cfg.RevenueService)
	expenseHandler := handlers.NewExpenseHandler(cfg.ExpenseService)
	expenditureHandler := handlers.NewExpenditureHandler(cfg.ExpenditureService)
	allocationHandler := handlers.NewAllocationHandler(cfg.AllocationService)

	api := router.Group("/api/v1")

	authHandler.RegisterPublicRoutes(api.Group("/auth"))

	protected := api.Group("", middleware.Auth(cfg.JWTService))

	authHandler.RegisterProtectedRoutes(protected.Group("/auth"))

	items := protected.Group("/items")
	itemHandler.RegisterRoutes(items)
	items.GET("/:id/price-history", stockEntryHandler.PriceHistory)

	fundAccountHandler.RegisterRoutes(protected.Group("/fund-accounts"))
	stockEntryHandler.RegisterRoutes(protected.Group("/ledger/entries"))
	revenueHandler.RegisterRoutes(protected.Group("/revenues"))
	expenseHandler.RegisterRoutes(protected.Group("/expenses"))
	expenditureHandler.RegisterRoutes(protected.Group("/expenditures"))

	reports := protected.Group("/reports")
	allocationHandler.RegisterRoutes(reports)
	reports.GET("/expenditures", expenditureHandler.Report)

	return router
}

// injectLogger makes the configured logger reachable through the request
// context for the package-level logging helpers.
func injectLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := logger.WithLogger(c.Request.Context(), log)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
