// Package main is the entry point for the traso API server: the tea-shop
// back office for stock, profit allocation and fund spending.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"traso/internal/domain/auth"
	"traso/internal/domain/catalogs/fundaccount"
	"traso/internal/domain/catalogs/item"
	"traso/internal/domain/finance/allocation"
	"traso/internal/domain/finance/expenditure"
	"traso/internal/domain/finance/expense"
	"traso/internal/domain/finance/revenue"
	"traso/internal/domain/ledger"
	v1 "traso/internal/infrastructure/http/v1"
	"traso/internal/infrastructure/storage/postgres"
	"traso/internal/infrastructure/storage/postgres/auth_repo"
	"traso/internal/infrastructure/storage/postgres/catalog_repo"
	"traso/internal/infrastructure/storage/postgres/finance_repo"
	"traso/internal/infrastructure/storage/postgres/ledger_repo"
	"traso/pkg/logger"
)

var version = "dev"

func main() {
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting traso server")

	// --- Database ---
	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(mustEnv("DATABASE_URL")))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	txManager := postgres.NewTxManager(pool)

	// --- Repositories ---
	itemRepo := catalog_repo.NewItemRepo(txManager)
	fundAccountRepo := catalog_repo.NewFundAccountRepo(txManager)
	stockEntryRepo := ledger_repo.NewStockEntryRepo(txManager)
	revenueRepo := finance_repo.NewRevenueRepo(txManager)
	expenseRepo := finance_repo.NewExpenseRepo(txManager)
	expenditureRepo := finance_repo.NewExpenditureRepo(txManager)
	figuresRepo := finance_repo.NewFiguresRepo(txManager)
	userRepo := auth_repo.NewUserRepo(txManager)

	// --- Audit ---
	auditStore, err := postgres.NewAuditStore(txManager)
	if err != nil {
		log.Fatalw("failed to initialize audit store", "error", err)
	}

	// --- Auth ---
	jwtService := auth.NewJWTService(auth.DefaultJWTConfig(mustEnv("JWT_SECRET")))
	authService := auth.NewService(userRepo, txManager, jwtService, auth.DefaultServiceConfig())

	// --- Domain services ---
	itemService := item.NewService(itemRepo, txManager)
	fundAccountService := fundaccount.NewService(fundAccountRepo, txManager)
	ledgerService := ledger.NewService(stockEntryRepo, itemRepo, txManager, auditStore)
	revenueService := revenue.NewService(revenueRepo, txManager)
	expenseService := expense.NewService(expenseRepo, txManager)
	expenditureService := expenditure.NewService(expenditureRepo, txManager)
	allocationService := allocation.NewService(figuresRepo, fundAccountRepo)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:    pool,
		Logger:  log,
		Version: version,

		AuthService: authService,
		JWTService:  jwtService,

		ItemService:        itemService,
		FundAccountService: fundAccountService,
		LedgerService:      ledgerService,

		RevenueService:     revenueService,
		ExpenseService:     expenseService,
		ExpenditureService: expenditureService,
		AllocationService:  allocationService,
	})

	// --- HTTP server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", port, "version", version)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}
