// Package main is the entry point for the rice mill API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ricemill/internal/config"
	"ricemill/internal/domain/auth"
	"ricemill/internal/domain/dashboard"
	"ricemill/internal/domain/expense"
	"ricemill/internal/domain/production"
	"ricemill/internal/domain/purchase"
	"ricemill/internal/domain/sale"
	v1 "ricemill/internal/infrastructure/http/v1"
	"ricemill/internal/infrastructure/storage/postgres"
	"ricemill/internal/infrastructure/storage/postgres/record_repo"
	"ricemill/pkg/logger"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalw("invalid configuration", "error", err)
	}

	ctx := context.Background()
	log.Info("starting ricemill server")

	// --- Database ---
	if cfg.MigrateOnStart {
		if err := postgres.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Fatalw("failed to run migrations", "error", err)
		}
		log.Info("database migrations applied")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(cfg.DatabaseURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	txManager := postgres.NewTxManager(pool)

	// --- Repositories ---
	purchaseRepo := record_repo.NewPurchaseRepo(txManager)
	productionRepo := record_repo.NewProductionRepo(txManager)
	saleRepo := record_repo.NewSaleRepo(txManager)
	expenseRepo := record_repo.NewExpenseRepo(txManager)

	// --- Services ---
	purchaseService := purchase.NewService(purchaseRepo, txManager)
	productionService := production.NewService(productionRepo, txManager)
	saleService := sale.NewService(saleRepo, txManager)
	expenseService := expense.NewService(expenseRepo, txManager)
	dashboardService := dashboard.NewService(purchaseRepo, productionRepo, saleRepo, expenseRepo)

	jwtConfig := auth.DefaultJWTConfig(cfg.JWTSecret)
	jwtConfig.AccessTokenTTL = cfg.JWTTTL
	sessions := auth.NewMemorySessionStore()
	authService := auth.NewService(
		auth.Credentials{Username: cfg.AuthUsername, PasswordHash: cfg.AuthPasswordHash},
		auth.NewJWTService(jwtConfig),
		sessions,
	)
	defer authService.Close()

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:              pool.Pool,
		Logger:            log,
		AuthService:       authService,
		PurchaseService:   purchaseService,
		ProductionService: productionService,
		SaleService:       saleService,
		ExpenseService:    expenseService,
		DashboardService:  dashboardService,
	})

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
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
