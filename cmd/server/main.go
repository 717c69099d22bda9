// Package main is the entry point for the orcado API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orcado/internal/domain/auth"
	"orcado/internal/domain/budget"
	"orcado/internal/domain/catalogs/canvascolor"
	"orcado/internal/domain/catalogs/client"
	"orcado/internal/domain/catalogs/priceitem"
	"orcado/internal/domain/catalogs/seller"
	"orcado/internal/domain/commission"
	"orcado/internal/domain/statistics"
	v1 "orcado/internal/infrastructure/http/v1"
	"orcado/internal/infrastructure/storage/postgres"
	"orcado/internal/infrastructure/storage/postgres/auth_repo"
	"orcado/internal/infrastructure/storage/postgres/catalog_repo"
	"orcado/internal/infrastructure/storage/postgres/commission_repo"
	"orcado/internal/infrastructure/storage/postgres/document_repo"
	"orcado/internal/infrastructure/storage/postgres/report_repo"
	"orcado/pkg/logger"
	"orcado/pkg/numerator"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting orcado server")

	// --- Database ---
	poolCfg := postgres.DefaultPoolConfig(mustEnv("DATABASE_URL"))
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	txManager := postgres.NewTxManager(pool)

	// --- Number series generator ---
	numeratorService := numerator.New(pool)

	// --- Repositories ---
	clientRepo := catalog_repo.NewClientRepo(txManager)
	sellerRepo := catalog_repo.NewSellerRepo(txManager)
	priceItemRepo := catalog_repo.NewPriceItemRepo(txManager)
	canvasColorRepo := catalog_repo.NewCanvasColorRepo(txManager)
	budgetRepo := document_repo.NewBudgetRepo(txManager)
	commissionRepo := commission_repo.NewCommissionRepo(txManager)
	statisticsRepo := report_repo.NewStatisticsRepo(txManager)
	userRepo := auth_repo.NewUserRepo(txManager)
	tokenRepo := auth_repo.NewTokenRepo(txManager)

	historyStore, err := postgres.NewBudgetHistoryStore(txManager)
	if err != nil {
		log.Fatalw("failed to initialize history store", "error", err)
	}

	// --- Services ---
	clientService := client.NewService(clientRepo, numeratorService, txManager)
	sellerService := seller.NewService(sellerRepo, numeratorService, txManager)
	priceItemService := priceitem.NewService(priceItemRepo, numeratorService, txManager)
	canvasColorService := canvascolor.NewService(canvasColorRepo, numeratorService, txManager)

	budgetService := budget.NewService(budget.ServiceConfig{
		Repo:      budgetRepo,
		History:   historyStore,
		Catalog:   priceItemService,
		Clients:   clientService,
		Sellers:   sellerService,
		Numerator: numeratorService,
		TxManager: txManager,
	})

	commissionService := commission.NewService(commissionRepo, sellerService, txManager)

	// Commission recording runs inside the approval transaction: a failed
	// commission insert rolls the approval back.
	budgetService.OnApproved(commissionService.RecordApproval)

	statisticsService := statistics.NewService(statisticsRepo)

	// --- Auth ---
	jwtSecret := mustEnv("JWT_SECRET")
	jwtService := auth.NewJWTService(auth.DefaultJWTConfig(jwtSecret))
	authService := auth.NewService(userRepo, tokenRepo, txManager, jwtService, auth.DefaultServiceConfig())

	// --- Idempotency ---
	idempotencyTTL := getEnvDuration("IDEMPOTENCY_TTL", 24*time.Hour)
	idempotencyStore := postgres.NewIdempotencyStore(txManager, idempotencyTTL)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:               pool,
		Logger:             log,
		JWTValidator:       jwtService,
		IdempotencyStore:   idempotencyStore,
		AuthService:        authService,
		ClientService:      clientService,
		SellerService:      sellerService,
		PriceItemService:   priceItemService,
		CanvasColorService: canvasColorService,
		BudgetService:      budgetService,
		CommissionService:  commissionService,
		StatisticsService:  statisticsService,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", port)
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

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
