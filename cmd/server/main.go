package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/nikhilbhatia/upahaar/internal"
	"github.com/nikhilbhatia/upahaar/internal/handler/api"
	"github.com/nikhilbhatia/upahaar/internal/middleware"
	"github.com/nikhilbhatia/upahaar/internal/repository"
	"github.com/nikhilbhatia/upahaar/internal/router"
	"github.com/nikhilbhatia/upahaar/internal/routes"
	"github.com/nikhilbhatia/upahaar/internal/service"
	"github.com/nikhilbhatia/upahaar/internal/tax"
	"github.com/nikhilbhatia/upahaar/internal/telemetry"
)

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize database/sql connection for migrations
	logger.Info("Connecting to database...")
	sqlDB, err := sql.Open("pgx", cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer sqlDB.Close()

	// Verify database connection
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	logger.Info("Database connection established")

	// Run migrations
	logger.Info("Running database migrations...")
	if err := internal.RunMigrations(sqlDB); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Initialize pgx connection pool for application
	pool, err := pgxpool.New(ctx, cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}
	defer pool.Close()

	// Initialize repository
	repo := repository.New(pool)

	// Initialize tax calculator and services
	calc := tax.NewCalculator()
	logger.Info("GST calculator initialized", "home_state", calc.HomeState())

	orderService := service.NewOrderService(repo, calc)
	invoiceService := service.NewInvoiceService(repo, calc)

	// Initialize Prometheus metrics
	httpMetrics := middleware.NewMetrics(cfg.MetricsNamespace)
	businessMetrics := telemetry.NewBusinessMetrics(cfg.MetricsNamespace)

	// Build route dependencies
	deps := routes.APIDeps{
		Logger:  logger,
		Metrics: httpMetrics,
		Tax:     api.NewTaxHandler(calc, businessMetrics),
		Orders:  api.NewOrderHandler(orderService, invoiceService, businessMetrics),
		Health:  api.NewHealthHandler(pool),
	}

	// Create router and register routes
	r := router.New(
		router.Recovery(logger),
		router.Logger(logger),
	)
	routes.RegisterAPIRoutes(r, deps)

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Starting server", "address", addr)

	if err := http.ListenAndServe(addr, r); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
