package main // Entry point package

import (
	"context"
	"log" // Logging library
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"    // Optional .env loading for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/autolot/dealership-api/internal/config"     // Internal config loader
	"github.com/autolot/dealership-api/internal/database"   // MySQL connection and schema bootstrap
	"github.com/autolot/dealership-api/internal/handler"    // HTTP handlers
	"github.com/autolot/dealership-api/internal/middleware" // Rate limiting middleware
	"github.com/autolot/dealership-api/internal/queue"      // Sale event consumer
	"github.com/autolot/dealership-api/internal/repository" // Data access layer
	"github.com/autolot/dealership-api/internal/router"     // Route registration
	queuepub "github.com/autolot/dealership-api/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set env vars directly

	cfg := config.Load() // Load environment config

	// The store handle is opened once here and passed to the
	// repositories; nothing else in the program reaches the database.
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(context.Background(), db); err != nil {
		log.Fatalf("database: %v", err)
	}

	api := handler.NewAPI(
		repository.NewVehicleRepo(db),
		repository.NewCustomerRepo(db),
		repository.NewSalespersonRepo(db),
		repository.NewSaleRepo(db),
		repository.NewFinancingRepo(db),
		repository.NewMaintenanceRepo(db),
		repository.NewTestDriveRepo(db),
	)
	api.PublishSale = queuepub.PublishSaleRecorded

	e := echo.New() // Create Echo instance
	e.HideBanner = true

	// Rate limiting is skipped silently when Redis is unreachable.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterAPI(e, api)

	// Background consumer appends recorded sales to logs/sales.log.
	// It reconnects on its own; a dead broker never blocks the API.
	go func() {
		if err := queue.StartSaleConsumer(); err != nil {
			log.Printf("sale consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal(err) // Log and exit if server fails
		}
	}()

	// Shut down cleanly on SIGINT/SIGTERM so the store handle is
	// released with the process.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
