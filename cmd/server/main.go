package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lifeline-blood/internal/adapters/http/middleware"
	"lifeline-blood/internal/adapters/http/routes"
	"lifeline-blood/internal/adapters/persistence/models"
	"lifeline-blood/internal/adapters/persistence/repositories"
	"lifeline-blood/internal/config"
	"lifeline-blood/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	_ "lifeline-blood/docs" // Swagger docs
)

// @title Lifeline Blood API
// @version 1.0
// @description Blood donation camp and donor registration API

// @contact.name API Support

// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Open the store
	repos, db := openStore(cfg)
	defer func() {
		if err := config.CloseDatabase(db); err != nil {
			log.Printf("❌ Error closing database: %v", err)
		}
	}()

	svc := services.New(repos, cfg)

	// Make sure the canonical admin exists
	bootCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if _, err := svc.Admin.Bootstrap(bootCtx); err != nil {
		cancel()
		log.Fatalf("❌ Failed to bootstrap admin: %v", err)
	}
	cancel()

	// Orphan donor reconciliation
	if err := svc.Reconcile.Start(); err != nil {
		log.Fatalf("❌ Invalid RECONCILE_SCHEDULE %q: %v", cfg.ReconcileSchedule, err)
	}
	defer svc.Reconcile.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Lifeline Blood API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, svc, cfg, repos.Ping)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("❌ Failed to start server: %v", err)
	}
}

// openStore connects to the configured SQL database, or falls back to
// process memory when DB_DRIVER=memory. db is nil in the memory case.
func openStore(cfg *config.Config) (*repositories.Repositories, *gorm.DB) {
	if cfg.Database.Driver == "memory" {
		log.Println("⚠️ Using in-memory store, data is lost on restart")
		return repositories.NewMemoryRepositories(), nil
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	return repositories.NewGormRepositories(db), db
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
