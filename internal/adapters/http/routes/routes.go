package routes

import (
	"context"
	"time"

	"lifeline-blood/internal/adapters/http/handlers"
	"lifeline-blood/internal/adapters/http/middleware"
	"lifeline-blood/internal/config"
	"lifeline-blood/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, svc *services.Services, cfg *config.Config, ping func(ctx context.Context) error) {
	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg.AppMode, ping)
	adminHandler := handlers.NewAdminHandler(svc.Admin, svc.Reconcile)
	campHandler := handlers.NewCampHandler(svc.Camp)
	donorHandler := handlers.NewDonorHandler(svc.Donor)
	shareHandler := handlers.NewShareHandler(svc.Share)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")
	api.Get("/", healthHandler.APIInfo)

	auth := middleware.AuthMiddleware(cfg)
	noCache := middleware.NoCacheHeaders()

	// ===== Admin =====
	admin := api.Group("/admin")
	admin.Post("/login", middleware.AuthRateLimiter(), adminHandler.Login)
	admin.Post("/register", middleware.AuthRateLimiter(), auth, adminHandler.Register)
	admin.Post("/reconcile", auth, adminHandler.Reconcile)

	// ===== Camps =====
	// static segments go before /:id
	camps := api.Group("/camps")
	camps.Get("/public", middleware.CacheControl(30*time.Second), campHandler.ListPublic)
	camps.Get("/with-count", auth, noCache, campHandler.ListWithCount)
	camps.Get("/", auth, noCache, campHandler.ListWithCount)
	camps.Post("/", auth, campHandler.Create)
	camps.Get("/:id/share", auth, noCache, shareHandler.CampLink)
	camps.Get("/:id/qrcode", auth, shareHandler.CampQRCode)
	camps.Put("/:id/coupons", auth, campHandler.UpdateCoupons)
	camps.Get("/:id", auth, noCache, campHandler.Get)
	camps.Put("/:id", auth, campHandler.Update)
	camps.Delete("/:id", auth, campHandler.Delete)

	// ===== Donors =====
	donors := api.Group("/donors")
	donors.Post("/", donorHandler.Register)
	donors.Get("/", auth, noCache, donorHandler.List)
	donors.Get("/camp/:campId", auth, noCache, donorHandler.ListByCamp)
	donors.Get("/:id/qrcode", auth, shareHandler.DonorQRCode)
	donors.Get("/:id", auth, noCache, donorHandler.Get)
	donors.Put("/:id", auth, donorHandler.Update)
	donors.Delete("/:id", auth, donorHandler.Delete)
}
