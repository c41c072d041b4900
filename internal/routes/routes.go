package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/locumconnect/locum-backend/internal/config"
	"github.com/locumconnect/locum-backend/internal/handlers"
	"github.com/locumconnect/locum-backend/internal/middleware"
	"github.com/locumconnect/locum-backend/internal/models"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	userHandler *handlers.UserHandler,
	shiftHandler *handlers.ShiftHandler,
	applicationHandler *handlers.ApplicationHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth is public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/google", authHandler.GoogleSignIn)

	jwt := middleware.JWTProtected(cfg)

	api.Post("/auth/logout", jwt, authHandler.Logout)

	// Directory
	api.Get("/users", jwt, userHandler.List)
	api.Get("/users/:id", jwt, userHandler.Get)

	// Shifts
	api.Post("/shifts", jwt, middleware.RoleRequired(models.RoleOwner), shiftHandler.Create)
	api.Get("/shifts", jwt, shiftHandler.List)
	api.Get("/shifts/:id", jwt, shiftHandler.Get)
	api.Post("/shifts/:id/cancel", jwt, middleware.RoleRequired(models.RoleOwner), shiftHandler.Cancel)

	// Applications
	api.Post("/applications", jwt, middleware.RoleRequired(models.RolePharmacist), applicationHandler.Create)
	api.Get("/applications", jwt, applicationHandler.List)
	api.Get("/applications/:id", jwt, applicationHandler.Get)
	api.Patch("/applications/:id", jwt, applicationHandler.UpdateStatus)

	// Admin panel
	admin := api.Group("/admin", jwt, middleware.AdminRequired(db, cfg))
	admin.Get("/stats", userHandler.AdminStats)
	admin.Patch("/users/:id/verification", userHandler.SetVerification)
	admin.Get("/shifts", shiftHandler.ListAll)
	admin.Patch("/shifts/:id/approve", shiftHandler.Approve)
	admin.Patch("/shifts/:id/reject", shiftHandler.Reject)
}
