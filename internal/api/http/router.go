package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bookstore-catalog/internal/api/http/handlers"
	"github.com/spec-kit/bookstore-catalog/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Sellers        *handlers.SellersHandler
	Books          *handlers.BooksHandler
	Auth           *handlers.AuthHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes under the versioned prefix.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api/v1")

	books := api.Group("/books")
	books.Post("/", cfg.Books.Create)
	books.Get("/", cfg.Books.List)
	books.Get("/:id", cfg.Books.Get)
	books.Put("/:id", cfg.Books.Update)
	books.Delete("/:id", cfg.Books.Delete)

	sellers := api.Group("/sellers")
	sellers.Post("/", cfg.Sellers.Create)
	sellers.Get("/", cfg.Sellers.List)
	sellers.Get("/:id", cfg.Sellers.Get)
	sellers.Put("/:id", cfg.Sellers.Update)
	sellers.Delete("/:id", cfg.Sellers.Delete)

	authGroup := api.Group("/auth")
	authGroup.Post("/token", cfg.Auth.Token)
	authGroup.Get("/secure-endpoint", cfg.AuthMiddleware.Handle, cfg.Auth.SecureEndpoint)
}
