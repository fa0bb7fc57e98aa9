package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vanstock/vanstock-api/internal/application/auth"
	"github.com/vanstock/vanstock-api/internal/application/inventory"
)

// RouterDeps dependencies for the router. AuthUC may be nil when AuthEnabled
// is false (local deployment: no accounts, single scope, open routes).
type RouterDeps struct {
	InventoryUC *inventory.Service
	AuthUC      *auth.AuthUseCase
	AuthEnabled bool
	JWTSecret   string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	alertHandler := NewAlertHandler(deps.InventoryUC)
	dashboardHandler := NewDashboardHandler(deps.InventoryUC)

	// Catalogs are static and public in both deployments
	api.Get("/catalog", dashboardHandler.Catalog)

	protected := api
	if deps.AuthEnabled {
		authHandler := NewAuthHandler(deps.AuthUC)
		authGroup := api.Group("/auth")
		authGroup.Post("/register", authHandler.Register)
		authGroup.Post("/login", authHandler.Login)
		authGroup.Post("/signout", AuthMiddleware(deps.JWTSecret), authHandler.SignOut)

		protected = api.Group("/", AuthMiddleware(deps.JWTSecret))
	}

	items := protected.Group("/items")
	items.Post("/", inventoryHandler.Create)
	items.Get("/", inventoryHandler.List)
	items.Get("/low-stock", inventoryHandler.LowStock)
	items.Get("/out-of-stock", inventoryHandler.OutOfStock)
	items.Get("/:id", inventoryHandler.GetByID)
	items.Put("/:id", inventoryHandler.Update)
	items.Delete("/:id", inventoryHandler.Delete)
	items.Post("/:id/adjust", inventoryHandler.Adjust)

	alerts := protected.Group("/alerts")
	alerts.Get("/", alertHandler.List)
	alerts.Delete("/", alertHandler.Clear)

	protected.Get("/dashboard", dashboardHandler.Stats)
	protected.Delete("/inventory", inventoryHandler.Reset)
}
