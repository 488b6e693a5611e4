package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/application/auth"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/application/cooking"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/application/inventory"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/application/notification"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/application/recipe"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/application/shopping"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	InventoryUC    *inventory.UseCase
	RecipeUC       *recipe.UseCase
	CookUC         *cooking.UseCase
	ShoppingUC     *shopping.UseCase
	NotificationUC *notification.UseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Despensa (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Get("/", inventoryHandler.List)
	invGroup.Get("/expiring", inventoryHandler.ListExpiring)
	invGroup.Post("/", inventoryHandler.Create)
	invGroup.Post("/bulk", inventoryHandler.BulkCreate)
	invGroup.Post("/scan-receipt", inventoryHandler.ScanReceipt)
	invGroup.Put("/:id", inventoryHandler.Update)
	invGroup.Delete("/:id", inventoryHandler.Delete)

	// Recetas (protegido)
	recipes := protected.Group("/recipes")
	recipeHandler := NewRecipeHandler(deps.RecipeUC, deps.CookUC, deps.ShoppingUC)
	recipes.Get("/", recipeHandler.List)
	recipes.Post("/", recipeHandler.Create)
	recipes.Post("/generate", recipeHandler.Generate)
	recipes.Get("/:id", recipeHandler.Get)
	recipes.Get("/:id/availability", recipeHandler.Availability)
	recipes.Post("/:id/cook", recipeHandler.Cook)
	recipes.Get("/:id/shopping-list", recipeHandler.ShoppingList)

	// Notificaciones (protegido)
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Post("/:id/read", notificationHandler.MarkRead)
}
