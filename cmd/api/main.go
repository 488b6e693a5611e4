package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/application/auth"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/application/cooking"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/application/inventory"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/application/notification"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/application/recipe"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/application/shopping"
	infraai "github.com/hidaken991018/mini-hackathonv2-sub000/internal/infrastructure/ai"
	infrapdf "github.com/hidaken991018/mini-hackathonv2-sub000/internal/infrastructure/pdf"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/infrastructure/postgres"
	httpRouter "github.com/hidaken991018/mini-hackathonv2-sub000/internal/interfaces/http"
	"github.com/hidaken991018/mini-hackathonv2-sub000/pkg/config"
	"github.com/hidaken991018/mini-hackathonv2-sub000/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Adaptadores de persistencia
	userRepo := postgres.NewUserRepository(pool)
	invRepo := postgres.NewInventoryRepository(pool)
	recipeRepo := postgres.NewRecipeRepository(pool)
	notifRepo := postgres.NewNotificationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Adaptadores externos
	geminiSvc := infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.Model, cfg.AI.VisionModel)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	// Casos de uso
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	inventoryUC := inventory.NewUseCase(invRepo, geminiSvc)
	recipeUC := recipe.NewUseCase(recipeRepo, invRepo, notifRepo, geminiSvc)
	cookUC := cooking.NewUseCase(txRunner, recipeRepo, notifRepo, invRepo)
	shoppingUC := shopping.NewUseCase(recipeRepo, invRepo, pdfGenerator)
	notificationUC := notification.NewUseCase(notifRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // las llamadas a IA pueden tardar
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Reizouko API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		InventoryUC:    inventoryUC,
		RecipeUC:       recipeUC,
		CookUC:         cookUC,
		ShoppingUC:     shoppingUC,
		NotificationUC: notificationUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
