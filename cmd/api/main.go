package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/vanstock/vanstock-api/internal/application/auth"
	"github.com/vanstock/vanstock-api/internal/application/inventory"
	"github.com/vanstock/vanstock-api/internal/infrastructure/storage"
	httpRouter "github.com/vanstock/vanstock-api/internal/interfaces/http"
	"github.com/vanstock/vanstock-api/pkg/config"
	"github.com/vanstock/vanstock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Bool("auth", cfg.Auth.Enabled).
		Msg("starting application")

	ctx := context.Background()

	var kv storage.KV
	switch cfg.Storage.Driver {
	case "sqlite":
		kv, err = storage.NewSQLite(cfg.Storage.SQLitePath)
	case "postgres":
		kv, err = storage.NewPostgres(ctx, cfg.DB)
	case "redis":
		kv, err = storage.NewRedis(cfg.Redis)
	case "memory":
		kv = storage.NewMemory()
	default:
		log.Fatal().Str("driver", cfg.Storage.Driver).Msg("unknown storage driver")
	}
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("storage connection")
	}
	defer kv.Close()

	snapshots := storage.NewSnapshotRepository(kv)
	inventoryUC := inventory.NewService(snapshots, log)

	var authUC *auth.AuthUseCase
	if cfg.Auth.Enabled {
		users := storage.NewUserRepository(kv)
		authUC = auth.NewAuthUseCase(users, inventoryUC, auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		})
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InventoryUC: inventoryUC,
		AuthUC:      authUC,
		AuthEnabled: cfg.Auth.Enabled,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
