package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/bookstore-catalog/internal/api/http"
	"github.com/spec-kit/bookstore-catalog/internal/api/http/handlers"
	"github.com/spec-kit/bookstore-catalog/internal/auth"
	"github.com/spec-kit/bookstore-catalog/internal/config"
	"github.com/spec-kit/bookstore-catalog/internal/observability"
	"github.com/spec-kit/bookstore-catalog/internal/persistence"
	"github.com/spec-kit/bookstore-catalog/internal/repository"
	"github.com/spec-kit/bookstore-catalog/internal/service"
	"github.com/spec-kit/bookstore-catalog/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, cfg.Postgres.URL(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	sellerRepo := repository.NewSellerRepository(pool)
	bookRepo := repository.NewBookRepository(pool)

	validator := validation.New(cfg.Catalog)

	sellerService := service.NewSellerService(sellerRepo, cfg.Auth.BcryptCost, logger)
	bookService := service.NewBookService(bookRepo, sellerRepo, logger)
	authService, err := service.NewAuthService(cfg.Auth, sellerRepo, logger)
	if err != nil {
		logger.Fatal("failed to init auth service", zap.Error(err))
	}
	authMiddleware := auth.NewMiddleware(authService.TokenManager(), sellerRepo)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Sellers:        handlers.NewSellersHandler(sellerService, validator),
		Books:          handlers.NewBooksHandler(bookService, validator),
		Auth:           handlers.NewAuthHandler(authService, validator),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
