package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/skillcircuit/internal/api/http"
	"github.com/spec-kit/skillcircuit/internal/api/http/handlers"
	"github.com/spec-kit/skillcircuit/internal/auth"
	"github.com/spec-kit/skillcircuit/internal/config"
	"github.com/spec-kit/skillcircuit/internal/events"
	"github.com/spec-kit/skillcircuit/internal/observability"
	"github.com/spec-kit/skillcircuit/internal/persistence"
	"github.com/spec-kit/skillcircuit/internal/service"
	"github.com/spec-kit/skillcircuit/internal/store"
	"github.com/spec-kit/skillcircuit/internal/worker"
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

	kv, err := newStorage(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to init storage", zap.Error(err))
	}
	defer kv.Close()

	platformStore := store.New(ctx, kv, logger)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	checkoutService := service.NewCheckoutService(platformStore, dispatcher, logger, cfg.Checkout)

	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	sessionMiddleware := auth.NewSessionMiddleware(tokenManager, platformStore)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:            handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, kv, cfg.Storage.Backend),
		Auth:              handlers.NewAuthHandler(platformStore, tokenManager, dispatcher),
		Courses:           handlers.NewCoursesHandler(platformStore, checkoutService),
		Leads:             handlers.NewLeadsHandler(platformStore, dispatcher),
		Dashboard:         handlers.NewDashboardHandler(platformStore),
		Admin:             handlers.NewAdminHandler(platformStore, dispatcher, metrics),
		SessionMiddleware: sessionMiddleware,
		Store:             platformStore,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

// newStorage selects the key-value backend per configuration.
func newStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (persistence.KV, error) {
	switch cfg.Storage.Backend {
	case config.StorageBackendRedis:
		return persistence.NewRedisKV(cfg.Redis, logger), nil
	case config.StorageBackendPostgres:
		pg, err := persistence.NewPostgresKV(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, err
		}
		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
				pg.Close()
				return nil, err
			}
		}
		return pg, nil
	default:
		return persistence.NewFileKV(cfg.Storage, logger)
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
