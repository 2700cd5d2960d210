package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/helpdesk-widget/internal/api/http"
	"github.com/spec-kit/helpdesk-widget/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk-widget/internal/auth"
	"github.com/spec-kit/helpdesk-widget/internal/channel"
	"github.com/spec-kit/helpdesk-widget/internal/config"
	"github.com/spec-kit/helpdesk-widget/internal/engine"
	"github.com/spec-kit/helpdesk-widget/internal/observability"
	"github.com/spec-kit/helpdesk-widget/internal/service"
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

	adapter := channel.NewRedisAdapter(cfg.Channel, logger)
	defer adapter.Close()

	metrics := observability.NewMetrics()
	eng := engine.New(adapter, nil, metrics, logger)
	widgetService := service.NewWidgetService(eng.Store(), adapter, eng.Aggregator(), logger)

	tokens := auth.NewTokenManager(cfg.Auth.APITokenSecret, cfg.Auth.TokenTTLMinutes)
	authMiddleware := auth.NewAuthMiddleware(tokens)

	if bootstrap, expiresAt, err := tokens.GenerateToken("local"); err == nil {
		logger.Info("local api token issued",
			zap.String("token", bootstrap),
			zap.Time("expires_at", expiresAt))
	}

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, adapter),
		Tickets:        handlers.NewTicketsHandler(eng, widgetService),
		Widget:         handlers.NewWidgetHandler(eng, widgetService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := eng.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Fatal("channel loop", zap.Error(err))
		}
	}()

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	cancel()
	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
