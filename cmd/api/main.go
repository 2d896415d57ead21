package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/ticket-dashboard/internal/api/http"
	"github.com/spec-kit/ticket-dashboard/internal/api/http/handlers"
	"github.com/spec-kit/ticket-dashboard/internal/channel"
	"github.com/spec-kit/ticket-dashboard/internal/config"
	"github.com/spec-kit/ticket-dashboard/internal/jobs"
	"github.com/spec-kit/ticket-dashboard/internal/notify"
	"github.com/spec-kit/ticket-dashboard/internal/observability"
	"github.com/spec-kit/ticket-dashboard/internal/store"
	"github.com/spec-kit/ticket-dashboard/pkg/util"
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

	metrics := observability.NewMetrics()

	ch := channel.New(cfg.Channel, logger, metrics)

	dashboardStore := store.NewDashboardStore(
		store.SimulatedStatsFetcher(cfg.Dashboard.FetchDelay()),
		cfg.Dashboard.MaxRecentActivity,
		logger,
	)

	ticketStore := store.NewTicketStore(store.TicketStoreDeps{
		Fetcher:   store.SimulatedTicketFetcher(cfg.Tickets.FetchDelay()),
		Publisher: ch,
		Activity:  dashboardStore,
		Logger:    logger,
	})

	settingsStore := store.NewSettingsStore()

	presenter := notify.New(cfg.Notifications, ch, logger)
	presenter.Attach()

	ch.Connect()

	util.SafeGo(logger, "initial ticket load", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := ticketStore.LoadTickets(ctx); err != nil {
			logger.Warn("initial ticket load failed", zap.Error(err))
		}
	})

	refresher := jobs.NewRefresher(dashboardStore, cfg.Dashboard.RefreshInterval(), logger)
	refresher.Start()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:        handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, ch),
		Tickets:       handlers.NewTicketsHandler(ticketStore),
		Team:          handlers.NewTeamHandler(ticketStore),
		Dashboard:     handlers.NewDashboardHandler(dashboardStore),
		Notifications: handlers.NewNotificationsHandler(presenter),
		Settings:      handlers.NewSettingsHandler(settingsStore),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	refresher.Stop()
	presenter.Close()
	ch.Disconnect()
	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
