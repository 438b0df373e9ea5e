package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ArowuTest/engage-crm/api/routes"
	"github.com/ArowuTest/engage-crm/internal/app"
	"github.com/ArowuTest/engage-crm/internal/config"
	"github.com/ArowuTest/engage-crm/internal/logging"
	"github.com/ArowuTest/engage-crm/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine, the environment may be set directly
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("Failed to load .env file", "error", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)
	gin.SetMode(gin.ReleaseMode)

	ctx := context.Background()
	stores, err := app.OpenStores(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open stores", "error", err)
		os.Exit(1)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := stores.Close(closeCtx); err != nil {
			slog.Error("Error closing stores", "error", err)
		}
	}()

	svc := app.NewServices(cfg, stores, app.NewDeliveryPolicy(cfg.Delivery))

	loginLimiter := middleware.NewIPRateLimiter(cfg.RateLimit.Login.RPS, cfg.RateLimit.Login.Burst)
	stopCleanup := make(chan struct{})
	go loginLimiter.Run(stopCleanup)
	defer close(stopCleanup)

	router := routes.SetupRouter(cfg, routes.HandlerDependencies{
		AuthService:      svc.Auth,
		CustomerService:  svc.Customers,
		SegmentService:   svc.Segments,
		CampaignService:  svc.Campaigns,
		DashboardService: svc.Dashboard,
		LoginLimiter:     loginLimiter,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("Server starting", "port", cfg.Server.Port, "storage", cfg.Storage.Driver, "delivery", cfg.Delivery.Mode)

	// Run server in a goroutine so that it doesn't block
	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
	}
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server exiting")
}
