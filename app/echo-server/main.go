package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"rfmInsights/app/echo-server/router"
	"rfmInsights/business/rfm"
	"rfmInsights/internal/middleware"
	"rfmInsights/internal/repository/csvfile"
	"rfmInsights/internal/rest"
	"rfmInsights/pkg/config"
	"rfmInsights/pkg/logger"
	"rfmInsights/pkg/metrics"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting RFM Insights", "version", cfg.App.Version)

	metrics.Init()

	// Init repo
	transactionRepo := csvfile.NewTransactionRepository(cfg.Data.Path)

	// Init service
	rfmService := rfm.NewRFMService(transactionRepo)

	// Init handler
	dashboardHandler := rest.NewDashboardHandler(rfmService)
	healthHandler := rest.NewHealthHandler(cfg.App.Name, cfg.App.Version)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())

	// Setup routes
	router.SetupDashboardRoutes(e, dashboardHandler)
	router.SetupOpsRoutes(e, healthHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
