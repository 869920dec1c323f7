package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/niveshfolio/portfolio-backend/internal/api"
	"github.com/niveshfolio/portfolio-backend/internal/config"
	"github.com/niveshfolio/portfolio-backend/internal/database"
	"github.com/niveshfolio/portfolio-backend/internal/market"
	"github.com/niveshfolio/portfolio-backend/internal/refresh"
	"github.com/niveshfolio/portfolio-backend/internal/repository"
	"github.com/niveshfolio/portfolio-backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	log := newLogger(cfg.Log.Level)

	// Open database connection and run migrations
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.WithField("path", cfg.Database.Path).Info("Connected to database")

	// Create repositories
	holdingRepo := repository.NewHoldingRepository(db)

	// Create the market price provider
	priceProvider := market.NewProvider(
		market.NewFinanceClient(cfg.Market.BaseURL),
		cfg.Market.CacheTTL,
		log,
	)

	// Create services
	systemService := service.NewSystemService(db)
	portfolioService := service.NewPortfolioService(
		holdingRepo,
		priceProvider,
		log,
	)

	// Start the background price-cache warmer
	if cfg.Market.RefreshSchedule != "" {
		refresher := refresh.New(holdingRepo, priceProvider, log)
		if err := refresher.Start(cfg.Market.RefreshSchedule); err != nil {
			log.Fatalf("Failed to start price refresher: %v", err)
		}
		defer refresher.Stop()
	}

	// Create router
	router := api.NewRouter(systemService, portfolioService, cfg, log)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.WithField("addr", cfg.Server.Addr).Info("Starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}

// newLogger builds the application logger. An unknown level falls back to info.
func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	return log
}
