package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/restaurante-delicia/storefront/internal/config"
	"github.com/restaurante-delicia/storefront/internal/dispatch"
	"github.com/restaurante-delicia/storefront/internal/handlers"
	"github.com/restaurante-delicia/storefront/internal/metrics"
	"github.com/restaurante-delicia/storefront/internal/order"
	"github.com/restaurante-delicia/storefront/internal/server"
	"github.com/restaurante-delicia/storefront/internal/service"
	"github.com/restaurante-delicia/storefront/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting storefront server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
		"delivery_fee", cfg.Store.DeliveryFee,
		"locale", cfg.Store.Locale,
	)

	catalogRepo, err := openCatalog(context.Background(), cfg.Catalog, log)
	if err != nil {
		log.Error("failed to read catalog", "error", err)
		os.Exit(1)
	}

	locale, err := order.ParseLocale(cfg.Store.Locale)
	if err != nil {
		log.Error("invalid locale", "error", err)
		os.Exit(1)
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	// Initialize services
	catalogService := service.NewCatalogService(catalogRepo)
	cartService := service.NewCartService(catalogRepo, cfg.Store.DeliveryFee, m, log)
	orderService := service.NewOrderService(
		cartService,
		order.NewFormatter(locale),
		dispatch.NewWhatsApp(cfg.Store.WhatsAppURL, cfg.Store.WhatsAppPhone, dispatch.LogOpener(log)),
		cfg.Store.DeliveryFee,
		m,
		log,
	)

	// Create router
	r := server.NewRouter(server.Handlers{
		Product: handlers.NewProductHandler(catalogService, log),
		Cart:    handlers.NewCartHandler(cartService, log),
		Order:   handlers.NewOrderHandler(orderService, log),
	}, registry, cfg.Server.AllowedOrigins, log)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
