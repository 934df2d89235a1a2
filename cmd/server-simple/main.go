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

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/tendant/simple-assets/pkg/simpleassets"
	"github.com/tendant/simple-assets/pkg/simpleassets/api"
	"github.com/tendant/simple-assets/pkg/simpleassets/config"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load(config.WithEnv())
	if err != nil {
		slog.Error("Failed to load configuration", "err", err)
		os.Exit(1)
	}

	// Build registry from configuration
	registry, err := cfg.BuildRegistry()
	if err != nil {
		slog.Error("Failed to build registry", "err", err)
		os.Exit(1)
	}

	// Register the assets this server exposes
	registerAssets(registry)

	// Get port from environment variable or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Create HTTP server
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: routes(registry),
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Asset server starting", "port", port, "domain", cfg.Domain, "source", cfg.Source.Type)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "err", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server gracefully
	if err := httpServer.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "err", err)
		os.Exit(1)
	}

	slog.Info("Server exiting")
}

// routes sets up the HTTP routes
func routes(registry *simpleassets.Registry) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Rendered assets, cacheable for five minutes
	assetHandler := api.NewAssetHandler(registry)
	r.Route("/assets", func(r chi.Router) {
		r.Use(api.CacheMiddleware(300))
		r.Mount("/", assetHandler.Routes())
	})

	return r
}

// registerAssets fills the registry with the assets this demo server ships
func registerAssets(registry *simpleassets.Registry) {
	registry.AddCSS("/css/reset.css")
	registry.AddCSS("/css/site.css")
	registry.AddLESS("/less/theme.less")

	registry.AddScript("/js/jquery.js", simpleassets.InSection("header"))
	registry.AddScript("/js/app.js")
	registry.AddScript("/js/analytics.js", simpleassets.WithAsync("async"))

	registry.AddInlineStyle("body { margin: 0; }", "")
	registry.AddInlineScript("console.log('ready');", "")
}
