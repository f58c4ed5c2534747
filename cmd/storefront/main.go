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

	"github.com/seventwentyholdings/storefront/internal/cart"
	"github.com/seventwentyholdings/storefront/internal/catalog"
	"github.com/seventwentyholdings/storefront/internal/checkout"
	"github.com/seventwentyholdings/storefront/internal/config"
	"github.com/seventwentyholdings/storefront/internal/httpx"
	sqliteorders "github.com/seventwentyholdings/storefront/internal/orderlog/sqlite"
	"github.com/seventwentyholdings/storefront/internal/pkg/telemetry"
	"github.com/seventwentyholdings/storefront/internal/session"
	"github.com/seventwentyholdings/storefront/internal/shell"
	"github.com/seventwentyholdings/storefront/internal/wishlist"
)

const serviceName = "storefront"

func main() {
	telemetry.InitLogger(slog.LevelInfo)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(getEnv("STOREFRONT_CONFIG", "./config.yaml"))
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	if cfg.OTLPEndpoint != "" {
		shutdown, err := telemetry.SetupTracer(ctx, serviceName, cfg.OTLPEndpoint)
		if err != nil {
			slog.Error("failed to initialise tracer", "error", err)
			os.Exit(1)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				slog.Error("tracer shutdown error", "error", err)
			}
		}()
	}

	sessions, err := newSessionStore(cfg)
	if err != nil {
		slog.Error("failed to initialise session store", "error", err)
		os.Exit(1)
	}

	orders, err := sqliteorders.Open(cfg.OrderLogPath)
	if err != nil {
		slog.Error("failed to open order log", "path", cfg.OrderLogPath, "error", err)
		os.Exit(1)
	}
	defer orders.Close()

	catalogLoader := catalog.NewLoader(cfg.CatalogURL, nil)
	// Warm the catalog so the first page view does not pay the fetch.
	catalogLoader.Load(ctx)

	carts := cart.NewStore(sessions)
	wishlists := wishlist.NewStore(sessions)
	placer := checkout.NewPlacer(carts, sessions, orders)
	shellLoader := shell.NewLoader(cfg.AssetsBaseURL, nil)

	handler := httpx.NewHandler(catalogLoader, carts, wishlists, sessions, orders, placer, shellLoader)
	router := httpx.NewRouter(handler, cfg.AssetsDir)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("storefront running", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("http shutdown error", "error", err)
	}
}

// newSessionStore picks redis when configured, otherwise the in-memory
// store that loses state on restart.
func newSessionStore(cfg config.Config) (session.Store, error) {
	if cfg.Redis.Addr == "" {
		slog.Warn("no redis configured, session state held in memory")
		return session.NewMemoryStore(), nil
	}
	ttl, err := cfg.ParsedSessionTTL()
	if err != nil {
		return nil, err
	}
	return session.NewRedisStore(cfg.Redis.Addr, serviceName, ttl), nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
