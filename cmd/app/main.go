// @title WashRewards API
// @version 1.0
// @description Loyalty and rewards calculation engine for car wash members.
// @BasePath /
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/osse101/WashRewards_Go/docs"
	"github.com/osse101/WashRewards_Go/internal/config"
	"github.com/osse101/WashRewards_Go/internal/event"
	"github.com/osse101/WashRewards_Go/internal/handler"
	"github.com/osse101/WashRewards_Go/internal/loyalty"
	"github.com/osse101/WashRewards_Go/internal/metrics"
	"github.com/osse101/WashRewards_Go/internal/referral"
	"github.com/osse101/WashRewards_Go/internal/server"
	"github.com/osse101/WashRewards_Go/internal/tier"
)

func main() {
	if err := config.ValidateEnv(); err != nil {
		log.Fatalf("Environment check failed: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration invalid: %v", err)
	}

	initLogger(cfg)
	for _, w := range cfg.Warnings() {
		slog.Warn(w)
	}

	if err := run(cfg); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	table, err := loadTiers(cfg.TierConfigPath)
	if err != nil {
		return err
	}
	slog.Info("Tier table loaded", "tiers", table.Len(), "source", tierSource(cfg.TierConfigPath))

	bus := event.NewMemoryBus()
	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		return fmt.Errorf("failed to register metrics collector: %w", err)
	}

	var codec referral.Codec
	if cfg.ReferralCacheSize > 0 {
		codec = referral.NewCachedCodec(referral.NewCodec(nil), cfg.ReferralCacheSize, cfg.ReferralCacheTTL)
	}

	loyaltyService := loyalty.NewService(table, codec, bus)

	srv := server.NewServer(server.Options{
		Port:              cfg.Port,
		TrustedProxies:    cfg.TrustedProxies,
		RateLimitRequests: cfg.RateLimitRequests,
		RateLimitWindow:   cfg.RateLimitWindow,
		MaxRequestBytes:   cfg.MaxRequestBytes,
		Checkers: []handler.HealthChecker{
			handler.HealthCheckFunc(func(ctx context.Context) error {
				if table.Len() == 0 {
					return errors.New("tier table is empty")
				}
				return nil
			}),
		},
	}, loyaltyService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutdown signal received", "timeout", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return <-errCh
}

func loadTiers(path string) (*tier.Table, error) {
	if path == "" {
		return tier.DefaultTable(), nil
	}
	table, err := tier.NewLoader().Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load tier config: %w", err)
	}
	return table, nil
}

func tierSource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
