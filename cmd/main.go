package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rostermix/rostermix/internal/adapters/http/api"
	app "github.com/rostermix/rostermix/internal/app"
	"github.com/rostermix/rostermix/internal/config"
	"github.com/rostermix/rostermix/internal/domain/model"
	"github.com/rostermix/rostermix/pkg/logger"
	"github.com/rostermix/rostermix/pkg/metrics"

	"github.com/rs/cors"
)

// HTTP server timeout constants.
const (
	readTimeout            = 10 * time.Second
	writeTimeout           = 10 * time.Second
	idleTimeout            = 60 * time.Second
	readHeaderTimeout      = 5 * time.Second
	shutdownTimeout        = 30 * time.Second
	serviceMetricsInterval = 5 * time.Second
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		// Logger isn't available yet, write directly to stderr
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	loggerInstance := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Create the service with configuration options
	opts := []app.Option{
		app.WithLogger(loggerInstance),
		app.WithHistoryLimit(cfg.HistoryLimit),
		app.WithInitialSettings(model.Settings{
			TeamSize:              cfg.TeamSize,
			MaxTeams:              cfg.MaxTeams,
			ReservePlayersEnabled: cfg.ReservePlayersEnabled,
			SkillBalancingEnabled: cfg.SkillBalancingEnabled,
		}),
	}
	if cfg.RandomSeed != 0 {
		opts = append(opts, app.WithSeed(cfg.RandomSeed))
	}
	svc := app.New(opts...)

	// Start service metrics updater
	go startServiceMetricsUpdater(ctx, svc)

	// HTTP mux and routes.
	mux := http.NewServeMux()

	// Register business API routes with the service dependency.
	apiServer := api.NewServer(svc, svc)
	apiServer.Register(ctx, mux)

	// Allow the browser client to call the API cross-origin.
	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           corsMiddleware.Handler(mux),
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	// Start the HTTP server
	go func() {
		loggerInstance.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			return
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	loggerInstance.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		loggerInstance.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	loggerInstance.Info(ctx, "server stopped")
}

// startServiceMetricsUpdater starts a background goroutine that updates service metrics.
func startServiceMetricsUpdater(ctx context.Context, svc *app.Service) {
	ticker := time.NewTicker(serviceMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateServiceMetrics(svc)
		}
	}
}

// updateServiceMetrics updates service-level gauges from the current stats.
func updateServiceMetrics(svc *app.Service) {
	stats := svc.GetStats()

	if players, ok := stats["players"].(int); ok {
		metrics.UpdatePlayerCount(players)
	}
	if reserves, ok := stats["reservePlayers"].(int); ok {
		metrics.UpdateReserveCount(reserves)
	}
	if teams, ok := stats["teams"].(int); ok {
		metrics.UpdateTeamCount(teams)
	}
	if entries, ok := stats["historyEntries"].(int); ok {
		metrics.UpdateHistorySize(entries)
	}
}
