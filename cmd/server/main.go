package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"

	"github.com/bryanwweber/backend-posts-api-redcell/internal/config"
	"github.com/bryanwweber/backend-posts-api-redcell/internal/database"
	"github.com/bryanwweber/backend-posts-api-redcell/internal/logging"
	"github.com/bryanwweber/backend-posts-api-redcell/internal/readiness"
	"github.com/bryanwweber/backend-posts-api-redcell/internal/server"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

// awaitDatabase blocks until the readiness gate opens. No pooled connection
// exists before this returns; exhausting the probe budget is fatal.
func awaitDatabase(cfg *config.Config, clock clockwork.Clock) {
	gate := readiness.NewGate(database.ReadinessProbe(cfg.DatabaseURL()), readiness.Policy{
		Interval:         cfg.DBReadyInterval,
		ProbeTimeout:     cfg.DBReadyProbeTimeout,
		MaxAttempts:      cfg.DBReadyAttempts,
		SuccessThreshold: cfg.DBReadySuccesses,
		OnRetry: func(attempt int, err error) {
			slog.Warn("Database not ready, retrying", "attempt", attempt, "error", err)
		},
	}, clock)

	if err := gate.Wait(context.Background()); err != nil {
		slog.Error("Database readiness gate failed", "state", gate.State().String(), "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "state", gate.State().String())
}

func setupDB(cfg *config.Config) *pgxpool.Pool {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL())
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.RunMigrations(ctx, pool); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	if cfg.SeedSampleData {
		r := rand.New(rand.NewSource(time.Now().UnixNano()))
		if err := database.Seed(ctx, pool, r, database.DefaultSeedUsers, database.DefaultSeedPosts); err != nil {
			slog.Error("Failed to seed sample data", "error", err)
			os.Exit(1)
		}
	}

	return pool
}

func runGracefulShutdown(srv *server.Server, timeout time.Duration) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	// Initialize structured logging
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	// Startup ordering: gate first, pool strictly after.
	awaitDatabase(cfg, clock)

	pool := setupDB(cfg)
	defer pool.Close()

	userRepo := database.NewUserRepo(pool)
	postRepo := database.NewPostRepo(pool)

	srv := server.NewServer(cfg, userRepo, postRepo, pool)

	done := runGracefulShutdown(srv, cfg.ShutdownTimeout)

	slog.Info("Server starting", "port", cfg.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
