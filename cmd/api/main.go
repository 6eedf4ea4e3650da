// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Ludora HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire the cache store, repositories, and HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
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

	"github.com/taibuivan/ludora/internal/api"
	"github.com/taibuivan/ludora/internal/catalog/admin"
	"github.com/taibuivan/ludora/internal/catalog/category"
	"github.com/taibuivan/ludora/internal/catalog/game"
	"github.com/taibuivan/ludora/internal/catalog/language"
	"github.com/taibuivan/ludora/internal/catalog/tag"
	"github.com/taibuivan/ludora/internal/platform/cache"
	"github.com/taibuivan/ludora/internal/platform/config"
	"github.com/taibuivan/ludora/internal/platform/constants"
	"github.com/taibuivan/ludora/internal/platform/migration"
	pgstore "github.com/taibuivan/ludora/internal/platform/postgres"
	redisstore "github.com/taibuivan/ludora/internal/platform/redis"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "ludora"))
	slog.SetDefault(log)

	log.Info("[Ludora] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "ludora"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("default_locale", cfg.DefaultLocale),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// Application lifetime context, cancelled on shutdown so background
	// goroutines (rate limiter cleanup) stop with the server.
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Cache Store ────────────────────────────────────────────────────
	// One in-process store shared by every cached dataset. The invalidator
	// is handed to the admin handler for tag-level busting.
	store := cache.NewStore(log)
	invalidator := cache.NewInvalidator(store, log)

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	categoryRepo := category.NewPostgresRepository(pool)
	tagRepo := tag.NewPostgresRepository(pool)
	languageRepo := language.NewPostgresRepository(pool)
	gameRepo := game.NewPostgresRepository(pool)

	categoryCache := category.NewCache(store, categoryRepo, cfg.DefaultLocale, category.TTLs{
		BaseData: cfg.CacheTTLBaseData,
		Stats:    cfg.CacheTTLStatsShort,
		Admin:    cfg.CacheTTLMedium,
	}, log)
	tagCache := tag.NewCache(store, tagRepo, cfg.DefaultLocale, tag.TTLs{
		BaseData: cfg.CacheTTLBaseData,
		Stats:    cfg.CacheTTLStatsShort,
		Admin:    cfg.CacheTTLMedium,
	}, log)
	languageCache := language.NewCache(store, languageRepo, cfg.CacheTTLVeryLong, log)

	categoryService := category.NewService(categoryCache)
	tagService := tag.NewService(tagCache)

	gameQueries := game.NewQueries(store, gameRepo, categoryCache, tagCache, cfg.DefaultLocale, game.TTLs{
		List:      cfg.CacheTTLMedium,
		Detail:    cfg.CacheTTLLong,
		Spotlight: cfg.CacheTTLShort,
	}, log)

	playTracker := game.NewTracker(rdb, gameRepo, cfg.PlayFlushInterval, log)
	playTracker.Start()

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Game:      game.NewHandler(gameQueries, playTracker, cfg.DefaultLocale),
		Category:  category.NewHandler(categoryService, cfg.DefaultLocale),
		Tag:       tag.NewHandler(tagService, cfg.DefaultLocale),
		Language:  language.NewHandler(languageCache),
		Admin:     admin.NewHandler(invalidator, categoryService, tagService, cfg.DefaultLocale),
	}

	server := api.NewServer(appCtx, cfg, log, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	// Stop the play tracker last so the final flush can still reach the
	// database. The pool is closed by the deferred cleanup above.
	flushCtx, flushCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer flushCancel()
	if err := playTracker.Stop(flushCtx); err != nil {
		log.Error("final play flush failed", slog.Any("error", err))
	}

	// No request can arrive past this point; drop the cached entries so
	// nothing stale survives into a reused process.
	store.Flush()

	appCancel()
	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
