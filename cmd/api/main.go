package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"tutorial-api/internal/config"
	pgRepo "tutorial-api/internal/infra/adapter/persistence/postgres"
	sqliteRepo "tutorial-api/internal/infra/adapter/persistence/sqlite"
	"tutorial-api/internal/infra/db"
	"tutorial-api/internal/observability/logging"
	"tutorial-api/internal/observability/metrics"
	"tutorial-api/internal/observability/tracing"
	"tutorial-api/internal/repository"
	"tutorial-api/internal/resilience/circuitbreaker"
	"tutorial-api/internal/resilience/retry"

	tutUC "tutorial-api/internal/usecase/tutorial"

	hhttp "tutorial-api/internal/handler/http"
	"tutorial-api/internal/handler/http/middleware"
	"tutorial-api/internal/handler/http/requestid"
	htutorial "tutorial-api/internal/handler/http/tutorial"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := initLogger(cfg)
	if err := run(logger, cfg); err != nil {
		logger.Error("server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

// initLogger builds the process logger from configuration and installs it as the default.
func initLogger(cfg *config.Config) *slog.Logger {
	logger := logging.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)
	return logger
}

func run(logger *slog.Logger, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := initDatabase(ctx, logger, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           setupServer(logger, database, cfg),
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", cfg.HTTP.Addr),
			slog.String("version", cfg.Version),
			slog.String("db_driver", cfg.Database.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", slog.Any("error", err))
			return err
		}
		logger.Info("server stopped")
		return nil
	})
	return g.Wait()
}

// initDatabase opens the database, runs migrations and optionally seeds sample rows.
func initDatabase(ctx context.Context, logger *slog.Logger, cfg *config.Config) (*sql.DB, error) {
	dbCfg := db.Config{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.URL,
		Pool: db.ConnectionConfig{
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
			ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		},
	}

	// The database may still be starting when the API comes up.
	var database *sql.DB
	err := retry.WithBackoff(ctx, retry.StartupConfig(), func() error {
		var openErr error
		database, openErr = db.Open(ctx, dbCfg)
		return openErr
	})
	if err != nil {
		return nil, err
	}

	if err := db.MigrateUp(ctx, database, cfg.Database.Driver); err != nil {
		_ = database.Close()
		logger.Error("failed to migrate database", slog.Any("error", err))
		return nil, err
	}

	if cfg.Database.Seed {
		seeded, err := db.Seed(ctx, database)
		if err != nil {
			_ = database.Close()
			return nil, err
		}
		logger.Info("seed data checked", slog.Bool("inserted", seeded))
	}
	return database, nil
}

// newRepository picks the adapter matching the configured driver.
// Both adapters go through the circuit breaker.
func newRepository(driver string, breaker *circuitbreaker.DBCircuitBreaker) repository.TutorialRepository {
	if driver == db.DriverPostgres {
		return pgRepo.NewTutorialRepo(breaker)
	}
	return sqliteRepo.NewTutorialRepo(breaker)
}

// setupServer wires repositories, routes and middleware into the root handler.
func setupServer(logger *slog.Logger, database *sql.DB, cfg *config.Config) http.Handler {
	breaker := circuitbreaker.NewDBCircuitBreaker(database)
	svc := tutUC.Service{Repo: newRepository(cfg.Database.Driver, breaker)}

	if err := metrics.RegisterTutorialsTotal(func() float64 {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		n, err := svc.Count(ctx)
		if err != nil {
			logger.Warn("failed to count tutorials for metrics", slog.Any("error", err))
			return 0
		}
		return float64(n)
	}); err != nil {
		logger.Warn("failed to register tutorials_total gauge", slog.Any("error", err))
	}

	var limiter *hhttp.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = hhttp.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, 10*time.Minute)
		limiter.TrustForwarded = cfg.RateLimit.TrustForwarded
		logger.Info("rate limiting enabled",
			slog.Float64("rps", cfg.RateLimit.RPS),
			slog.Int("burst", cfg.RateLimit.Burst),
			slog.Bool("trust_forwarded", cfg.RateLimit.TrustForwarded))
	} else {
		logger.Warn("rate limiting is disabled")
	}

	mux := http.NewServeMux()
	htutorial.Register(mux, svc)

	mux.Handle("GET /health", &hhttp.HealthHandler{
		DB:      database,
		Version: cfg.Version,
		Breaker: breaker,
		Limiter: limiter,
	})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	return applyMiddleware(logger, mux, limiter, cfg)
}

// applyMiddleware wraps the router. Order, outermost first:
// CORS (answers preflight early), request ID, tracing, recovery, access log,
// rate limit, timeout, body limit, metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler, limiter *hhttp.RateLimiter, cfg *config.Config) http.Handler {
	var mws []hhttp.Middleware
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsCfg := middleware.DefaultCORSConfig(cfg.CORS.AllowedOrigins)
		corsCfg.Logger = logger
		mws = append(mws, middleware.CORS(corsCfg))
		logger.Info("CORS enabled", slog.Any("allowed_origins", cfg.CORS.AllowedOrigins))
	}
	mws = append(mws,
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Recover(logger),
		hhttp.Logging(logger),
	)
	if limiter != nil {
		mws = append(mws, limiter.Middleware)
	}
	mws = append(mws,
		hhttp.Timeout(cfg.HTTP.RequestTimeout),
		hhttp.LimitRequestBody(cfg.HTTP.MaxBodyBytes),
		hhttp.MetricsMiddleware,
	)
	return hhttp.Chain(handler, mws...)
}
