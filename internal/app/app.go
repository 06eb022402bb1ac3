package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/pmp-study-backend/internal/adapter/cache"
	"github.com/heartmarshall/pmp-study-backend/internal/adapter/postgres"
	"github.com/heartmarshall/pmp-study-backend/internal/adapter/postgres/flashcard"
	"github.com/heartmarshall/pmp-study-backend/internal/adapter/postgres/progress"
	"github.com/heartmarshall/pmp-study-backend/internal/adapter/postgres/reviewstate"
	"github.com/heartmarshall/pmp-study-backend/internal/auth"
	"github.com/heartmarshall/pmp-study-backend/internal/config"
	"github.com/heartmarshall/pmp-study-backend/internal/domain"
	"github.com/heartmarshall/pmp-study-backend/internal/service/study"
	"github.com/heartmarshall/pmp-study-backend/internal/transport/middleware"
	"github.com/heartmarshall/pmp-study-backend/internal/transport/rest"
)

// keyValueCache is what the study service needs from a stats cache.
type keyValueCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Run is the application entry point. It loads configuration, connects to
// Postgres and (optionally) Redis, builds the study service and serves HTTP
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	shutdownTracing, err := InitTracing(ctx, cfg.Tracing, logger)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Warn("tracing shutdown", slog.String("error", err.Error()))
		}
	}()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	var (
		statsCache  keyValueCache = cache.Noop{}
		cachePinger pinger
	)
	if cfg.Redis.Enabled {
		rdb, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer rdb.Close()
		statsCache, cachePinger = rdb, rdb
		logger.Info("stats cache enabled", slog.String("addr", cfg.Redis.Addr))
	}

	studyService := study.NewService(
		logger,
		flashcard.New(pool),
		reviewstate.New(pool),
		progress.New(pool),
		statsCache,
		postgres.NewTxManager(pool),
		domain.SRSConfig{
			DefaultBatchSize: cfg.SRS.DefaultBatchSize,
			MaxBatchSize:     cfg.SRS.MaxBatchSize,
			StatsCacheTTL:    cfg.SRS.StatsCacheTTL,
			Timezone:         cfg.Study.Timezone,
		},
	)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	mux := http.NewServeMux()
	rest.NewHealthHandler(pool, cachePinger, BuildVersion()).Register(mux)
	rest.NewStudyHandler(studyService, logger).Register(mux)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.When(cfg.RateLimit.Enabled, limiter.Limit(cfg.RateLimit.RequestsPerMinute)),
		middleware.Auth(jwtManager),
	)

	handler := otelhttp.NewHandler(chain(mux), "http.server")

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
