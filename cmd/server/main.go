package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"etf_dashboard/internal/app/di"
	"etf_dashboard/internal/app/router"
	analysishandler "etf_dashboard/internal/feature/analysis/transport/handler"
	candles "etf_dashboard/internal/feature/candles/domain/entity"
	candleshandler "etf_dashboard/internal/feature/candles/transport/handler"
	candlesusecase "etf_dashboard/internal/feature/candles/usecase"
	symbollistadapters "etf_dashboard/internal/feature/symbollist/adapters"
	symbolentity "etf_dashboard/internal/feature/symbollist/domain/entity"
	symbollisthandler "etf_dashboard/internal/feature/symbollist/transport/handler"
	symbollistusecase "etf_dashboard/internal/feature/symbollist/usecase"
	"etf_dashboard/internal/platform/cache"
	"etf_dashboard/internal/platform/config"
	infradb "etf_dashboard/internal/platform/db"
	"etf_dashboard/internal/platform/http/handler"
	"etf_dashboard/internal/platform/logger"
	"etf_dashboard/internal/platform/metrics"
	infraredis "etf_dashboard/internal/platform/redis"
	"etf_dashboard/internal/platform/scheduler"
	"etf_dashboard/internal/shared/ratelimiter"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", envOr("CONFIG_PATH", "config.yaml"), "path to the YAML config file")
	flag.Parse()

	// .env は任意
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}
	logger.Setup(cfg.Log.Level)
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	// db
	db, err := infradb.Open(cfg.Database)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	if infradb.ShouldMigrate(cfg.Database) {
		if err := infradb.Migrate(db, &symbolentity.Symbol{}); err != nil {
			return err
		}
	}

	symbolUC := symbollistusecase.NewSymbolUsecase(symbollistadapters.NewSymbolRepository(db))
	if err := symbolUC.SeedDefaults(ctx); err != nil {
		return err
	}

	// Redis
	var rdb *redisv9.Client
	if !cfg.Cache.Disabled {
		if tmp, err := infraredis.NewRedisClient(ctx, cfg.Cache); err != nil {
			slog.Warn("Redis unavailable. Running without cache.", "error", err)
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	// Repository
	var market candlesusecase.MarketRepository = di.NewMarket(cfg.Market)
	if rdb != nil {
		cached := di.NewCachedMarket(rdb, cfg.Cache, market)
		market = cached

		sched, err := startWarmer(ctx, cfg, cached, symbolUC)
		if err != nil {
			return err
		}
		if sched != nil {
			defer sched.Stop()
		}
	}

	// Metrics
	reg := metrics.NewRegistry()
	analysisMetrics := metrics.NewAnalysis(reg, cfg.Metrics.Namespace, cfg.Metrics.Subsystem)

	// Usecase
	analyzer := di.NewAnalyzer(market, symbolUC, cfg.Market, analysisMetrics)
	candlesUC := candlesusecase.NewCandlesUsecase(market)

	// Handler
	r, err := router.NewRouter(router.Handlers{
		Analysis: analysishandler.NewAnalysisHandler(analyzer, symbolUC),
		Candles:  candleshandler.NewCandlesHandler(candlesUC),
		Symbols:  symbollisthandler.NewSymbolHandler(symbolUC),
		Health:   handler.Health(healthChecks(db, rdb)),
		Metrics:  metrics.Handler(reg),
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// startWarmer registers the cache warmup job. It returns nil when the
// schedule is empty.
func startWarmer(ctx context.Context, cfg *config.Config, cached *cache.CachingMarketRepository, codes di.CodeLister) (*scheduler.Scheduler, error) {
	if cfg.Warmer.Schedule == "" {
		return nil, nil
	}

	period, err := candles.ParsePeriod(cfg.Market.DefaultPeriod)
	if err != nil {
		return nil, err
	}

	limiter := ratelimiter.NewRateLimiter(cfg.Market.RequestsPerMinute, time.Minute)
	warmer := candlesusecase.NewWarmupUsecase(cached, limiter)

	sched := scheduler.New(ctx)
	if err := sched.Register("cache-warmup", cfg.Warmer.Schedule, di.NewWarmJob(warmer, codes, cfg.Market.Benchmark, period)); err != nil {
		return nil, err
	}
	sched.Start()
	return sched, nil
}

func healthChecks(db *gorm.DB, rdb *redisv9.Client) map[string]handler.Check {
	checks := map[string]handler.Check{
		"database": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}
	}
	return checks
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
