package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/khoahotran/personal-site/adapters/event"
	"github.com/khoahotran/personal-site/adapters/persistence"
	"github.com/khoahotran/personal-site/internal/application/service"
	siteUC "github.com/khoahotran/personal-site/internal/application/usecase/site"
	"github.com/khoahotran/personal-site/internal/config"
	"github.com/khoahotran/personal-site/internal/domain/site"
	"github.com/khoahotran/personal-site/pkg/logger"
	"github.com/khoahotran/personal-site/pkg/tracing"
)

// The worker keeps the public site view cache warm: every site event drops
// the cached view and rebuilds it from the store.
func main() {
	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting Personal Site Worker...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if len(cfg.Kafka.Brokers) == 0 {
		appLogger.Fatal("kafka.brokers is required for the worker", nil)
	}
	if cfg.Redis.Addr == "" {
		appLogger.Fatal("redis.addr is required for the worker", nil)
	}

	tp, err := tracing.NewTracerProvider(cfg, appLogger, "personal-site-worker")
	if err != nil {
		appLogger.Fatal("cannot init tracer", err)
	}
	defer tracing.Shutdown(context.Background(), tp, appLogger)

	// Storage
	var siteRepo site.Repository
	if cfg.Store.Driver == config.StorePostgres {
		dbPool, err := persistence.NewPostgresPool(ctx, cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot connect Postgres", err)
		}
		defer dbPool.Close()
		siteRepo = persistence.NewPostgresSiteRepo(dbPool, appLogger)
	} else {
		siteRepo = persistence.NewFileSiteRepo(cfg.Store.Path, appLogger)
	}

	redisClient, err := persistence.NewRedisClient(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()
	viewCache := persistence.NewRedisSiteViewCache(redisClient, cfg.Redis.TTL)

	// Worker Use Case
	getSiteUseCase := siteUC.NewGetSiteUseCase(siteRepo, viewCache, appLogger)

	consumer := event.NewSiteEventConsumer(cfg, appLogger)
	defer consumer.Close()

	err = consumer.Run(ctx, func(ctx context.Context, evt service.SiteEvent) error {
		if err := viewCache.Invalidate(ctx); err != nil {
			return err
		}
		view, err := getSiteUseCase.Refresh(ctx)
		if err != nil {
			return err
		}
		appLogger.Info("Site view cache refreshed",
			zap.String("resource", evt.Resource),
			zap.Int("entries", len(view.Entries)),
		)
		return nil
	})
	if err != nil {
		appLogger.Error("Worker stopped", err)
	}
}
