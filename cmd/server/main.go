package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/personal-site/adapters/event"
	httpAdapter "github.com/khoahotran/personal-site/adapters/http"
	"github.com/khoahotran/personal-site/adapters/media_storage"
	"github.com/khoahotran/personal-site/adapters/persistence"
	"github.com/khoahotran/personal-site/internal/application/service"
	backupUC "github.com/khoahotran/personal-site/internal/application/usecase/backup"
	categoryUC "github.com/khoahotran/personal-site/internal/application/usecase/category"
	entryUC "github.com/khoahotran/personal-site/internal/application/usecase/entry"
	homepageUC "github.com/khoahotran/personal-site/internal/application/usecase/homepage"
	mediaUC "github.com/khoahotran/personal-site/internal/application/usecase/media"
	messageUC "github.com/khoahotran/personal-site/internal/application/usecase/message"
	onboardingUC "github.com/khoahotran/personal-site/internal/application/usecase/onboarding"
	profileUC "github.com/khoahotran/personal-site/internal/application/usecase/profile"
	siteUC "github.com/khoahotran/personal-site/internal/application/usecase/site"
	"github.com/khoahotran/personal-site/internal/config"
	"github.com/khoahotran/personal-site/internal/domain/site"
	"github.com/khoahotran/personal-site/pkg/logger"
	"github.com/khoahotran/personal-site/pkg/tracing"
)

func main() {
	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Start Personal Site API Server...", zap.String("env", cfg.App.Env))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Tracing
	tp, err := tracing.NewTracerProvider(cfg, appLogger, "personal-site-api")
	if err != nil {
		appLogger.Fatal("cannot init tracer", err)
	}
	defer tracing.Shutdown(context.Background(), tp, appLogger)

	// Storage
	var siteRepo site.Repository
	switch cfg.Store.Driver {
	case config.StorePostgres:
		dbPool, err := persistence.NewPostgresPool(ctx, cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot connect Postgres", err)
		}
		defer dbPool.Close()
		siteRepo = persistence.NewPostgresSiteRepo(dbPool, appLogger)
	case config.StoreFile:
		siteRepo = persistence.NewFileSiteRepo(cfg.Store.Path, appLogger)
	default:
		appLogger.Fatal("unknown store driver", nil, zap.String("driver", cfg.Store.Driver))
	}

	// Cache
	var viewCache service.SiteViewCache
	if cfg.Redis.Addr != "" {
		redisClient, err := persistence.NewRedisClient(ctx, cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot connect Redis", err)
		}
		defer redisClient.Close()
		viewCache = persistence.NewRedisSiteViewCache(redisClient, cfg.Redis.TTL)
	}

	// Events
	var publisher service.EventPublisher = event.NewInlinePublisher(viewCache, appLogger)
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot init Kafka", err)
		}
		defer kafkaClient.Close()
		publisher = kafkaClient
	}

	// Media storage
	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize uploader", err)
	}

	// Use Cases
	getSiteUseCase := siteUC.NewGetSiteUseCase(siteRepo, viewCache, appLogger)
	rssUseCase := siteUC.NewRSSUseCase(siteRepo, cfg.App.PublicURL, appLogger)
	getPublicEntryUseCase := entryUC.NewGetPublicEntryUseCase(siteRepo)
	profileUseCase := profileUC.NewProfileUseCase(siteRepo, publisher, appLogger)
	applyOnboardingUseCase := onboardingUC.NewApplyOnboardingUseCase(siteRepo, publisher, appLogger)
	analyzeCVUseCase := onboardingUC.NewAnalyzeCVUseCase(cfg.Onboarding.MaxUploadBytes, appLogger)
	createCategoryUseCase := categoryUC.NewCreateCategoryUseCase(siteRepo, publisher, appLogger)
	listCategoriesUseCase := categoryUC.NewListCategoriesUseCase(siteRepo)
	updateCategoryUseCase := categoryUC.NewUpdateCategoryUseCase(siteRepo, publisher, appLogger)
	deleteCategoryUseCase := categoryUC.NewDeleteCategoryUseCase(siteRepo, publisher, appLogger)
	createEntryUseCase := entryUC.NewCreateEntryUseCase(siteRepo, publisher, appLogger)
	listEntriesUseCase := entryUC.NewListEntriesUseCase(siteRepo)
	updateEntryUseCase := entryUC.NewUpdateEntryUseCase(siteRepo, publisher, appLogger)
	deleteEntryUseCase := entryUC.NewDeleteEntryUseCase(siteRepo, publisher, appLogger)
	homepageUseCase := homepageUC.NewHomepageUseCase(siteRepo, publisher, appLogger)
	messageUseCase := messageUC.NewMessageUseCase(siteRepo, publisher, appLogger)
	uploadMediaUseCase := mediaUC.NewUploadMediaUseCase(uploader, appLogger)
	backupUseCase := backupUC.NewBackupUseCase(siteRepo, uploader, appLogger)

	// HTTP Handlers
	handlers := httpAdapter.Handlers{
		Site:       httpAdapter.NewSiteHandler(getSiteUseCase, getPublicEntryUseCase, rssUseCase, appLogger),
		Onboarding: httpAdapter.NewOnboardingHandler(applyOnboardingUseCase, analyzeCVUseCase, appLogger),
		Profile:    httpAdapter.NewProfileHandler(profileUseCase, appLogger),
		Category: httpAdapter.NewCategoryHandler(
			createCategoryUseCase,
			listCategoriesUseCase,
			updateCategoryUseCase,
			deleteCategoryUseCase,
			appLogger,
		),
		Entry: httpAdapter.NewEntryHandler(
			createEntryUseCase,
			listEntriesUseCase,
			updateEntryUseCase,
			deleteEntryUseCase,
			listCategoriesUseCase,
			appLogger,
		),
		Homepage: httpAdapter.NewHomepageHandler(homepageUseCase, appLogger),
		Message:  httpAdapter.NewMessageHandler(messageUseCase, appLogger),
		Media:    httpAdapter.NewMediaHandler(uploadMediaUseCase, backupUseCase, appLogger),
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpAdapter.NewRouter(handlers, appLogger)

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port), zap.String("store", cfg.Store.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}
}
