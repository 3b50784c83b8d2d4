package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	catalogv1 "github.com/fekuna/omnipos-catalog-service/api/catalog/v1"
	"github.com/fekuna/omnipos-catalog-service/config"
	"github.com/fekuna/omnipos-catalog-service/internal/catalogapi"
	"github.com/fekuna/omnipos-catalog-service/internal/draft"
	"github.com/fekuna/omnipos-catalog-service/pkg/broker"
	"github.com/fekuna/omnipos-catalog-service/pkg/cache"
	"github.com/fekuna/omnipos-catalog-service/pkg/database/postgres"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/fekuna/omnipos-catalog-service/pkg/middleware"
	"github.com/fekuna/omnipos-catalog-service/pkg/search"

	catH "github.com/fekuna/omnipos-catalog-service/internal/category/handler"
	catRepoPkg "github.com/fekuna/omnipos-catalog-service/internal/category/repository"
	catUCPkg "github.com/fekuna/omnipos-catalog-service/internal/category/usecase"

	draftH "github.com/fekuna/omnipos-catalog-service/internal/draft/handler"
	draftRepoPkg "github.com/fekuna/omnipos-catalog-service/internal/draft/repository"
	draftUCPkg "github.com/fekuna/omnipos-catalog-service/internal/draft/usecase"

	prodH "github.com/fekuna/omnipos-catalog-service/internal/product/handler"
	prodListenerPkg "github.com/fekuna/omnipos-catalog-service/internal/product/listener"
	prodRepoPkg "github.com/fekuna/omnipos-catalog-service/internal/product/repository"
	prodUCPkg "github.com/fekuna/omnipos-catalog-service/internal/product/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Initialize Repositories
	apiClient := catalogapi.NewClient(catalogapi.Config{
		BaseURL:      cfg.CatalogAPI.BaseURL,
		FallbackURLs: cfg.CatalogAPI.FallbackURLs,
		Timeout:      cfg.CatalogAPI.Timeout,
		MaxRetries:   cfg.CatalogAPI.MaxRetries,
	}, appLogger.Named("catalogapi"))

	catRepo := catRepoPkg.NewAPIRepository(apiClient)
	prodRepo := prodRepoPkg.NewAPIRepository(apiClient)
	draftRepo := draftRepoPkg.NewPGRepository(db)

	migrateCtx, migrateCancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = draftRepo.Migrate(migrateCtx)
	migrateCancel()
	if err != nil {
		appLogger.Fatal("Could not migrate draft table", zap.Error(err))
	}

	// 5. Initialize Redis
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))

	// 5.5 Initialize Kafka Producer and Consumer
	kafkaProducer := broker.NewProducer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.ProductTopic,
	})
	defer kafkaProducer.Close()

	kafkaConsumer := broker.NewConsumer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.OrderTopic,
		GroupID: cfg.Kafka.GroupID,
	})
	defer kafkaConsumer.Close()
	appLogger.Info("Connected to Kafka",
		zap.Strings("brokers", cfg.Kafka.Brokers),
		zap.String("publish_topic", cfg.Kafka.ProductTopic),
		zap.String("consume_topic", cfg.Kafka.OrderTopic),
	)

	// 5.8 Initialize Elasticsearch
	var indexer search.Indexer
	esClient, err := search.NewClient(&search.Config{
		Addresses: cfg.Elastic.Addresses,
		Username:  cfg.Elastic.Username,
		Password:  cfg.Elastic.Password,
	})
	if err != nil {
		// Search falls back to filtering the API list.
		appLogger.Warn("Could not connect to Elasticsearch", zap.Error(err))
	} else {
		indexer = esClient
		appLogger.Info("Connected to Elasticsearch", zap.Strings("addresses", cfg.Elastic.Addresses))
	}

	// 6. Initialize UseCases
	catUC := catUCPkg.NewCategoryUseCase(catRepo, redisClient, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, redisClient, indexer, kafkaProducer, appLogger)
	draftUC := draftUCPkg.NewDraftUseCase(draftRepo, prodUC, redisClient, cfg.Draft.LockTTL, appLogger)

	// 6.5 Initialize Listeners and background jobs
	orderListener := prodListenerPkg.NewOrderListener(kafkaConsumer, prodUC, appLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go orderListener.Start(ctx)
	go purgeDrafts(ctx, draftUC, cfg.Draft, appLogger)

	// 7. Initialize Handlers
	catHandler := catH.NewCategoryHandler(catUC, appLogger)
	prodHandler := prodH.NewProductHandler(prodUC, appLogger)
	draftHandler := draftH.NewDraftHandler(draftUC, appLogger)

	// 8. Start gRPC Server
	port := cfg.Server.GRPCPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	lis, err := net.Listen("tcp", port)
	if err != nil {
		appLogger.Fatal("failed to listen", zap.Error(err))
	}

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			middleware.RecoveryInterceptor(appLogger),
			middleware.ContextInterceptor(),
			middleware.LoggingInterceptor(appLogger),
		),
	)

	// Register Services
	catalogv1.RegisterCategoryServiceServer(grpcServer, catHandler)
	catalogv1.RegisterProductServiceServer(grpcServer, prodHandler)
	catalogv1.RegisterDraftServiceServer(grpcServer, draftHandler)

	appLogger.Info("Starting gRPC server", zap.String("port", port))

	// Graceful Shutdown
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	cancel()
	grpcServer.GracefulStop()
	appLogger.Info("Server stopped")
}

// purgeDrafts removes abandoned drafts until ctx is done.
func purgeDrafts(ctx context.Context, uc draft.UseCase, cfg config.DraftConfig, log logger.ZapLogger) {
	if cfg.PurgeInterval <= 0 || cfg.MaxAge <= 0 {
		return
	}
	ticker := time.NewTicker(cfg.PurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := uc.PurgeStale(ctx, cfg.MaxAge)
			if err != nil {
				log.Error("failed to purge stale drafts", zap.Error(err))
				continue
			}
			if n > 0 {
				log.Info("purged stale drafts", zap.Int64("count", n))
			}
		}
	}
}
