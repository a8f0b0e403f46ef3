package main

import (
	"arogyanetra-service/internal/app/config"
	"arogyanetra-service/internal/app/delivery/http/controllers"
	"arogyanetra-service/internal/app/delivery/http/middlewares"
	"arogyanetra-service/internal/app/delivery/http/routers"
	"arogyanetra-service/internal/app/drivers/database"
	"arogyanetra-service/internal/app/drivers/logger"
	"arogyanetra-service/internal/app/drivers/messaging"
	"arogyanetra-service/internal/app/drivers/storage"
	"arogyanetra-service/internal/app/services/core/auth"
	"arogyanetra-service/internal/app/services/core/cards"
	"arogyanetra-service/internal/app/services/core/documents"
	"arogyanetra-service/internal/app/services/core/identification"
	"arogyanetra-service/internal/app/services/core/profile"
	"arogyanetra-service/internal/app/services/core/registration"
	"arogyanetra-service/internal/app/services/core/roles"
	"arogyanetra-service/internal/app/services/core/session"
	"arogyanetra-service/internal/app/services/shared/auditqueue"
	"arogyanetra-service/internal/app/services/shared/locker"
	"arogyanetra-service/internal/app/services/shared/ratelimiter"
	"arogyanetra-service/internal/app/services/shared/redis"
	minioStorage "arogyanetra-service/internal/app/services/shared/storage"
	"arogyanetra-service/internal/app/services/shared/upstream"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "arogyanetra",
		Short:        "ArogyaNetra portal service",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create Mongo indexes and MinIO buckets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd.Context())
		},
	}
}

func runMigrate(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	internalConfig, driverConfig, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	mongoDB, err := database.NewMongoDB(ctx, driverConfig, log)
	if err != nil {
		return err
	}
	defer mongoDB.Client().Disconnect(context.Background())

	minioClient, err := storage.NewMinio(driverConfig, log)
	if err != nil {
		return err
	}

	stagingRepository := documents.NewStagingMongoRepository(mongoDB, internalConfig.MongoDB.StagingCollection)
	if err := stagingRepository.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure staging indexes: %w", err)
	}
	log.Info("Staging indexes ensured", zap.String("collection", internalConfig.MongoDB.StagingCollection))

	objectStorage := minioStorage.NewMinioStorage(minioClient)
	for _, bucket := range []string{internalConfig.Minio.StagingBucketName, internalConfig.Minio.CardBucketName} {
		if err := objectStorage.EnsureBucket(ctx, bucket); err != nil {
			return fmt.Errorf("ensure bucket %s: %w", bucket, err)
		}
		log.Info("Bucket ensured", zap.String("bucket_name", bucket))
	}
	return nil
}

func runServer() error {
	internalConfig, driverConfig, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		return err
	}

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Warn("Unknown timezone, keeping local time", zap.String("timezone", internalConfig.App.Timezone), zap.Error(err))
	} else {
		time.Local = location
	}

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelConnect()

	mongoDB, err := database.NewMongoDB(connectCtx, driverConfig, log)
	if err != nil {
		return err
	}
	redisClient, err := database.NewRedisClient(connectCtx, driverConfig, log)
	if err != nil {
		return err
	}
	minioClient, err := storage.NewMinio(driverConfig, log)
	if err != nil {
		return err
	}
	rabbitMQ, err := messaging.NewRabbitMQ(driverConfig, log)
	if err != nil {
		return err
	}

	chiRouter := chi.NewRouter()
	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Minio:          minioClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if err := bootstrapingTheApp(bootstrap); err != nil {
		return err
	}

	server := &http.Server{
		Addr:              listenAddr(internalConfig.App.Port),
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Server started", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	select {
	case <-c:
	case err := <-serverErr:
		log.Error("Server failed to start", zap.Error(err))
		_ = bootstrap.Shutdown(context.Background())
		return err
	}

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("Error closing connections", zap.Error(err))
		return err
	}

	fmt.Println("Server exiting")
	return nil
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	cfg := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, log)
	objectStorage := minioStorage.NewMinioStorage(bootstrap.Minio)
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, log)
	loginLimiter := ratelimiter.NewLoginLimiter(redisRepository, log, cfg.Login.MaxFailedAttempts, cfg.Login.LockoutInSeconds)

	auditPublisher, err := auditqueue.NewAuditPublisher(bootstrap.RabbitMQ, log, cfg.RabbitMQ.AuditQueue)
	if err != nil {
		return err
	}

	upstreamClient := upstream.NewArogyaNetraClient(upstream.Options{
		BaseUrl:        cfg.Upstream.BaseUrl,
		RequestTimeout: time.Duration(cfg.Upstream.RequestTimeoutInSeconds) * time.Second,
		UploadTimeout:  time.Duration(cfg.Upstream.DocumentUploadTimeoutInSeconds) * time.Second,
	}, log)

	// Session
	sessionService := session.NewSessionService(redisRepository, upstreamClient, log, cfg.JWT.Secret, cfg.App.SessionExpiredTimeInHours)

	// Authorization
	authorizer, err := roles.NewCasbinAuthorizer()
	if err != nil {
		return err
	}

	// Use cases
	authUsecase := auth.NewAuthUsecase(sessionService, upstreamClient, loginLimiter, auditPublisher, log)
	registrationUsecase := registration.NewRegistrationUsecase(redisRepository, upstreamClient, resourceLimiter, auditPublisher, cfg, log)
	profileUsecase := profile.NewProfileUsecase(redisRepository, sessionService, upstreamClient, auditPublisher, cfg, log)
	stagingRepository := documents.NewStagingMongoRepository(bootstrap.MongoDB, cfg.MongoDB.StagingCollection)
	documentUsecase := documents.NewDocumentUsecase(stagingRepository, objectStorage, redisRepository, sessionService, upstreamClient, auditPublisher, cfg, log)
	cardUsecase := cards.NewCardUsecase(sessionService, upstreamClient, lockService, objectStorage, auditPublisher, cfg, log)
	identificationUsecase := identification.NewIdentificationUsecase(sessionService, upstreamClient, auditPublisher, cfg, log)

	// Staging cleanup
	worker := documents.NewWorker(log, cfg, lockService, stagingRepository, objectStorage)
	worker.Start(context.Background())
	bootstrap.WorkerStop = worker.Stop

	// Delivery
	mw := middlewares.NewMiddlewares(log, sessionService, authorizer, lockService, cfg, routers.BasePath(cfg))
	routers.SetupRoutes(bootstrap.Router, cfg, mw, routers.Controllers{
		Auth:           controllers.NewAuthController(log, authUsecase),
		Registration:   controllers.NewRegistrationController(log, registrationUsecase, cfg),
		Profile:        controllers.NewProfileController(log, profileUsecase),
		Document:       controllers.NewDocumentController(log, documentUsecase, cfg),
		Card:           controllers.NewCardController(log, cardUsecase),
		Identification: controllers.NewIdentificationController(log, identificationUsecase, cfg),
		Health:         controllers.NewHealthController(cfg.App.Version),
	})

	return nil
}

func listenAddr(port string) string {
	if strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}
