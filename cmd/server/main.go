package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"sahaaya.backend/internal/config"
	"sahaaya.backend/internal/infrastructure/datasources/postgres"
	"sahaaya.backend/internal/infrastructure/email"
	"sahaaya.backend/internal/infrastructure/gateway"
	"sahaaya.backend/internal/infrastructure/jobs"
	"sahaaya.backend/internal/infrastructure/repositories"
	"sahaaya.backend/internal/infrastructure/storage"
	"sahaaya.backend/internal/interfaces/http/handlers"
	"sahaaya.backend/internal/interfaces/http/middleware"
	"sahaaya.backend/internal/usecases"
	"sahaaya.backend/pkg/jwt"
	"sahaaya.backend/pkg/logger"
	"sahaaya.backend/pkg/metrics"
	"sahaaya.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openSQL    = postgres.NewConnection
	openGorm   = func(conn *sql.DB) (*gorm.DB, error) {
		return gorm.Open(gormpostgres.New(gormpostgres.Config{
			Conn:                 conn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newAssetStore = storage.NewCloudinaryStore
	runServer     = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	sqlDB, err := openSQL(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer sqlDB.Close()

	db, err := openGorm(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to initialize ORM: %w", err)
	}
	log.Println("✅ Connected to PostgreSQL via GORM")

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	campaignRepo := repositories.NewCampaignRepository(db)
	donationRepo := repositories.NewDonationRepository(db)
	subscriptionRepo := repositories.NewSubscriptionRepository(db)
	eventRepo := repositories.NewEventRepository(db)
	volunteerRepo := repositories.NewVolunteerRepository(db)
	contactRepo := repositories.NewContactRepository(db)
	blogRepo := repositories.NewBlogRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	fileRepo := repositories.NewFileRepository(db)
	settingsRepo := repositories.NewSettingsRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize payment gateway client
	gatewayClient := gateway.NewClient(gateway.Config{
		KeyID:     cfg.Razorpay.KeyID,
		KeySecret: cfg.Razorpay.KeySecret,
		BaseURL:   cfg.Razorpay.BaseURL,
	})

	// Initialize mail pipeline: ZeptoMail sender behind a Redis outbox
	mailer := email.NewZeptoMailer(email.Config{
		APIURL:      cfg.Email.APIURL,
		APIKey:      cfg.Email.APIKey,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
	})
	mailDispatcher := email.NewDispatcher(mailer, redis.GetClient())
	var mailWorker *email.Worker
	if queue := redis.GetClient(); queue != nil {
		mailWorker = email.NewWorker(mailer, queue)
		mailWorker.Start()
	}

	// Initialize asset store
	assetStore, err := newAssetStore(storage.Config{
		CloudName: cfg.Cloudinary.CloudName,
		APIKey:    cfg.Cloudinary.APIKey,
		APISecret: cfg.Cloudinary.APISecret,
		Folder:    cfg.Cloudinary.Folder,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize asset store: %w", err)
	}

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService)
	campaignUsecase := usecases.NewCampaignUsecase(campaignRepo, donationRepo, userRepo, mailDispatcher)
	donationUsecase := usecases.NewDonationUsecase(donationRepo, campaignRepo, userRepo, settingsRepo, uow, gatewayClient, mailDispatcher)
	subscriptionUsecase := usecases.NewSubscriptionUsecase(subscriptionRepo, settingsRepo, gatewayClient)
	eventUsecase := usecases.NewEventUsecase(eventRepo, userRepo, mailDispatcher)
	volunteerUsecase := usecases.NewVolunteerUsecase(volunteerRepo, userRepo, mailDispatcher)
	contactUsecase := usecases.NewContactUsecase(contactRepo, mailDispatcher)
	blogUsecase := usecases.NewBlogUsecase(blogRepo)
	notificationUsecase := usecases.NewNotificationUsecase(notificationRepo, userRepo, mailDispatcher)
	fileUsecase := usecases.NewFileUsecase(fileRepo, assetStore)
	settingsUsecase := usecases.NewSettingsUsecase(settingsRepo)
	adminUsecase := usecases.NewAdminUsecase(userRepo, campaignRepo, donationRepo, eventRepo, volunteerRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	campaignHandler := handlers.NewCampaignHandler(campaignUsecase)
	donationHandler := handlers.NewDonationHandler(donationUsecase)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionUsecase)
	eventHandler := handlers.NewEventHandler(eventUsecase)
	volunteerHandler := handlers.NewVolunteerHandler(volunteerUsecase)
	contactHandler := handlers.NewContactHandler(contactUsecase)
	blogHandler := handlers.NewBlogHandler(blogUsecase)
	notificationHandler := handlers.NewNotificationHandler(notificationUsecase)
	fileHandler := handlers.NewFileHandler(fileUsecase)
	settingsHandler := handlers.NewSettingsHandler(settingsUsecase)
	adminHandler := handlers.NewAdminHandler(adminUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reconcileJob := jobs.NewCampaignReconcileJob(campaignRepo, donationRepo)
	go reconcileJob.Start(ctx)
	eventStatusJob := jobs.NewEventStatusRefreshJob(eventRepo)
	go eventStatusJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(metrics.Middleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	r.GET("/metrics", metrics.Handler())
	registerAPIV1Routes(r, routeDeps{
		authHandler:         authHandler,
		campaignHandler:     campaignHandler,
		donationHandler:     donationHandler,
		subscriptionHandler: subscriptionHandler,
		eventHandler:        eventHandler,
		volunteerHandler:    volunteerHandler,
		contactHandler:      contactHandler,
		blogHandler:         blogHandler,
		notificationHandler: notificationHandler,
		fileHandler:         fileHandler,
		settingsHandler:     settingsHandler,
		adminHandler:        adminHandler,
		authMiddleware:      authMiddleware,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		reconcileJob.Stop()
		eventStatusJob.Stop()
		if mailWorker != nil {
			mailWorker.Stop()
		}
		cancel()
	}()

	// Start server
	log.Printf("🚀 Sahaaya Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
