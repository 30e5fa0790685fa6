package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/config"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/database"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/handler"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/middleware"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/models"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/repository"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/router"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/service"
	cloud "github.com/BounAbdallah/suivi-insertion-simplon-senegal/pkg/cloudinary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Learner{},
		&models.Company{},
		&models.JobOffer{},
		&models.Application{},
		&models.Event{},
		&models.EventParticipant{},
		&models.InsertionTracking{},
		&models.Document{},
		&models.ActivityLog{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	uploader, err := cloud.New(cloud.Config{
		CloudName: cfg.CloudinaryCloudName,
		APIKey:    cfg.CloudinaryAPIKey,
		APISecret: cfg.CloudinaryAPISecret,
		Folder:    cfg.CloudinaryUploadFolder,
	}, logger)
	if err != nil {
		log.Fatalf("failed to create cloudinary client: %v", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	authz := service.NewAuthorizer()
	txRunner := service.NewTxRunner(db)

	userRepo := repository.NewUserRepository(db)
	learnerRepo := repository.NewLearnerRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	jobOfferRepo := repository.NewJobOfferRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	eventRepo := repository.NewEventRepository(db)
	participantRepo := repository.NewParticipantRepository(db)
	trackingRepo := repository.NewTrackingRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	activityRepo := repository.NewActivityLogRepository(db)

	authService := service.NewAuthService(userRepo, learnerRepo, companyRepo, validate, txRunner, cfg.JWTSecret, cfg.JWTExpiry, logger)
	activityService := service.NewActivityService(activityRepo, authz, validate, logger)
	userService := service.NewUserService(userRepo, authz, validate, activityService, logger)
	learnerService := service.NewLearnerService(learnerRepo, trackingRepo, authz, validate, txRunner, logger)
	trackingService := service.NewTrackingService(trackingRepo, learnerRepo, authz, validate, txRunner, logger)
	companyService := service.NewCompanyService(companyRepo, authz, validate, logger)
	jobOfferService := service.NewJobOfferService(jobOfferRepo, companyRepo, applicationRepo, authz, validate, logger)
	applicationService := service.NewApplicationService(applicationRepo, jobOfferRepo, learnerRepo, authz, validate, txRunner, logger)
	eventService := service.NewEventService(eventRepo, participantRepo, learnerRepo, authz, validate, txRunner, logger)
	documentService := service.NewDocumentService(documentRepo, uploader, authz, validate, cfg.UploadMaxSizeMB, logger)
	statsService := service.NewStatsService(statsRepo, authz, redisClient, cfg.StatsCacheTTL, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:        handler.NewAuthHandler(authService, logger),
		UserHandler:        handler.NewUserHandler(userService, logger),
		LearnerHandler:     handler.NewLearnerHandler(learnerService, trackingService, logger),
		CompanyHandler:     handler.NewCompanyHandler(companyService, logger),
		JobOfferHandler:    handler.NewJobOfferHandler(jobOfferService, applicationService, logger),
		ApplicationHandler: handler.NewApplicationHandler(applicationService, logger),
		EventHandler:       handler.NewEventHandler(eventService, logger),
		DocumentHandler:    handler.NewDocumentHandler(documentService, logger),
		StatsHandler:       handler.NewStatsHandler(statsService, logger),
		ActivityHandler:    handler.NewActivityHandler(activityService, logger),
		JWTMiddleware:      middleware.JWTProtected(cfg.JWTSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
