package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"go-jobtrack-backend/config"
	_ "go-jobtrack-backend/docs" // Important for Swagger
	v1 "go-jobtrack-backend/internal/delivery/http/v1"
	"go-jobtrack-backend/internal/repository/postgres"
	"go-jobtrack-backend/internal/usecase"
	"go-jobtrack-backend/pkg/database"
	"go-jobtrack-backend/pkg/email"
	"go-jobtrack-backend/pkg/logger"
	"go-jobtrack-backend/pkg/redis"
)

// @title           Job Tracking Backend API
// @version         1.0
// @description     Backend for a job application tracking system using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job tracking backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional, rate limiter and caches fall back without it)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, falling back to in-memory limits", "error", err)
	}

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	companyRepo := postgres.NewCompanyRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)
	educationRepo := postgres.NewEducationRepository(dbPool)
	experienceRepo := postgres.NewExperienceRepository(dbPool)
	notificationRepo := postgres.NewNotificationRepository(dbPool)
	notificationTypeRepo := postgres.NewNotificationTypeRepository(dbPool)

	// 6. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - job alerts will not be delivered")
	}

	// 7. Setup UseCases
	validate := validator.New()
	registrationUC := usecase.NewRegistrationUsecase(userRepo, companyRepo, validate)
	userUC := usecase.NewUserUsecase(userRepo)
	profileUC := usecase.NewProfileUsecase(educationRepo, experienceRepo, userRepo, validate)
	companyUC := usecase.NewCompanyUsecase(companyRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, companyRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, userRepo)
	skillUC := usecase.NewSkillUsecase(skillRepo)
	notificationUC := usecase.NewNotificationUsecase(
		notificationRepo, notificationTypeRepo, jobRepo, userRepo,
		emailService, redis.Client(), cfg.FrontendURL,
		time.Duration(cfg.EmailTimeoutSeconds)*time.Second,
	)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		RegistrationUC: registrationUC,
		UserUC:         userUC,
		ProfileUC:      profileUC,
		CompanyUC:      companyUC,
		JobUC:          jobUC,
		ApplicationUC:  applicationUC,
		SkillUC:        skillUC,
		NotificationUC: notificationUC,
		Config:         cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
