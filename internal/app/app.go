package app

import (
	"context"
	"fmt"

	"grindup_backend/database"
	"grindup_backend/internal/auth"
	"grindup_backend/internal/config"
	"grindup_backend/internal/email"
	"grindup_backend/internal/handlers"
	"grindup_backend/internal/logger"
	"grindup_backend/internal/middleware"
	"grindup_backend/internal/models"
	"grindup_backend/internal/repositories"
	"grindup_backend/internal/routes"
	"grindup_backend/internal/services"
	"grindup_backend/internal/storage"
	"grindup_backend/internal/validator"
	"grindup_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	ctx := context.Background()
	jobWorker := workers.NewJobWorker(
		repositories.NewJobRepository(gormDB),
		repositories.NewRefreshTokenRepository(gormDB),
	)
	jobWorker.Start(ctx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:     cfg.Storage.Type,
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	provider := email.NewSMTPProvider(cfg)
	serviceContainer := services.NewServiceContainer(gormDB, provider, storageInstance)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, container.Auth),
		ProfileHandler:      handlers.NewProfileHandler(baseHandler, container.Profile),
		JobHandler:          handlers.NewJobHandler(baseHandler, container.Job),
		InvitationHandler:   handlers.NewInvitationHandler(baseHandler, container.Invitation),
		ApplicationHandler:  handlers.NewApplicationHandler(baseHandler, container.Application),
		AdminHandler:        handlers.NewAdminHandler(baseHandler, container.Admin),
		AnalyticsHandler:    handlers.NewAnalyticsHandler(baseHandler, container.Analytics),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, container.Notification),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

// seedFirstAdmin guarantees one admin account exists so approval and
// analytics endpoints are reachable on a fresh install.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("role = ?", models.UserRoleAdmin).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.FirstAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:        cfg.FirstAdminEmail,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
		IsVerified:   true,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}
	logger.Info("First admin user seeded", "email", cfg.FirstAdminEmail)
	return nil
}
