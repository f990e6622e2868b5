package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"shoutout_backend/database"
	"shoutout_backend/internal/auth"
	"shoutout_backend/internal/config"
	"shoutout_backend/internal/email"
	"shoutout_backend/internal/handlers"
	"shoutout_backend/internal/logger"
	"shoutout_backend/internal/middleware"
	"shoutout_backend/internal/models"
	"shoutout_backend/internal/repositories"
	"shoutout_backend/internal/routes"
	"shoutout_backend/internal/services"
	"shoutout_backend/internal/storage"
	"shoutout_backend/internal/validator"
	"shoutout_backend/internal/workers"
)

// Run boots the whole service: config, database, migrations, admin
// seeding, background workers and the HTTP server.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("database connection failed", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("failed to get *sql.DB from GORM", "error", err)
	}
	if err := sqlDB.Ping(); err != nil {
		logger.Fatal("database unavailable", "error", err)
	}
	logger.Info("database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("failed to seed first admin user", "error", err)
	}

	ginRouter, repos := SetupRouter(cfg, gormDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	startWorkers(ctx, cfg, repos)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("server startup error", "error", err)
	}
}

// SetupRouter assembles the full HTTP stack. Returned repositories are
// shared with the background workers.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, *repositories.RepositoryContainer) {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		UseSSL:     cfg.Storage.UseSSL,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	logger.Info("storage initialized", "type", cfg.Storage.Type)

	repos := repositories.NewRepositoryContainer(gormDB)
	serviceContainer := services.NewServiceContainer(repos, storageInstance, newEmailProvider(cfg))
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter, repos
}

func newEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP not configured, outgoing mail is disabled")
		return &MockEmailProvider{}
	}

	provider, err := email.NewSMTPProvider(&email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
		UseTLS:    cfg.Email.UseTLS,
	})
	if err != nil {
		logger.Fatal("failed to initialize email provider", "error", err)
	}
	return provider
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

func startWorkers(ctx context.Context, cfg *config.Config, repos *repositories.RepositoryContainer) {
	orderWorker := workers.NewOrderWorker(repos.Orders, repos.Celebrities, cfg)
	orderWorker.Start(ctx)

	payoutWorker := workers.NewPayoutWorker(repos.Orders, repos.RefreshTokens)
	payoutWorker.Start(ctx)

	logger.Info("background workers started")
}

// seedFirstAdmin creates the bootstrap admin account from config if no
// user with that email exists yet.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		logger.Warn("first admin credentials not configured, skipping admin seeding")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		err := tx.Where("email = ?", cfg.FirstAdminEmail).First(&existing).Error
		if err == nil {
			logger.Info("admin user already exists", "email", cfg.FirstAdminEmail)
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hash, err := auth.HashPassword(cfg.FirstAdminPassword)
		if err != nil {
			return err
		}
		admin := models.User{
			Email:        cfg.FirstAdminEmail,
			PasswordHash: hash,
			Name:         "Administrator",
			Role:         models.UserRoleAdmin,
			Status:       models.UserStatusActive,
			IsVerified:   true,
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}
		logger.Info("first admin user created", "email", cfg.FirstAdminEmail)
		return nil
	})
}
