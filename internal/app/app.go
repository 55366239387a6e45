package app

import (
	"fmt"

	"sentosa_backend/database"
	"sentosa_backend/internal/config"
	"sentosa_backend/internal/handlers"
	"sentosa_backend/internal/logger"
	"sentosa_backend/internal/middleware"
	"sentosa_backend/internal/repositories"
	"sentosa_backend/internal/routes"
	"sentosa_backend/internal/services"
	"sentosa_backend/internal/storage"
	"sentosa_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	if cfg.JWT.Secret == "" {
		logger.Fatal("JWT_SECRET is not configured; refusing to start")
	}

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

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires storage, services, handlers and routes onto a gin
// engine. Shared with the integration test server.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	serviceContainer := initializeServices(storageInstance)
	appHandlers := initializeHandlers(serviceContainer, storageInstance)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(storageInstance storage.Storage) *services.ServiceContainer {
	staffRepo := repositories.NewStaffRepository()
	newsRepo := repositories.NewNewsRepository()
	jobRepo := repositories.NewJobRepository()

	return &services.ServiceContainer{
		AuthService: services.NewAuthService(staffRepo),
		NewsService: services.NewNewsService(newsRepo, storageInstance),
		JobService:  services.NewJobService(jobRepo),
	}
}

func initializeHandlers(container *services.ServiceContainer, storageInstance storage.Storage) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler: handlers.NewAuthHandler(baseHandler, container.AuthService),
		NewsHandler: handlers.NewNewsHandler(baseHandler, container.NewsService),
		JobHandler:  handlers.NewJobHandler(baseHandler, container.JobService),
		FileHandler: handlers.NewFileHandler(baseHandler, storageInstance),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
