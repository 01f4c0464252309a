package app

import (
	"fmt"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/filestore"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run loads the configuration, wires the application together and
// starts the HTTP server.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	repos, err := OpenRepositories(cfg)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}

	router, err := SetupRouter(cfg, repos)
	if err != nil {
		return fmt.Errorf("setup router: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server",
		"addr", addr,
		"env", cfg.Server.Env,
		"driver", cfg.Database.Driver,
	)

	return router.Run(addr)
}

// OpenRepositories selects the storage backend from the configuration.
func OpenRepositories(cfg *config.Config) (*repositories.Repositories, error) {
	switch cfg.Database.Driver {
	case "postgres":
		db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
			TranslateError: true,
		})
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := repositories.AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		return repositories.NewGormRepositories(db), nil
	case "jsonfile":
		return filestore.New(cfg.Database.DataDir)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}

// SetupRouter builds the gin engine with all middleware, routes and
// handlers. Tests reuse it against a file-backed repository set.
func SetupRouter(cfg *config.Config, repos *repositories.Repositories) (*gin.Engine, error) {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	uploads, err := storage.NewStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("init upload storage: %w", err)
	}

	tokens := auth.NewTokenManager(cfg)

	container := &services.ServiceContainer{
		AuthService: services.NewAuthService(repos.Users, repos.RefreshTokens, tokens),
		UserService: services.NewUserService(repos.Users),
		JobService:  services.NewJobService(repos.Jobs, repos.Users, repos.Interests),
	}

	appHandlers := handlers.NewAppHandlers(cfg, container, repos, tokens, uploads)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())

	router.Static(cfg.Storage.BaseURL, cfg.Storage.BasePath)

	routes.RegisterRoutes(router, appHandlers)

	return router, nil
}
