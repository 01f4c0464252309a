package handlers

import (
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/imageprocessor"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/storage"
	"jobboard_backend/internal/validator"
)

// AppHandlers bundles every HTTP handler of the application.
type AppHandlers struct {
	Auth *AuthHandler
	Job  *JobHandler
	User *UserHandler
}

func NewAppHandlers(
	cfg *config.Config,
	container *services.ServiceContainer,
	repos *repositories.Repositories,
	tokens *auth.TokenManager,
	uploads storage.Storage,
) *AppHandlers {
	base := NewBaseHandler(validator.New())
	images := imageprocessor.NewProcessor(cfg.Upload.ImageQuality, cfg.Upload.MaxDimension)

	return &AppHandlers{
		Auth: NewAuthHandler(base, container.AuthService, uploads, images, cfg.Upload.MaxSize, tokens, repos.Users),
		Job:  NewJobHandler(base, container.JobService, tokens, repos.Users),
		User: NewUserHandler(base, container.UserService, container.JobService, tokens, repos.Users),
	}
}
