package handlers

import (
	"net/http"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
	jobService  services.JobService
	tokens      *auth.TokenManager
	userRepo    repositories.UserRepository
}

func NewUserHandler(
	base *BaseHandler,
	userService services.UserService,
	jobService services.JobService,
	tokens *auth.TokenManager,
	userRepo repositories.UserRepository,
) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
		jobService:  jobService,
		tokens:      tokens,
		userRepo:    userRepo,
	}
}

// RegisterRoutes registers the user profile routes. Profiles carry
// email and phone, so reads require an authenticated caller.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(middleware.AuthMiddleware(h.tokens, h.userRepo))
	{
		users.GET("/:userId", h.Get)
		users.GET("/:userId/jobs", h.ListJobs)
	}
}

func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userService.GetUser(c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *UserHandler) ListJobs(c *gin.Context) {
	jobs, err := h.jobService.ListJobsByUser(c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}
