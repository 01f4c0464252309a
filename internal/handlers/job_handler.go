package handlers

import (
	"net/http"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
	tokens     *auth.TokenManager
	userRepo   repositories.UserRepository
}

func NewJobHandler(
	base *BaseHandler,
	jobService services.JobService,
	tokens *auth.TokenManager,
	userRepo repositories.UserRepository,
) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
		tokens:      tokens,
		userRepo:    userRepo,
	}
}

// RegisterRoutes registers the job routes. Every route, reads
// included, requires an authenticated caller.
func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	jobs.Use(middleware.AuthMiddleware(h.tokens, h.userRepo))
	{
		jobs.GET("", h.ListActive)
		jobs.GET("/:jobId", h.Get)
		jobs.POST("", middleware.RequireRole(models.UserRoleEmployer), h.Create)
		jobs.PATCH("/:jobId/close", h.Close)
		jobs.POST("/:jobId/interest", h.ExpressInterest)
		jobs.GET("/:jobId/applicants", middleware.RequireRole(models.UserRoleEmployer), h.ListApplicants)
	}
}

func (h *JobHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.CreateJob(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Job posted successfully",
		"job":     job,
	})
}

func (h *JobHandler) ListActive(c *gin.Context) {
	jobs, err := h.jobService.ListActiveJobs()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.jobService.GetJob(c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"job": job})
}

func (h *JobHandler) Close(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	job, err := h.jobService.CloseJob(c.Param("jobId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Job closed successfully",
		"job":     job,
	})
}

func (h *JobHandler) ExpressInterest(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	interest, err := h.jobService.ExpressInterest(c.Param("jobId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.InterestResponse{
		Message:  "Interest expressed successfully",
		Interest: interest,
	})
}

func (h *JobHandler) ListApplicants(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	applicants, err := h.jobService.ListApplicants(c.Param("jobId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applicants": applicants})
}
