package routes

import (
	"net/http"

	"jobboard_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every API route group on the router.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers) {
	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		h.Auth.RegisterRoutes(api)
		h.Job.RegisterRoutes(api)
		h.User.RegisterRoutes(api)
	}
}
