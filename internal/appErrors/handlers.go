package appErrors

import (
	"net/http"

	"jobboard_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform error body: {"error": {code, message, details}}.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError writes an AppError to the gin response.
func HandleError(c *gin.Context, err *AppError) {
	if err.HTTPCode >= http.StatusInternalServerError {
		logger.CtxWithError(c.Request.Context(), "server error", err, "path", c.Request.URL.Path)
	}
	c.JSON(err.HTTPCode, ErrorResponse{Error: err})
}
