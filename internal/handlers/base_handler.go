package handlers

import (
	"jobboard_backend/internal/appErrors"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{
		validator: v,
	}
}

// BindAndValidateJSON binds the JSON body and runs struct validation.
// On failure the error response has already been written.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWarn(c.Request.Context(), "Failed to bind JSON body", "error", err.Error(), "path", c.Request.URL.Path)
		appErrors.HandleError(c, appErrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}
	return h.validate(c, obj)
}

// BindAndValidateForm binds urlencoded/multipart form fields.
func (h *BaseHandler) BindAndValidateForm(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBind(obj); err != nil {
		logger.CtxWarn(c.Request.Context(), "Failed to bind form body", "error", err.Error(), "path", c.Request.URL.Path)
		appErrors.HandleError(c, appErrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}
	return h.validate(c, obj)
}

func (h *BaseHandler) validate(c *gin.Context, obj interface{}) bool {
	err := h.validator.Validate(obj)
	if err == nil {
		return true
	}

	ctx := c.Request.Context()
	if vErr, ok := err.(*validator.ValidationError); ok {
		logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
		appErrors.HandleError(c, appErrors.ValidationError(vErr.Errors))
	} else {
		logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
		appErrors.HandleError(c, appErrors.InternalError(err))
	}
	return false
}

// HandleServiceError maps a service error onto the HTTP response.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *appErrors.AppError
	if appErrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "Service error",
			"error", appErr.Message,
			"code", appErr.Code,
			"path", c.Request.URL.Path,
		)
		appErrors.HandleError(c, appErr)
		return
	}

	logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
	appErrors.HandleError(c, appErrors.InternalError(err))
}

// GetAndAuthorizeUserID pulls the authenticated user id from context.
func (h *BaseHandler) GetAndAuthorizeUserID(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("userID")
	if !exists {
		appErrors.HandleError(c, appErrors.ErrUnauthorized)
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		appErrors.HandleError(c, appErrors.NewUnauthorizedError("Invalid user ID in context"))
		return "", false
	}
	return userID, true
}
