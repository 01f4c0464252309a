package handlers

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"jobboard_backend/internal/appErrors"
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/imageprocessor"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Extensions accepted for profile photos.
var allowedPhotoExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	uploads     storage.Storage
	images      *imageprocessor.Processor
	maxUpload   int64
	tokens      *auth.TokenManager
	userRepo    repositories.UserRepository
}

func NewAuthHandler(
	base *BaseHandler,
	authService services.AuthService,
	uploads storage.Storage,
	images *imageprocessor.Processor,
	maxUpload int64,
	tokens *auth.TokenManager,
	userRepo repositories.UserRepository,
) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		uploads:     uploads,
		images:      images,
		maxUpload:   maxUpload,
		tokens:      tokens,
		userRepo:    userRepo,
	}
}

// RegisterRoutes registers the authentication routes.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/refresh", h.Refresh)
	}

	protected := rg.Group("/auth")
	protected.Use(middleware.AuthMiddleware(h.tokens, h.userRepo))
	{
		protected.POST("/logout", h.Logout)
	}
}

// Register handles multipart registration with an optional photo.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	if raw := c.PostForm("experiences"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Experiences); err != nil {
			appErrors.HandleError(c, appErrors.NewBadRequestError("Invalid experiences format"))
			return
		}
	}

	file, err := c.FormFile("photo")
	if err == nil && file != nil {
		photoURL, uploadErr := h.savePhoto(c, file)
		if uploadErr != nil {
			h.HandleServiceError(c, uploadErr)
			return
		}
		req.Photo = photoURL
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	// The body is optional: logout without a refresh token only ends
	// the client session.
	var req dto.LogoutRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.authService.Logout(req.RefreshToken); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// savePhoto validates and stores an uploaded photo, returning its
// public URL.
func (h *AuthHandler) savePhoto(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if file.Size > h.maxUpload {
		return "", appErrors.NewBadRequestError(fmt.Sprintf("File too large (max %d bytes)", h.maxUpload))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedPhotoExts[ext] {
		return "", appErrors.NewBadRequestError("Only image files are allowed")
	}

	src, err := file.Open()
	if err != nil {
		return "", appErrors.InternalError(err)
	}
	defer src.Close()

	// Reject anything that does not decode as an image and normalize
	// oversized avatars before they reach storage.
	processed, err := h.images.Process(src)
	if err != nil {
		return "", appErrors.NewBadRequestError("Invalid image file")
	}

	name := uuid.NewString() + "-" + filepath.Base(file.Filename)
	if err := h.uploads.Save(c.Request.Context(), name, processed); err != nil {
		return "", appErrors.InternalError(err)
	}

	return h.uploads.GetURL(name), nil
}
