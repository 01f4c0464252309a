package middleware

import (
	"strings"

	"jobboard_backend/internal/appErrors"
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the request identity from a Bearer access
// token. The decoded user id must still exist in the user store. The
// old deployments' trusted user-id header is deliberately not honored.
func AuthMiddleware(tokens *auth.TokenManager, userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortWith(c, appErrors.ErrUnauthorized)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.ParseAccessToken(tokenStr)
		if err != nil {
			abortWith(c, appErrors.ErrInvalidToken)
			return
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			abortWith(c, appErrors.NewUnauthorizedError("User not found"))
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Set("userID", user.ID)
		c.Set("role", user.Role)
		c.Next()
	}
}

// RequireRole gates a route group to one role. Runs after AuthMiddleware.
func RequireRole(required models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			abortWith(c, appErrors.ErrForbidden)
			return
		}

		role, ok := roleVal.(models.UserRole)
		if !ok {
			roleStr, isString := roleVal.(string)
			if !isString {
				abortWith(c, appErrors.ErrForbidden)
				return
			}
			role = models.UserRole(roleStr)
		}

		if role != required {
			abortWith(c, appErrors.ErrForbidden)
			return
		}
		c.Next()
	}
}

func abortWith(c *gin.Context, err *appErrors.AppError) {
	c.AbortWithStatusJSON(err.HTTPCode, appErrors.ErrorResponse{Error: err})
}
