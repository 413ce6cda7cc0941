package middleware

import (
	"errors"
	"strings"

	"yournews/helper"
	"yournews/logging"
	"yournews/models"
	"yournews/repositories"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

const (
	UserIDKey = "user_id"
	RoleKey   = "role"
	ViewerKey = "viewer"
	UserKey   = "user"
)

type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates the bearer token and loads the caller from the
// user store, so role changes apply to tokens already issued.
func AuthMiddleware(h *helper.HTTPHelper, secret []byte, users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			h.SendUnauthorizedError(c, "Authorization header required")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			h.SendUnauthorizedError(c, "Bearer token required")
			c.Abort()
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			h.SendUnauthorizedError(c, "Token is not valid")
			c.Abort()
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.SendUnauthorizedError(c, "User no longer exists")
			} else {
				h.SendError(c, models.NewInternalError(err, "failed to load user %d", claims.UserID))
			}
			c.Abort()
			return
		}

		logger := logging.FromContext(c.Request.Context()).With().Uint("user_id", user.ID).Logger()
		c.Request = c.Request.WithContext(logging.AttachLoggerToContext(c.Request.Context(), &logger))

		c.Set(UserIDKey, user.ID)
		c.Set(RoleKey, user.Role)
		c.Set(ViewerKey, user.Viewer())
		c.Set(UserKey, user)

		c.Next()
	}
}

// RequireRole lets the request through only for the given roles.
func RequireRole(h *helper.HTTPHelper, roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(RoleKey)
		if !exists {
			h.SendUnauthorizedError(c, "User role not found")
			c.Abort()
			return
		}

		userRole, _ := value.(models.UserRole)
		for _, role := range roles {
			if userRole == role {
				c.Next()
				return
			}
		}

		h.SendForbiddenError(c, "Insufficient permissions")
		c.Abort()
	}
}

// GetViewer returns the caller resolved by AuthMiddleware.
func GetViewer(c *gin.Context) models.Viewer {
	if value, exists := c.Get(ViewerKey); exists {
		if viewer, ok := value.(models.Viewer); ok {
			return viewer
		}
	}
	return models.Viewer{}
}

func GetUser(c *gin.Context) *models.User {
	if value, exists := c.Get(UserKey); exists {
		if user, ok := value.(*models.User); ok {
			return user
		}
	}
	return nil
}
