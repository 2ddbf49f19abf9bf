package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Formlink/config"
	"github.com/lshigami/Formlink/internal/auth"
	"github.com/lshigami/Formlink/internal/dto"
)

const (
	ctxUserID = "user_id"
	ctxRole   = "role"
)

// Auth verifies the Bearer access token and stores the principal's id and
// role in the request context. Every /api route sits behind this.
func Auth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid Authorization header"})
			return
		}

		claims, err := auth.ParseToken(parts[1], []byte(cfg.Auth.JWTSecret))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

// Principal returns the authenticated user's id and role. Valid only behind
// the Auth middleware.
func Principal(c *gin.Context) (uint, string) {
	userID, _ := c.Get(ctxUserID)
	role, _ := c.Get(ctxRole)
	id, _ := userID.(uint)
	r, _ := role.(string)
	return id, r
}
