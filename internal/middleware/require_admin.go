package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Formlink/internal/dto"
	"github.com/lshigami/Formlink/internal/model"
)

// RequireAdmin gates admin-only routes. Runs behind Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, role := Principal(c)
		if role != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Admin access required"})
			return
		}
		c.Next()
	}
}
