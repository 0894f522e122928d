package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barbermx/appointment-api/internal/models"
)

// RequireRole bloqueia a rota pra quem não tem um dos papéis listados.
// Roda sempre depois do AuthMiddleware.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := GetSession(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_session"})
			return
		}

		for _, r := range roles {
			if session.Role == r {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}
