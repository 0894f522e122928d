package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"

	"github.com/barbermx/appointment-api/internal/config"
	"github.com/barbermx/appointment-api/internal/models"
)

const contextSession = "session"

// Session é a identidade autenticada da requisição. Tudo que os
// handlers precisam saber do token vive aqui; nada de chaves soltas
// no contexto.
type Session struct {
	ProfileID uint
	Role      models.Role
	TokenID   string
}

// GetSession recupera a sessão colocada pelo AuthMiddleware.
func GetSession(c *gin.Context) (Session, bool) {
	v, ok := c.Get(contextSession)
	if !ok {
		return Session{}, false
	}
	s, ok := v.(Session)
	return s, ok
}

func denylistKey(tokenID string) string {
	return fmt.Sprintf("auth:denylist:%s", tokenID)
}

// DenylistKey expõe a chave pro handler de logout.
func DenylistKey(tokenID string) string {
	return denylistKey(tokenID)
}

func AuthMiddleware(cfg *config.Config, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {

			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
			return
		}

		profileID, ok1 := claims["sub"].(float64)
		roleStr, ok2 := claims["role"].(string)
		tokenID, _ := claims["jti"].(string)
		if !ok1 || !ok2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		role, err := models.ParseRole(roleStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		// token revogado pelo logout
		if tokenID != "" && rdb != nil {
			if n, err := rdb.Exists(c.Request.Context(), denylistKey(tokenID)).Result(); err == nil && n > 0 {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token_revoked"})
				return
			}
		}

		c.Set(contextSession, Session{
			ProfileID: uint(profileID),
			Role:      role,
			TokenID:   tokenID,
		})

		c.Next()
	}
}
