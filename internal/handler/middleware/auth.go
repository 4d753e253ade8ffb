package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"loyalty-ledger/internal/pkg/cookie"
	"loyalty-ledger/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxStoreIDKey   = "store_identifier"
	ctxStoreNameKey = "store_name"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth accepts the session cookie or a bearer token and puts the
// store identifier on the context for the handlers.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetSessionToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Access token required"},
			})
			return
		}

		identity, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid or expired token"},
			})
			return
		}

		c.Set(ctxStoreIDKey, identity.Identifier)
		c.Set(ctxStoreNameKey, identity.Name)
		c.Next()
	}
}

func GetStoreIdentifier(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxStoreIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

func GetStoreName(c *gin.Context) string {
	return c.GetString(ctxStoreNameKey)
}
