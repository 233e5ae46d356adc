package middleware

import (
	"net/http"
	"strings"

	"auth-service/internal/services"
	"auth-service/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func AuthMiddleware(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := tokens.Verify(extractToken(c))
		if err != nil {
			c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
			c.Abort()
			return
		}

		accountID, err := uuid.Parse(claims.Subject)
		if err != nil {
			c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
			c.Abort()
			return
		}

		ctx := services.WithAccountContext(c.Request.Context(), accountID, claims.Email)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// extractToken prefers the cookie and falls back to the Authorization
// header. A non-empty cookie wins outright; a bad cookie is not rescued by
// a valid header.
func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(httpdto.TokenCookie); err == nil && cookie != "" {
		return cookie
	}
	return extractBearer(c)
}

func extractBearer(c *gin.Context) string {
	value := c.GetHeader("Authorization")
	parts := strings.SplitN(value, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
