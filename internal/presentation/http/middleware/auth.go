package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/marianotrogo/client-pos-ind/internal/presentation/http/dto/response"
	"github.com/marianotrogo/client-pos-ind/pkg/utils"
)

// AuthMiddleware validates the bearer token of the acting cashier. An
// unauthenticated request never reaches a service, so no submission can be
// issued without a session token. The raw token is kept in the context for
// forwarding to the backend.
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		tokenString := parts[1]

		claims, err := jwtManager.ValidateAccessToken(tokenString)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("auth_token", tokenString)

		c.Next()
	}
}
