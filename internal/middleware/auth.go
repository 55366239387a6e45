package middleware

import (
	"strings"

	"sentosa_backend/internal/auth"
	"sentosa_backend/internal/logger"
	"sentosa_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const claimsKey = "authClaims"

// AuthMiddleware verifies the bearer token and stores the decoded claims
// in the request context. Missing or invalid tokens are rejected with 403,
// matching the legacy API.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.ErrTokenRequired)
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		ctx := logger.WithStaffID(c.Request.Context(), claims.StaffID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// GetClaims extracts the verified token claims from the context.
func GetClaims(c *gin.Context) (*auth.Claims, bool) {
	val, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}

	claims, ok := val.(*auth.Claims)
	return claims, ok
}
