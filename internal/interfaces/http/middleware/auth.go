package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"checkmate/internal/infrastructure/auth"
	"checkmate/internal/shared/constants"
	apperrors "checkmate/internal/shared/errors"
	"checkmate/internal/shared/logger"
	"checkmate/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth verifies the bearer token and injects the account identifier
// into the request context. Expired tokens and bad signatures both fail with
// 401, with distinct messages.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		userID, err := m.jwtService.Verify(token)
		if err != nil {
			if errors.Is(err, apperrors.ErrTokenExpired) {
				utils.ErrorResponse(c, http.StatusUnauthorized, "token has expired")
			} else {
				m.logger.Warnw("failed to verify token", "error", err)
				utils.ErrorResponse(c, http.StatusUnauthorized, "invalid token")
			}
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// OptionalAuth injects the account identifier when a valid token is present
// and lets the request through either way.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		if userID, err := m.jwtService.Verify(token); err == nil {
			c.Set(constants.ContextKeyUserID, userID)
		}
		c.Next()
	}
}

func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// UserIDFromContext reads the authenticated account identifier set by
// RequireAuth.
func UserIDFromContext(c *gin.Context) (uint, bool) {
	val, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}
	userID, ok := val.(uint)
	return userID, ok
}
