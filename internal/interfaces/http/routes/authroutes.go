package routes

import (
	"github.com/gin-gonic/gin"

	"checkmate/internal/interfaces/http/handlers"
	"checkmate/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	AuthLimiter    *middleware.RateLimiter
}

// SetupAuthRoutes configures authentication and profile routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/api/auth")
	{
		auth.POST("/register", cfg.AuthLimiter.Limit(), cfg.AuthHandler.Register)
		auth.POST("/login", cfg.AuthLimiter.Limit(), cfg.AuthHandler.Login)
		auth.GET("/profile", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.GetProfile)
		auth.PUT("/profile", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.UpdateProfile)
	}

	oauth := engine.Group("/api/oauth")
	{
		oauth.GET("/:provider", cfg.AuthLimiter.Limit(), cfg.AuthHandler.InitiateOAuth)
		oauth.GET("/:provider/callback", cfg.AuthLimiter.Limit(), cfg.AuthHandler.OAuthCallback)
	}
}
