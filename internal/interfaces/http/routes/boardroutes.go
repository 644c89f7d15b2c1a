package routes

import (
	"github.com/gin-gonic/gin"

	"checkmate/internal/interfaces/http/handlers"
	"checkmate/internal/interfaces/http/middleware"
)

// BoardRouteConfig holds dependencies for chess board routes.
type BoardRouteConfig struct {
	BoardHandler   *handlers.BoardHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupBoardRoutes configures the chess board CRUD routes. All of them
// require an authenticated account.
func SetupBoardRoutes(engine *gin.Engine, cfg *BoardRouteConfig) {
	boards := engine.Group("/api/chess-boards")
	boards.Use(cfg.AuthMiddleware.RequireAuth())
	{
		boards.POST("", cfg.BoardHandler.Create)
		boards.GET("", cfg.BoardHandler.List)
		boards.GET("/:id", cfg.BoardHandler.Get)
		boards.PUT("/:id", cfg.BoardHandler.Update)
		boards.DELETE("/:id", cfg.BoardHandler.Delete)
		boards.POST("/:id/moves", cfg.BoardHandler.RecordMove)
		boards.POST("/:id/analysis", cfg.BoardHandler.AddAnalysis)
	}
}
