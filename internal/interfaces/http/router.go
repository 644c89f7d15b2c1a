package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	boardUsecases "checkmate/internal/application/board/usecases"
	userUsecases "checkmate/internal/application/user/usecases"
	"checkmate/internal/infrastructure/auth"
	"checkmate/internal/infrastructure/cache"
	"checkmate/internal/infrastructure/config"
	"checkmate/internal/infrastructure/repository"
	"checkmate/internal/interfaces/http/handlers"
	"checkmate/internal/interfaces/http/middleware"
	"checkmate/internal/interfaces/http/routes"
	"checkmate/internal/shared/logger"
	"checkmate/internal/shared/services/markdown"
	"checkmate/internal/shared/utils"
)

// Router wires the full HTTP surface: auth, OAuth, profile and board routes
// behind shared CORS, logging, recovery and rate limiting middleware.
type Router struct {
	engine *gin.Engine
}

// NewRouter creates the HTTP router with all dependencies.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()
	utils.RegisterGinValidators()

	userRepo := repository.NewUserRepository(db, log)
	boardRepo := repository.NewBoardRepository(db, log)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.ExpiresHours)

	googleClient := auth.NewGoogleOAuthClient(auth.GoogleOAuthConfig{
		ClientID:     cfg.OAuth.Google.ClientID,
		ClientSecret: cfg.OAuth.Google.ClientSecret,
		RedirectURL:  cfg.OAuth.Google.RedirectURL,
	})
	githubClient := auth.NewGitHubOAuthClient(auth.GitHubOAuthConfig{
		ClientID:     cfg.OAuth.GitHub.ClientID,
		ClientSecret: cfg.OAuth.GitHub.ClientSecret,
		RedirectURL:  cfg.OAuth.GitHub.RedirectURL,
	})

	stateStore := cache.NewRedisStateStore(redisClient)
	sessionCarrier := cache.NewOAuthSessionStore(redisClient,
		time.Duration(cfg.Auth.Session.TTLHours)*time.Hour)

	markdownSvc := markdown.NewService()

	resolver := userUsecases.NewResolveIdentityUseCase(userRepo, log)
	registerUC := userUsecases.NewRegisterWithPasswordUseCase(userRepo, hasher, jwtService, log)
	loginUC := userUsecases.NewLoginWithPasswordUseCase(userRepo, hasher, jwtService, log)
	initiateOAuthUC := userUsecases.NewInitiateOAuthLoginUseCase(googleClient, githubClient, stateStore, log)
	handleOAuthUC := userUsecases.NewHandleOAuthCallbackUseCase(
		googleClient, githubClient, stateStore, sessionCarrier, resolver, userRepo, jwtService, log)
	getProfileUC := userUsecases.NewGetProfileUseCase(userRepo, log)
	updateProfileUC := userUsecases.NewUpdateProfileUseCase(userRepo, log)

	authHandler := handlers.NewAuthHandler(
		registerUC, loginUC, initiateOAuthUC, handleOAuthUC,
		getProfileUC, updateProfileUC, cfg.Server.FrontendURL, log)

	createBoardUC := boardUsecases.NewCreateBoardUseCase(boardRepo, log)
	getBoardUC := boardUsecases.NewGetBoardUseCase(boardRepo, markdownSvc, log)
	listBoardsUC := boardUsecases.NewListBoardsUseCase(boardRepo, log)
	updateBoardUC := boardUsecases.NewUpdateBoardUseCase(boardRepo, log)
	deleteBoardUC := boardUsecases.NewDeleteBoardUseCase(boardRepo, log)
	recordMoveUC := boardUsecases.NewRecordMoveUseCase(boardRepo, log)
	addAnalysisUC := boardUsecases.NewAddAnalysisUseCase(boardRepo, log)

	boardHandler := handlers.NewBoardHandler(
		createBoardUC, getBoardUC, listBoardsUC, updateBoardUC,
		deleteBoardUC, recordMoveUC, addAnalysisUC, log)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	globalLimiter := middleware.NewRateLimiter(redisClient, "global", cfg.RateLimit.GlobalLimit, window)
	authLimiter := middleware.NewRateLimiter(redisClient, "auth", cfg.RateLimit.AuthLimit, window)

	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	engine.Use(globalLimiter.Limit())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler:    authHandler,
		AuthMiddleware: authMiddleware,
		AuthLimiter:    authLimiter,
	})
	routes.SetupBoardRoutes(engine, &routes.BoardRouteConfig{
		BoardHandler:   boardHandler,
		AuthMiddleware: authMiddleware,
	})

	return &Router{engine: engine}
}

// Engine returns the underlying gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
