package handlers

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"checkmate/internal/application/user/usecases"
	"checkmate/internal/domain/user"
	"checkmate/internal/shared/constants"
	"checkmate/internal/shared/logger"
	"checkmate/internal/shared/utils"
)

type AuthHandler struct {
	registerUseCase      *usecases.RegisterWithPasswordUseCase
	loginUseCase         *usecases.LoginWithPasswordUseCase
	initiateOAuthUseCase *usecases.InitiateOAuthLoginUseCase
	handleOAuthUseCase   *usecases.HandleOAuthCallbackUseCase
	getProfileUseCase    *usecases.GetProfileUseCase
	updateProfileUseCase *usecases.UpdateProfileUseCase
	frontendURL          string
	logger               logger.Interface
}

func NewAuthHandler(
	registerUC *usecases.RegisterWithPasswordUseCase,
	loginUC *usecases.LoginWithPasswordUseCase,
	initiateOAuthUC *usecases.InitiateOAuthLoginUseCase,
	handleOAuthUC *usecases.HandleOAuthCallbackUseCase,
	getProfileUC *usecases.GetProfileUseCase,
	updateProfileUC *usecases.UpdateProfileUseCase,
	frontendURL string,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUseCase:      registerUC,
		loginUseCase:         loginUC,
		initiateOAuthUseCase: initiateOAuthUC,
		handleOAuthUseCase:   handleOAuthUC,
		getProfileUseCase:    getProfileUC,
		updateProfileUseCase: updateProfileUC,
		frontendURL:          frontendURL,
		logger:               logger,
	}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=2,max=50"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name      string `json:"name" binding:"omitempty,min=2,max=50"`
	AvatarURL string `json:"avatar_url" binding:"omitempty,url,max=500"`
}

// UserResponse is the public shape of an account.
type UserResponse struct {
	ID        uint     `json:"id"`
	Email     string   `json:"email"`
	Name      string   `json:"name"`
	AvatarURL string   `json:"avatar_url,omitempty"`
	Providers []string `json:"providers"`
}

func toUserResponse(u *user.User) UserResponse {
	providers := make([]string, 0, len(u.Providers()))
	for _, link := range u.Providers() {
		providers = append(providers, link.Provider)
	}
	return UserResponse{
		ID:        u.ID(),
		Email:     u.Email().String(),
		Name:      u.Name().String(),
		AvatarURL: u.AvatarURL(),
		Providers: providers,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), usecases.RegisterWithPasswordCommand{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "registration successful", gin.H{
		"user":       toUserResponse(result.User),
		"token":      result.Token,
		"expires_in": result.ExpiresIn,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), usecases.LoginWithPasswordCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", gin.H{
		"user":       toUserResponse(result.User),
		"token":      result.Token,
		"expires_in": result.ExpiresIn,
	})
}

// InitiateOAuth starts the provider handshake and redirects the browser to
// the provider's authorization page.
func (h *AuthHandler) InitiateOAuth(c *gin.Context) {
	provider := c.Param("provider")

	result, err := h.initiateOAuthUseCase.Execute(c.Request.Context(), usecases.InitiateOAuthLoginCommand{
		Provider: provider,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, result.AuthURL)
}

// OAuthCallback completes the handshake. Success redirects to the frontend
// with the bearer token in the query string; any failure redirects with a
// generic error marker so provider details never reach the browser.
func (h *AuthHandler) OAuthCallback(c *gin.Context) {
	provider := c.Param("provider")
	code := c.Query("code")
	state := c.Query("state")

	if code == "" || state == "" {
		h.logger.Warnw("oauth callback missing parameters", "provider", provider)
		h.redirectWithError(c)
		return
	}

	result, err := h.handleOAuthUseCase.Execute(c.Request.Context(), usecases.HandleOAuthCallbackCommand{
		Provider: provider,
		Code:     code,
		State:    state,
	})
	if err != nil {
		h.logger.Errorw("oauth callback failed", "provider", provider, "error", err)
		h.redirectWithError(c)
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, fmt.Sprintf("%s/auth/callback?token=%s",
		h.frontendURL, url.QueryEscape(result.Token)))
}

func (h *AuthHandler) redirectWithError(c *gin.Context) {
	c.Redirect(http.StatusTemporaryRedirect, h.frontendURL+"/auth/callback?error=authentication_failed")
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := c.GetUint(constants.ContextKeyUserID)

	profile, err := h.getProfileUseCase.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toUserResponse(profile))
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetUint(constants.ContextKeyUserID)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.updateProfileUseCase.Execute(c.Request.Context(), usecases.UpdateProfileCommand{
		UserID:    userID,
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "profile updated", toUserResponse(updated))
}
