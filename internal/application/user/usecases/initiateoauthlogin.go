package usecases

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"checkmate/internal/infrastructure/auth"
	"checkmate/internal/infrastructure/cache"
	apperrors "checkmate/internal/shared/errors"
	"checkmate/internal/shared/logger"
)

// OAuthClient is the provider-side contract: build the authorization URL,
// exchange the callback code, and fetch the verified profile.
type OAuthClient interface {
	GetAuthURL(state string) (authURL, codeVerifier string, err error)
	ExchangeCode(ctx context.Context, code, codeVerifier string) (accessToken string, err error)
	GetUserInfo(ctx context.Context, accessToken string) (*auth.ProviderUserInfo, error)
}

// StateStore persists one-time OAuth state entries across the redirect.
type StateStore interface {
	Set(ctx context.Context, state, provider, codeVerifier string) error
	VerifyAndGet(ctx context.Context, state string) (*cache.StateInfo, error)
}

type InitiateOAuthLoginCommand struct {
	Provider string
}

type InitiateOAuthLoginResult struct {
	AuthURL string
}

type InitiateOAuthLoginUseCase struct {
	googleClient OAuthClient
	githubClient OAuthClient
	stateStore   StateStore
	logger       logger.Interface
}

func NewInitiateOAuthLoginUseCase(
	googleClient OAuthClient,
	githubClient OAuthClient,
	stateStore StateStore,
	logger logger.Interface,
) *InitiateOAuthLoginUseCase {
	return &InitiateOAuthLoginUseCase{
		googleClient: googleClient,
		githubClient: githubClient,
		stateStore:   stateStore,
		logger:       logger,
	}
}

func (uc *InitiateOAuthLoginUseCase) Execute(ctx context.Context, cmd InitiateOAuthLoginCommand) (*InitiateOAuthLoginResult, error) {
	client, err := uc.clientFor(cmd.Provider)
	if err != nil {
		return nil, err
	}

	state, err := generateState()
	if err != nil {
		return nil, fmt.Errorf("failed to generate state: %w", err)
	}

	authURL, codeVerifier, err := client.GetAuthURL(state)
	if err != nil {
		uc.logger.Errorw("failed to build auth URL", "provider", cmd.Provider, "error", err)
		return nil, fmt.Errorf("failed to build auth URL: %w", err)
	}

	if err := uc.stateStore.Set(ctx, state, cmd.Provider, codeVerifier); err != nil {
		uc.logger.Errorw("failed to store oauth state", "provider", cmd.Provider, "error", err)
		return nil, fmt.Errorf("failed to store oauth state: %w", err)
	}

	uc.logger.Infow("oauth login initiated", "provider", cmd.Provider)

	return &InitiateOAuthLoginResult{AuthURL: authURL}, nil
}

func (uc *InitiateOAuthLoginUseCase) clientFor(provider string) (OAuthClient, error) {
	switch provider {
	case "google":
		return uc.googleClient, nil
	case "github":
		return uc.githubClient, nil
	default:
		return nil, apperrors.NewValidationError(fmt.Sprintf("unsupported OAuth provider: %s", provider))
	}
}

func generateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
