package usecases

import (
	"context"
	"fmt"

	"checkmate/internal/domain/user"
	"checkmate/internal/infrastructure/auth"
	apperrors "checkmate/internal/shared/errors"
	"checkmate/internal/shared/logger"
)

// SessionCarrier bridges the identity resolved in the callback to the token
// issuance step. The entry is discarded as soon as the token exists.
type SessionCarrier interface {
	Serialize(ctx context.Context, userID uint) (string, error)
	Deserialize(ctx context.Context, sessionID string) (uint, error)
	Discard(ctx context.Context, sessionID string) error
}

type HandleOAuthCallbackCommand struct {
	Provider string
	Code     string
	State    string
}

type HandleOAuthCallbackResult struct {
	User      *user.User
	Token     string
	ExpiresIn int64
	IsNewUser bool
}

type HandleOAuthCallbackUseCase struct {
	googleClient   OAuthClient
	githubClient   OAuthClient
	stateStore     StateStore
	sessionCarrier SessionCarrier
	resolver       *ResolveIdentityUseCase
	userRepo       user.Repository
	tokenIssuer    TokenIssuer
	logger         logger.Interface
}

func NewHandleOAuthCallbackUseCase(
	googleClient OAuthClient,
	githubClient OAuthClient,
	stateStore StateStore,
	sessionCarrier SessionCarrier,
	resolver *ResolveIdentityUseCase,
	userRepo user.Repository,
	tokenIssuer TokenIssuer,
	logger logger.Interface,
) *HandleOAuthCallbackUseCase {
	return &HandleOAuthCallbackUseCase{
		googleClient:   googleClient,
		githubClient:   githubClient,
		stateStore:     stateStore,
		sessionCarrier: sessionCarrier,
		resolver:       resolver,
		userRepo:       userRepo,
		tokenIssuer:    tokenIssuer,
		logger:         logger,
	}
}

func (uc *HandleOAuthCallbackUseCase) Execute(ctx context.Context, cmd HandleOAuthCallbackCommand) (*HandleOAuthCallbackResult, error) {
	stateInfo, err := uc.stateStore.VerifyAndGet(ctx, cmd.State)
	if err != nil {
		uc.logger.Warnw("oauth state verification failed", "provider", cmd.Provider, "error", err)
		return nil, apperrors.NewOAuthError(cmd.Provider, "invalid or expired state parameter")
	}
	if stateInfo.Provider != cmd.Provider {
		uc.logger.Warnw("oauth state provider mismatch",
			"expected", stateInfo.Provider, "got", cmd.Provider)
		return nil, apperrors.NewOAuthError(cmd.Provider, "state does not match provider")
	}

	var client OAuthClient
	switch cmd.Provider {
	case "google":
		client = uc.googleClient
	case "github":
		client = uc.githubClient
	default:
		return nil, apperrors.NewValidationError(fmt.Sprintf("unsupported OAuth provider: %s", cmd.Provider))
	}

	accessToken, err := client.ExchangeCode(ctx, cmd.Code, stateInfo.CodeVerifier)
	if err != nil {
		uc.logger.Errorw("failed to exchange code", "provider", cmd.Provider, "error", err)
		return nil, apperrors.NewOAuthError(cmd.Provider, "authorization code exchange failed")
	}

	userInfo, err := client.GetUserInfo(ctx, accessToken)
	if err != nil {
		uc.logger.Errorw("failed to get user info", "provider", cmd.Provider, "error", err)
		return nil, apperrors.NewOAuthError(cmd.Provider, "failed to fetch user profile")
	}

	assertion := assertionFrom(cmd.Provider, userInfo)

	resolved, err := uc.resolver.Execute(ctx, assertion)
	if err != nil {
		uc.logger.Errorw("identity resolution failed", "provider", cmd.Provider, "error", err)
		return nil, err
	}

	// Carry the resolved identity through a short-lived session, then trade
	// it for a bearer token. The account is re-read on deserialization so a
	// deletion in between reads as unauthenticated.
	sessionID, err := uc.sessionCarrier.Serialize(ctx, resolved.User.ID())
	if err != nil {
		uc.logger.Errorw("failed to serialize session", "user_id", resolved.User.ID(), "error", err)
		return nil, fmt.Errorf("failed to serialize session: %w", err)
	}

	userID, err := uc.sessionCarrier.Deserialize(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize session: %w", err)
	}
	account, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	if account == nil {
		return nil, apperrors.NewInvalidCredentialsError()
	}

	token, err := uc.tokenIssuer.Issue(account.ID())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", account.ID(), "error", err)
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	if err := uc.sessionCarrier.Discard(ctx, sessionID); err != nil {
		uc.logger.Warnw("failed to discard session", "error", err)
	}

	uc.logger.Infow("oauth login completed",
		"user_id", account.ID(),
		"provider", cmd.Provider,
		"is_new_user", resolved.IsNewUser)

	return &HandleOAuthCallbackResult{
		User:      account,
		Token:     token,
		ExpiresIn: int64(uc.tokenIssuer.Lifetime().Seconds()),
		IsNewUser: resolved.IsNewUser,
	}, nil
}

// assertionFrom normalizes a provider profile into the domain assertion.
// An unverified or withheld email is dropped so the resolver falls back to
// the synthesized placeholder instead of merging on an unowned address.
func assertionFrom(provider string, info *auth.ProviderUserInfo) user.ProviderAssertion {
	email := info.Email
	if !info.EmailVerified {
		email = ""
	}
	return user.ProviderAssertion{
		Provider:       provider,
		ProviderUserID: info.ProviderID,
		Email:          email,
		DisplayName:    info.Name,
		AvatarURL:      info.AvatarURL,
		Username:       info.Username,
	}
}
