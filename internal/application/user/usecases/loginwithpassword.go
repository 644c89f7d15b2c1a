package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"checkmate/internal/domain/user"
	apperrors "checkmate/internal/shared/errors"
	"checkmate/internal/shared/logger"
)

// TokenIssuer signs self-contained bearer tokens for an account.
type TokenIssuer interface {
	Issue(userID uint) (string, error)
	Lifetime() time.Duration
}

type LoginWithPasswordCommand struct {
	Email    string
	Password string
}

type LoginWithPasswordResult struct {
	User      *user.User
	Token     string
	ExpiresIn int64
}

type LoginWithPasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	tokenIssuer    TokenIssuer
	logger         logger.Interface
}

func NewLoginWithPasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokenIssuer TokenIssuer,
	logger logger.Interface,
) *LoginWithPasswordUseCase {
	return &LoginWithPasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		tokenIssuer:    tokenIssuer,
		logger:         logger,
	}
}

func (uc *LoginWithPasswordUseCase) Execute(ctx context.Context, cmd LoginWithPasswordCommand) (*LoginWithPasswordResult, error) {
	// Stored emails are normalized, so the lookup key must be too.
	email := strings.TrimSpace(strings.ToLower(cmd.Email))

	existingUser, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Unknown email and wrong password produce the same error, so the
	// endpoint never reveals whether an address is registered.
	if existingUser == nil {
		return nil, apperrors.NewInvalidCredentialsError()
	}

	if !existingUser.VerifyPassword(cmd.Password, uc.passwordHasher) {
		return nil, apperrors.NewInvalidCredentialsError()
	}

	token, err := uc.tokenIssuer.Issue(existingUser.ID())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", existingUser.ID(), "error", err)
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	uc.logger.Infow("user logged in", "user_id", existingUser.ID())

	return &LoginWithPasswordResult{
		User:      existingUser,
		Token:     token,
		ExpiresIn: int64(uc.tokenIssuer.Lifetime().Seconds()),
	}, nil
}
