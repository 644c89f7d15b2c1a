package usecases

import (
	"context"
	"errors"
	"fmt"

	"checkmate/internal/domain/user"
	vo "checkmate/internal/domain/user/valueobjects"
	apperrors "checkmate/internal/shared/errors"
	"checkmate/internal/shared/logger"
)

type RegisterWithPasswordCommand struct {
	Email    string
	Password string
	Name     string
}

type RegisterWithPasswordResult struct {
	User      *user.User
	Token     string
	ExpiresIn int64
}

type RegisterWithPasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	tokenIssuer    TokenIssuer
	logger         logger.Interface
}

func NewRegisterWithPasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokenIssuer TokenIssuer,
	logger logger.Interface,
) *RegisterWithPasswordUseCase {
	return &RegisterWithPasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		tokenIssuer:    tokenIssuer,
		logger:         logger,
	}
}

func (uc *RegisterWithPasswordUseCase) Execute(ctx context.Context, cmd RegisterWithPasswordCommand) (*RegisterWithPasswordResult, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	name, err := vo.NewName(cmd.Name)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, apperrors.NewEmailConflictError(email.String())
	}

	newUser, err := user.NewUser(email, name)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := newUser.SetPassword(cmd.Password, uc.passwordHasher); err != nil {
		uc.logger.Errorw("failed to set password", "error", err)
		return nil, fmt.Errorf("failed to set password: %w", err)
	}

	if err := newUser.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		// The existence check above races with concurrent registrations;
		// the unique index is the real arbiter.
		if errors.Is(err, apperrors.ErrEmailConflict) {
			return nil, apperrors.NewEmailConflictError(email.String())
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := uc.tokenIssuer.Issue(newUser.ID())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", newUser.ID(), "error", err)
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID())

	return &RegisterWithPasswordResult{
		User:      newUser,
		Token:     token,
		ExpiresIn: int64(uc.tokenIssuer.Lifetime().Seconds()),
	}, nil
}
