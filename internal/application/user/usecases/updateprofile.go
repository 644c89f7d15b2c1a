package usecases

import (
	"context"
	"fmt"

	"checkmate/internal/domain/user"
	vo "checkmate/internal/domain/user/valueobjects"
	apperrors "checkmate/internal/shared/errors"
	"checkmate/internal/shared/logger"
)

type UpdateProfileCommand struct {
	UserID    uint
	Name      string
	AvatarURL string
}

type UpdateProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateProfileUseCase(userRepo user.Repository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*user.User, error) {
	existingUser, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if existingUser == nil {
		return nil, apperrors.NewNotFoundError("User not found")
	}

	var name *vo.Name
	if cmd.Name != "" {
		name, err = vo.NewName(cmd.Name)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	existingUser.UpdateProfile(name, cmd.AvatarURL)

	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	uc.logger.Infow("profile updated", "user_id", cmd.UserID)
	return existingUser, nil
}
