package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"checkmate/internal/domain/user"
	"checkmate/internal/infrastructure/persistence/mappers"
	"checkmate/internal/infrastructure/persistence/models"
	apperrors "checkmate/internal/shared/errors"
	"checkmate/internal/shared/logger"
)

// UserRepository implements the user repository interface on gorm.
type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

// Create inserts the user together with its provider linkages. A uniqueness
// violation on email surfaces as ErrEmailConflict so the identity resolver
// can retry by re-reading the winner's row.
func (r *UserRepository) Create(ctx context.Context, userEntity *user.User) error {
	model, err := r.mapper.ToModel(userEntity)
	if err != nil {
		r.logger.Errorw("failed to map user entity to model", "error", err)
		return fmt.Errorf("failed to map user entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", apperrors.ErrEmailConflict, model.Email)
		}
		r.logger.Errorw("failed to create user in database", "error", err)
		return apperrors.NewStoreUnavailableError("failed to create user")
	}

	if err := userEntity.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set user ID", "error", err)
		return fmt.Errorf("failed to set user ID: %w", err)
	}

	r.logger.Infow("user created", "id", model.ID, "email", model.Email)
	return nil
}

// Update saves the user row and reconciles its provider linkages. Linkages
// are upserted by (user_id, provider); a collision on the provider identity
// index surfaces as ErrLinkageConflict.
func (r *UserRepository) Update(ctx context.Context, userEntity *user.User) error {
	if userEntity.ID() == 0 {
		return fmt.Errorf("cannot update user without ID")
	}

	model, err := r.mapper.ToModel(userEntity)
	if err != nil {
		r.logger.Errorw("failed to map user entity to model", "id", userEntity.ID(), "error", err)
		return fmt.Errorf("failed to map user entity: %w", err)
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("OAuthAccounts", "CreatedAt").Save(&models.UserModel{
			ID:           model.ID,
			Email:        model.Email,
			Name:         model.Name,
			AvatarURL:    model.AvatarURL,
			PasswordHash: model.PasswordHash,
			CreatedAt:    model.CreatedAt,
			UpdatedAt:    model.UpdatedAt,
		}).Error; err != nil {
			return err
		}

		for i := range model.OAuthAccounts {
			acc := model.OAuthAccounts[i]
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "provider"}},
				DoUpdates: clause.AssignmentColumns([]string{"provider_user_id", "provider_email", "updated_at"}),
			}).Create(&acc).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: user %d", apperrors.ErrLinkageConflict, userEntity.ID())
		}
		r.logger.Errorw("failed to update user in database", "id", userEntity.ID(), "error", err)
		return apperrors.NewStoreUnavailableError("failed to update user")
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel

	err := r.db.WithContext(ctx).Preload("OAuthAccounts").First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by ID", "id", id, "error", err)
		return nil, apperrors.NewStoreUnavailableError("failed to get user")
	}

	return r.mapper.ToEntity(&model)
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel

	err := r.db.WithContext(ctx).Preload("OAuthAccounts").
		Where("email = ?", email).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by email", "error", err)
		return nil, apperrors.NewStoreUnavailableError("failed to get user")
	}

	return r.mapper.ToEntity(&model)
}

// GetByLinkage retrieves the user holding the given provider identity.
func (r *UserRepository) GetByLinkage(ctx context.Context, provider, providerUserID string) (*user.User, error) {
	var account models.OAuthAccountModel

	err := r.db.WithContext(ctx).
		Where("provider = ? AND provider_user_id = ?", provider, providerUserID).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get linkage", "provider", provider, "error", err)
		return nil, apperrors.NewStoreUnavailableError("failed to get linkage")
	}

	return r.GetByID(ctx, account.UserID)
}

// ExistsByEmail reports whether an account with the email exists.
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("email = ?", email).Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to check email existence", "error", err)
		return false, apperrors.NewStoreUnavailableError("failed to check email existence")
	}

	return count > 0, nil
}
