package mappers

import (
	"fmt"

	"checkmate/internal/domain/user"
	vo "checkmate/internal/domain/user/valueobjects"
	"checkmate/internal/infrastructure/persistence/models"
	"checkmate/internal/shared/mapper"
)

// UserMapper converts between the user domain entity and its persistence
// model, including the linked provider rows.
type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) (*models.UserModel, error)
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create email value object: %w", err)
	}

	name, err := vo.NewName(model.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create name value object: %w", err)
	}

	var avatarURL string
	if model.AvatarURL != nil {
		avatarURL = *model.AvatarURL
	}

	var passwordHash string
	if model.PasswordHash != nil {
		passwordHash = *model.PasswordHash
	}

	providers := make([]user.ProviderLink, 0, len(model.OAuthAccounts))
	for _, acc := range model.OAuthAccounts {
		providers = append(providers, user.ProviderLink{
			Provider:       acc.Provider,
			ProviderUserID: acc.ProviderUserID,
			ProviderEmail:  acc.ProviderEmail,
		})
	}

	return user.Reconstruct(
		model.ID,
		email,
		name,
		avatarURL,
		passwordHash,
		providers,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

// ToModel converts a domain entity to a persistence model
func (m *UserMapperImpl) ToModel(entity *user.User) (*models.UserModel, error) {
	if entity == nil {
		return nil, nil
	}

	model := &models.UserModel{
		ID:        entity.ID(),
		Email:     entity.Email().String(),
		Name:      entity.Name().String(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}

	if avatar := entity.AvatarURL(); avatar != "" {
		model.AvatarURL = &avatar
	}
	if hash := entity.PasswordHash(); hash != "" {
		model.PasswordHash = &hash
	}

	for _, link := range entity.Providers() {
		model.OAuthAccounts = append(model.OAuthAccounts, models.OAuthAccountModel{
			UserID:         entity.ID(),
			Provider:       link.Provider,
			ProviderUserID: link.ProviderUserID,
			ProviderEmail:  link.ProviderEmail,
		})
	}

	return model, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *UserMapperImpl) ToEntities(modelList []*models.UserModel) ([]*user.User, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.UserModel) uint { return model.ID })
}
