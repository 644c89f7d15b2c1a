package models

import (
	"time"

	"checkmate/internal/shared/constants"
)

// OAuthAccountModel is the persistence model for provider linkages. Two
// unique indexes carry the identity invariants: a provider identity maps to
// at most one account, and an account holds at most one linkage per
// provider.
type OAuthAccountModel struct {
	ID             uint   `gorm:"primarykey"`
	UserID         uint   `gorm:"not null;uniqueIndex:idx_user_provider"`
	Provider       string `gorm:"not null;size:50;uniqueIndex:idx_provider_user;uniqueIndex:idx_user_provider"`
	ProviderUserID string `gorm:"not null;size:255;uniqueIndex:idx_provider_user;column:provider_user_id"`
	ProviderEmail  string `gorm:"size:255"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (OAuthAccountModel) TableName() string {
	return constants.TableOAuthAccounts
}
