package models

import (
	"time"

	"checkmate/internal/shared/constants"
)

// UserModel is the persistence model for accounts. It is the
// anti-corruption layer between the domain entity and the database.
type UserModel struct {
	ID           uint    `gorm:"primarykey"`
	Email        string  `gorm:"uniqueIndex;not null;size:255"`
	Name         string  `gorm:"not null;size:100"`
	AvatarURL    *string `gorm:"size:500"`
	PasswordHash *string `gorm:"size:255"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	OAuthAccounts []OAuthAccountModel `gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
