package user

import "context"

// Repository is the record-store contract for accounts. Implementations
// return (nil, nil) for lookups that find nothing, and translate uniqueness
// violations on email or provider linkage into the shared conflict errors.
type Repository interface {
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByLinkage(ctx context.Context, provider, providerUserID string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
