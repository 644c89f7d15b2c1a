package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/stretchr/testify/mock"

	"checkmate/internal/domain/user"
	vo "checkmate/internal/domain/user/valueobjects"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*user.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*user.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) GetByLinkage(ctx context.Context, provider, providerUserID string) (*user.User, error) {
	args := m.Called(ctx, provider, providerUserID)
	if u := args.Get(0); u != nil {
		return u.(*user.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// fakeHasher is a deterministic stand-in for bcrypt.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "$2a$12$" + password, nil
}

func (fakeHasher) Verify(password, hash string) error {
	if hash == "$2a$12$"+password {
		return nil
	}
	return errors.New("hash mismatch")
}

type fakeTokenIssuer struct{}

func (fakeTokenIssuer) Issue(userID uint) (string, error) {
	return "signed-token", nil
}

func (fakeTokenIssuer) Lifetime() time.Duration {
	return 168 * time.Hour
}

func mustEmail(value string) *vo.Email {
	email, err := vo.NewEmail(value)
	if err != nil {
		panic(err)
	}
	return email
}

func mustName(value string) *vo.Name {
	name, err := vo.NewName(value)
	if err != nil {
		panic(err)
	}
	return name
}

func passwordUser(id uint, email, name string) *user.User {
	return user.Reconstruct(id, mustEmail(email), mustName(name),
		"", "$2a$12$correct horse", nil, time.Now(), time.Now())
}

func oauthUser(id uint, email, name string, links ...user.ProviderLink) *user.User {
	return user.Reconstruct(id, mustEmail(email), mustName(name),
		"https://img.example/a.png", "", links, time.Now(), time.Now())
}
