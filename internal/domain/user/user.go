package user

import (
	"fmt"
	"strings"
	"time"

	vo "checkmate/internal/domain/user/valueobjects"
)

// User is the canonical identity record. An account always carries at least
// one way to authenticate: a password hash, a provider linkage, or both.
type User struct {
	id           uint
	email        *vo.Email
	name         *vo.Name
	avatarURL    string
	passwordHash string
	providers    []ProviderLink
	createdAt    time.Time
	updatedAt    time.Time
}

// PasswordHasher abstracts the credential store's one-way digest.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// NewUser creates a user for the password registration path. The caller must
// set a password before persisting; Validate enforces it.
func NewUser(email *vo.Email, name *vo.Name) (*User, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if name == nil {
		return nil, fmt.Errorf("name is required")
	}

	now := time.Now()
	return &User{
		email:     email,
		name:      name,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// NewUserFromAssertion creates a pure-OAuth user seeded with one provider
// linkage and no password.
func NewUserFromAssertion(email *vo.Email, name *vo.Name, assertion ProviderAssertion) (*User, error) {
	u, err := NewUser(email, name)
	if err != nil {
		return nil, err
	}
	u.avatarURL = assertion.AvatarURL
	u.providers = []ProviderLink{{
		Provider:       assertion.Provider,
		ProviderUserID: assertion.ProviderUserID,
		ProviderEmail:  assertion.Email,
	}}
	return u, nil
}

// Reconstruct rebuilds a user from persistence. It bypasses creation-time
// invariants; the store is trusted to hold valid rows.
func Reconstruct(id uint, email *vo.Email, name *vo.Name, avatarURL, passwordHash string, providers []ProviderLink, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		name:         name,
		avatarURL:    avatarURL,
		passwordHash: passwordHash,
		providers:    providers,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uint                  { return u.id }
func (u *User) Email() *vo.Email          { return u.email }
func (u *User) Name() *vo.Name            { return u.name }
func (u *User) AvatarURL() string         { return u.avatarURL }
func (u *User) PasswordHash() string      { return u.passwordHash }
func (u *User) Providers() []ProviderLink { return u.providers }
func (u *User) CreatedAt() time.Time      { return u.createdAt }
func (u *User) UpdatedAt() time.Time      { return u.updatedAt }

// SetID assigns the store-generated identifier after insert.
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// SetPassword hashes and stores the plaintext password. Passing a value that
// is already a bcrypt digest is a no-op, so unrelated updates never re-hash
// a stored hash.
func (u *User) SetPassword(plaintext string, hasher PasswordHasher) error {
	if isBcryptDigest(plaintext) {
		if plaintext != u.passwordHash {
			u.passwordHash = plaintext
			u.touch()
		}
		return nil
	}

	hash, err := hasher.Hash(plaintext)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.passwordHash = hash
	u.touch()
	return nil
}

// VerifyPassword checks the plaintext against the stored hash. Accounts
// without a password (pure-OAuth) always fail verification rather than error.
func (u *User) VerifyPassword(plaintext string, hasher PasswordHasher) bool {
	if u.passwordHash == "" {
		return false
	}
	return hasher.Verify(plaintext, u.passwordHash) == nil
}

// HasPassword reports whether password login is available for this account.
func (u *User) HasPassword() bool {
	return u.passwordHash != ""
}

// RequiresPassword reports whether a password is mandatory: true iff the
// account has no provider linkages to fall back on.
func (u *User) RequiresPassword() bool {
	return len(u.providers) == 0
}

// LinkedProvider returns the linkage for the named provider, or nil.
func (u *User) LinkedProvider(provider string) *ProviderLink {
	for i := range u.providers {
		if u.providers[i].Provider == provider {
			return &u.providers[i]
		}
	}
	return nil
}

// LinkProvider adds or overwrites the linkage for the assertion's provider.
// At most one linkage exists per provider name.
func (u *User) LinkProvider(assertion ProviderAssertion) error {
	if assertion.Provider == "" {
		return fmt.Errorf("provider is required")
	}
	if assertion.ProviderUserID == "" {
		return fmt.Errorf("provider user ID is required")
	}

	link := ProviderLink{
		Provider:       assertion.Provider,
		ProviderUserID: assertion.ProviderUserID,
		ProviderEmail:  assertion.Email,
	}

	for i := range u.providers {
		if u.providers[i].Provider == assertion.Provider {
			u.providers[i] = link
			u.touch()
			return nil
		}
	}

	u.providers = append(u.providers, link)
	u.touch()
	return nil
}

// BackfillAvatar sets the avatar from an assertion when the account has none.
// Returns true if the avatar changed.
func (u *User) BackfillAvatar(avatarURL string) bool {
	if u.avatarURL != "" || avatarURL == "" {
		return false
	}
	u.avatarURL = avatarURL
	u.touch()
	return true
}

// UpdateProfile edits the mutable profile fields.
func (u *User) UpdateProfile(name *vo.Name, avatarURL string) {
	if name != nil {
		u.name = name
	}
	if avatarURL != "" {
		u.avatarURL = avatarURL
	}
	u.touch()
}

// Validate enforces the authentication invariant before any write: a user
// has a password hash or at least one provider linkage, never neither.
func (u *User) Validate() error {
	if u.passwordHash == "" && len(u.providers) == 0 {
		return fmt.Errorf("user must have a password or at least one linked provider")
	}
	return nil
}

func (u *User) touch() {
	u.updatedAt = time.Now()
}

func isBcryptDigest(s string) bool {
	return strings.HasPrefix(s, "$2a$") ||
		strings.HasPrefix(s, "$2b$") ||
		strings.HasPrefix(s, "$2y$")
}
