package user

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "checkmate/internal/domain/user/valueobjects"
)

type stubHasher struct {
	hashCalls int
}

func (h *stubHasher) Hash(password string) (string, error) {
	h.hashCalls++
	return "$2a$12$" + password, nil
}

func (h *stubHasher) Verify(password, hash string) error {
	if hash == "$2a$12$"+password {
		return nil
	}
	return errors.New("hash mismatch")
}

func newTestUser(t *testing.T) *User {
	t.Helper()
	email, err := vo.NewEmail("alice@example.com")
	require.NoError(t, err)
	name, err := vo.NewName("Alice")
	require.NoError(t, err)
	u, err := NewUser(email, name)
	require.NoError(t, err)
	return u
}

func TestSetPassword_HashesPlaintext(t *testing.T) {
	u := newTestUser(t)
	hasher := &stubHasher{}

	require.NoError(t, u.SetPassword("swordfish123", hasher))

	assert.Equal(t, 1, hasher.hashCalls)
	assert.True(t, u.HasPassword())
	assert.True(t, u.VerifyPassword("swordfish123", hasher))
	assert.False(t, u.VerifyPassword("wrong", hasher))
}

func TestSetPassword_SkipsExistingDigest(t *testing.T) {
	u := newTestUser(t)
	hasher := &stubHasher{}

	require.NoError(t, u.SetPassword("swordfish123", hasher))
	digest := u.PasswordHash()

	// Feeding the stored digest back in must not re-hash it.
	require.NoError(t, u.SetPassword(digest, hasher))

	assert.Equal(t, 1, hasher.hashCalls)
	assert.Equal(t, digest, u.PasswordHash())
	assert.True(t, u.VerifyPassword("swordfish123", hasher))
}

func TestVerifyPassword_EmptyHashAlwaysFails(t *testing.T) {
	u := newTestUser(t)

	assert.False(t, u.VerifyPassword("anything", &stubHasher{}))
}

func TestRequiresPassword(t *testing.T) {
	u := newTestUser(t)
	assert.True(t, u.RequiresPassword())

	require.NoError(t, u.LinkProvider(ProviderAssertion{
		Provider:       "google",
		ProviderUserID: "goog-1",
	}))

	// With a provider linkage the password becomes optional.
	assert.False(t, u.RequiresPassword())
}

func TestValidate_PasswordOrProviderRequired(t *testing.T) {
	u := newTestUser(t)
	assert.Error(t, u.Validate())

	require.NoError(t, u.SetPassword("swordfish123", &stubHasher{}))
	assert.NoError(t, u.Validate())
}

func TestLinkProvider_OnePerProvider(t *testing.T) {
	u := newTestUser(t)

	require.NoError(t, u.LinkProvider(ProviderAssertion{Provider: "github", ProviderUserID: "1"}))
	require.NoError(t, u.LinkProvider(ProviderAssertion{Provider: "github", ProviderUserID: "2"}))

	assert.Len(t, u.Providers(), 1)
	assert.Equal(t, "2", u.LinkedProvider("github").ProviderUserID)
}

func TestLinkProvider_RequiresIdentity(t *testing.T) {
	u := newTestUser(t)

	assert.Error(t, u.LinkProvider(ProviderAssertion{ProviderUserID: "1"}))
	assert.Error(t, u.LinkProvider(ProviderAssertion{Provider: "github"}))
}

func TestBackfillAvatar(t *testing.T) {
	u := newTestUser(t)

	assert.True(t, u.BackfillAvatar("https://img.example/a.png"))
	// An existing avatar is never overwritten.
	assert.False(t, u.BackfillAvatar("https://img.example/b.png"))
	assert.Equal(t, "https://img.example/a.png", u.AvatarURL())
	assert.False(t, u.BackfillAvatar(""))
}

func TestSetID(t *testing.T) {
	u := newTestUser(t)

	assert.Error(t, u.SetID(0))
	require.NoError(t, u.SetID(10))
	assert.Error(t, u.SetID(11))
	assert.Equal(t, uint(10), u.ID())
}

func TestReconstructBypassesInvariants(t *testing.T) {
	email, _ := vo.NewEmail("ghost@example.com")
	name, _ := vo.NewName("Ghost")

	u := Reconstruct(1, email, name, "", "", nil, time.Now(), time.Now())

	assert.Equal(t, uint(1), u.ID())
	assert.False(t, u.HasPassword())
}
