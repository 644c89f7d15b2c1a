package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"checkmate/internal/domain/user"
	apperrors "checkmate/internal/shared/errors"
	"checkmate/internal/shared/logger"
)

func googleAssertion() user.ProviderAssertion {
	return user.ProviderAssertion{
		Provider:       "google",
		ProviderUserID: "goog-123",
		Email:          "alice@example.com",
		DisplayName:    "Alice Smith",
		AvatarURL:      "https://img.example/alice.png",
	}
}

func TestResolveIdentity_LinkageMatchWins(t *testing.T) {
	repo := new(mockUserRepository)
	uc := NewResolveIdentityUseCase(repo, logger.NewLogger())

	existing := oauthUser(7, "alice@example.com", "Alice Smith",
		user.ProviderLink{Provider: "google", ProviderUserID: "goog-123"})

	repo.On("GetByLinkage", mock.Anything, "google", "goog-123").Return(existing, nil)

	result, err := uc.Execute(context.Background(), googleAssertion())

	require.NoError(t, err)
	assert.Equal(t, uint(7), result.User.ID())
	assert.False(t, result.IsNewUser)
	// A linkage match never falls through to email lookup.
	repo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestResolveIdentity_LinkageBeatsEmail(t *testing.T) {
	repo := new(mockUserRepository)
	uc := NewResolveIdentityUseCase(repo, logger.NewLogger())

	// The linked account's email no longer matches the assertion's email.
	linked := oauthUser(3, "old-address@example.com", "Alice Smith",
		user.ProviderLink{Provider: "google", ProviderUserID: "goog-123"})

	repo.On("GetByLinkage", mock.Anything, "google", "goog-123").Return(linked, nil)

	result, err := uc.Execute(context.Background(), googleAssertion())

	require.NoError(t, err)
	assert.Equal(t, uint(3), result.User.ID())
	assert.Equal(t, "old-address@example.com", result.User.Email().String())
}

func TestResolveIdentity_EmailMatchMergesProvider(t *testing.T) {
	repo := new(mockUserRepository)
	uc := NewResolveIdentityUseCase(repo, logger.NewLogger())

	// Password account registered earlier with the same email.
	existing := passwordUser(5, "alice@example.com", "Alice Smith")

	repo.On("GetByLinkage", mock.Anything, "google", "goog-123").Return(nil, nil)
	repo.On("GetByEmail", mock.Anything, "alice@example.com").Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)

	result, err := uc.Execute(context.Background(), googleAssertion())

	require.NoError(t, err)
	assert.False(t, result.IsNewUser)
	assert.Equal(t, uint(5), result.User.ID())
	require.NotNil(t, result.User.LinkedProvider("google"))
	assert.Equal(t, "goog-123", result.User.LinkedProvider("google").ProviderUserID)
	// Password login keeps working after the merge.
	assert.True(t, result.User.HasPassword())
	// Avatar is backfilled from the assertion.
	assert.Equal(t, "https://img.example/alice.png", result.User.AvatarURL())
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestResolveIdentity_CaseVariantEmailStillMerges(t *testing.T) {
	repo := new(mockUserRepository)
	uc := NewResolveIdentityUseCase(repo, logger.NewLogger())

	// Stored rows are normalized; the provider asserts a mixed-case address.
	// The lookup must use the normalized form or the merge is missed.
	existing := passwordUser(5, "alice@x.com", "Alice Smith")

	assertion := googleAssertion()
	assertion.Email = "Alice@X.com"

	repo.On("GetByLinkage", mock.Anything, "google", "goog-123").Return(nil, nil)
	repo.On("GetByEmail", mock.Anything, "alice@x.com").Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)

	result, err := uc.Execute(context.Background(), assertion)

	require.NoError(t, err)
	assert.False(t, result.IsNewUser)
	assert.Equal(t, uint(5), result.User.ID())
	assert.NotNil(t, result.User.LinkedProvider("google"))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestResolveIdentity_AvatarBackfillFailureNeverBlocksLogin(t *testing.T) {
	repo := new(mockUserRepository)
	uc := NewResolveIdentityUseCase(repo, logger.NewLogger())

	// Linked account without an avatar, so the fast path attempts a backfill.
	existing := user.Reconstruct(7, mustEmail("alice@example.com"), mustName("Alice Smith"),
		"", "", []user.ProviderLink{{Provider: "google", ProviderUserID: "goog-123"}},
		time.Now(), time.Now())

	repo.On("GetByLinkage", mock.Anything, "google", "goog-123").Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(fmt.Errorf("store unavailable"))

	result, err := uc.Execute(context.Background(), googleAssertion())

	require.NoError(t, err)
	assert.Equal(t, uint(7), result.User.ID())
}

func TestResolveIdentity_CreatesFreshAccount(t *testing.T) {
	repo := new(mockUserRepository)
	uc := NewResolveIdentityUseCase(repo, logger.NewLogger())

	repo.On("GetByLinkage", mock.Anything, "google", "goog-123").Return(nil, nil)
	repo.On("GetByEmail", mock.Anything, "alice@example.com").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*user.User")).
		Run(func(args mock.Arguments) {
			created := args.Get(1).(*user.User)
			require.NoError(t, created.SetID(42))
		}).
		Return(nil)

	result, err := uc.Execute(context.Background(), googleAssertion())

	require.NoError(t, err)
	assert.True(t, result.IsNewUser)
	assert.Equal(t, uint(42), result.User.ID())
	assert.Equal(t, "alice@example.com", result.User.Email().String())
	assert.False(t, result.User.HasPassword())
	assert.NotNil(t, result.User.LinkedProvider("google"))
}

func TestResolveIdentity_PlaceholderEmailForHiddenAddress(t *testing.T) {
	repo := new(mockUserRepository)
	uc := NewResolveIdentityUseCase(repo, logger.NewLogger())

	assertion := user.ProviderAssertion{
		Provider:       "github",
		ProviderUserID: "999",
		Username:       "Bob",
	}

	repo.On("GetByLinkage", mock.Anything, "github", "999").Return(nil, nil)
	repo.On("GetByEmail", mock.Anything, "bob@github.local").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*user.User")).
		Run(func(args mock.Arguments) {
			created := args.Get(1).(*user.User)
			require.NoError(t, created.SetID(8))
		}).
		Return(nil)

	result, err := uc.Execute(context.Background(), assertion)

	require.NoError(t, err)
	assert.True(t, result.IsNewUser)
	assert.Equal(t, "bob@github.local", result.User.Email().String())
	assert.Equal(t, "Bob", result.User.Name().String())
}

func TestResolveIdentity_RetriesOnceAfterCreationRace(t *testing.T) {
	repo := new(mockUserRepository)
	uc := NewResolveIdentityUseCase(repo, logger.NewLogger())

	winner := passwordUser(11, "alice@example.com", "Alice Smith")

	repo.On("GetByLinkage", mock.Anything, "google", "goog-123").Return(nil, nil).Once()
	repo.On("GetByEmail", mock.Anything, "alice@example.com").Return(nil, nil).Once()
	repo.On("Create", mock.Anything, mock.AnythingOfType("*user.User")).
		Return(fmt.Errorf("%w: alice@example.com", apperrors.ErrEmailConflict))
	// Retry re-reads: still no linkage, but the winner's row is there now.
	repo.On("GetByLinkage", mock.Anything, "google", "goog-123").Return(nil, nil).Once()
	repo.On("GetByEmail", mock.Anything, "alice@example.com").Return(winner, nil).Once()
	repo.On("Update", mock.Anything, winner).Return(nil)

	result, err := uc.Execute(context.Background(), googleAssertion())

	require.NoError(t, err)
	assert.False(t, result.IsNewUser)
	assert.Equal(t, uint(11), result.User.ID())
	assert.NotNil(t, result.User.LinkedProvider("google"))
}

func TestResolveIdentity_UnverifiedAssertionRejected(t *testing.T) {
	repo := new(mockUserRepository)
	uc := NewResolveIdentityUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), user.ProviderAssertion{Provider: "google"})

	require.Error(t, err)
	assert.True(t, apperrors.GetAppError(err) != nil)
	repo.AssertNotCalled(t, "GetByLinkage", mock.Anything, mock.Anything, mock.Anything)
}
