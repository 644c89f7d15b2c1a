package usecases

import (
	"context"
	"errors"
	"fmt"

	"checkmate/internal/domain/user"
	vo "checkmate/internal/domain/user/valueobjects"
	apperrors "checkmate/internal/shared/errors"
	"checkmate/internal/shared/logger"
)

type ResolveIdentityResult struct {
	User      *user.User
	IsNewUser bool
}

// ResolveIdentityUseCase maps a provider assertion onto exactly one account.
// Resolution order: an existing linkage wins outright, then an email match
// merges the provider into that account, and only then is a fresh account
// created. A linkage match never falls through to email matching, so a
// provider identity stays pinned to the account it was first linked to even
// if emails drift apart later.
type ResolveIdentityUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewResolveIdentityUseCase(userRepo user.Repository, logger logger.Interface) *ResolveIdentityUseCase {
	return &ResolveIdentityUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ResolveIdentityUseCase) Execute(ctx context.Context, assertion user.ProviderAssertion) (*ResolveIdentityResult, error) {
	if assertion.Provider == "" || assertion.ProviderUserID == "" {
		return nil, apperrors.NewValidationError("provider assertion is incomplete")
	}

	// Step 1: linkage match.
	existing, err := uc.userRepo.GetByLinkage(ctx, assertion.Provider, assertion.ProviderUserID)
	if err != nil {
		uc.logger.Errorw("failed to look up linkage", "provider", assertion.Provider, "error", err)
		return nil, fmt.Errorf("failed to look up linkage: %w", err)
	}
	if existing != nil {
		uc.refreshProfile(ctx, existing, assertion)
		return &ResolveIdentityResult{User: existing}, nil
	}

	// Step 2: email match merges the provider into the existing account.
	email := assertion.EffectiveEmail()
	existing, err = uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to look up user by email", "error", err)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if existing != nil {
		merged, err := uc.merge(ctx, existing, assertion)
		if err != nil {
			return nil, err
		}
		return &ResolveIdentityResult{User: merged}, nil
	}

	// Step 3: no match, create a fresh account seeded from the assertion.
	created, err := uc.create(ctx, assertion, email)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// merge links the provider into an account found by email and backfills the
// avatar. A linkage uniqueness race means someone else linked this provider
// identity first; the winner's account is re-read and used.
func (uc *ResolveIdentityUseCase) merge(ctx context.Context, existing *user.User, assertion user.ProviderAssertion) (*user.User, error) {
	if err := existing.LinkProvider(assertion); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	existing.BackfillAvatar(assertion.AvatarURL)

	if err := uc.userRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, apperrors.ErrLinkageConflict) {
			return uc.rereadByLinkage(ctx, assertion)
		}
		uc.logger.Errorw("failed to merge provider into account", "user_id", existing.ID(), "error", err)
		return nil, fmt.Errorf("failed to merge provider into account: %w", err)
	}

	uc.logger.Infow("provider linked to existing account",
		"user_id", existing.ID(), "provider", assertion.Provider)
	return existing, nil
}

// create inserts a fresh account. An email uniqueness race means a
// concurrent resolution created the account first; resolution is retried
// once against the winner's row.
func (uc *ResolveIdentityUseCase) create(ctx context.Context, assertion user.ProviderAssertion, email string) (*ResolveIdentityResult, error) {
	emailVO, err := vo.NewEmail(email)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid email from provider", err.Error())
	}

	nameVO, err := vo.NewName(assertion.EffectiveDisplayName())
	if err != nil {
		return nil, apperrors.NewValidationError("invalid display name from provider", err.Error())
	}

	newUser, err := user.NewUserFromAssertion(emailVO, nameVO, assertion)
	if err != nil {
		return nil, fmt.Errorf("failed to build user from assertion: %w", err)
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, apperrors.ErrEmailConflict) {
			uc.logger.Infow("lost creation race, retrying resolution", "provider", assertion.Provider)
			return uc.retryAfterConflict(ctx, assertion, email)
		}
		uc.logger.Errorw("failed to create user from assertion", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.logger.Infow("account created from provider assertion",
		"user_id", newUser.ID(), "provider", assertion.Provider)
	return &ResolveIdentityResult{User: newUser, IsNewUser: true}, nil
}

// retryAfterConflict re-runs matching once after losing a creation race.
// The winner's row must exist now, by linkage or by email.
func (uc *ResolveIdentityUseCase) retryAfterConflict(ctx context.Context, assertion user.ProviderAssertion, email string) (*ResolveIdentityResult, error) {
	winner, err := uc.userRepo.GetByLinkage(ctx, assertion.Provider, assertion.ProviderUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read linkage after conflict: %w", err)
	}
	if winner != nil {
		return &ResolveIdentityResult{User: winner}, nil
	}

	winner, err = uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read user after conflict: %w", err)
	}
	if winner == nil {
		return nil, apperrors.NewEmailConflictError(email)
	}

	merged, err := uc.merge(ctx, winner, assertion)
	if err != nil {
		return nil, err
	}
	return &ResolveIdentityResult{User: merged}, nil
}

func (uc *ResolveIdentityUseCase) rereadByLinkage(ctx context.Context, assertion user.ProviderAssertion) (*user.User, error) {
	winner, err := uc.userRepo.GetByLinkage(ctx, assertion.Provider, assertion.ProviderUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read linkage after conflict: %w", err)
	}
	if winner == nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrLinkageConflict, assertion.Provider)
	}
	return winner, nil
}

// refreshProfile backfills the avatar on a linkage match. Failures are
// non-critical; login proceeds either way.
func (uc *ResolveIdentityUseCase) refreshProfile(ctx context.Context, existing *user.User, assertion user.ProviderAssertion) {
	if !existing.BackfillAvatar(assertion.AvatarURL) {
		return
	}
	if err := uc.userRepo.Update(ctx, existing); err != nil {
		uc.logger.Warnw("failed to backfill avatar", "user_id", existing.ID(), "error", err)
	}
}
