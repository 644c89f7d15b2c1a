package user

import (
	"fmt"
	"strings"
)

// ProviderLink is the stored association between one account and one
// external provider identity. A (provider, providerUserID) pair maps to at
// most one account; the store enforces it with a unique index.
type ProviderLink struct {
	Provider       string
	ProviderUserID string
	ProviderEmail  string
}

// ProviderAssertion is a provider-confirmed claim of external identity,
// produced after the OAuth library verifies the callback. Email, DisplayName
// and AvatarURL are optional; Username feeds the placeholder email when the
// provider withholds the real one.
type ProviderAssertion struct {
	Provider       string
	ProviderUserID string
	Email          string
	DisplayName    string
	AvatarURL      string
	Username       string
}

// PlaceholderEmail synthesizes a unique stand-in address for providers that
// withhold email, e.g. "bob@github.local". Falls back to the provider user
// id when no username is available.
func (a ProviderAssertion) PlaceholderEmail() string {
	local := a.Username
	if local == "" {
		local = a.ProviderUserID
	}
	return strings.ToLower(fmt.Sprintf("%s@%s.local", local, a.Provider))
}

// EffectiveEmail returns the asserted email in the same normalized form the
// store keeps (trimmed, lower-cased), or the synthesized placeholder when the
// provider supplied none. Providers are free to report mixed-case addresses;
// matching against stored rows requires the normalized form.
func (a ProviderAssertion) EffectiveEmail() string {
	if email := strings.TrimSpace(a.Email); email != "" {
		return strings.ToLower(email)
	}
	return a.PlaceholderEmail()
}

// EffectiveDisplayName returns the asserted display name, or a
// provider-specific fallback.
func (a ProviderAssertion) EffectiveDisplayName() string {
	if a.DisplayName != "" {
		return a.DisplayName
	}
	if a.Username != "" {
		return a.Username
	}
	switch a.Provider {
	case "github":
		return "GitHub User"
	default:
		return "User"
	}
}
