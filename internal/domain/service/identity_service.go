package service

import (
	"context"
)

// IdentityUser represents user information returned by the identity provider
type IdentityUser struct {
	Subject       string // Provider-specific user ID (Google's 'sub' claim)
	Email         string // User's email address
	Name          string // User's display name
	AvatarURL     string // URL to user's profile picture
	EmailVerified bool   // Whether the email is verified by the provider
}

// IdentityProvider defines the interface for the external login flow.
// The provider owns the authorization redirect and the code exchange.
type IdentityProvider interface {
	// BuildAuthorizationURL returns the provider login URL carrying the given state.
	BuildAuthorizationURL(state string) string

	// Exchange trades an authorization code for the authenticated user's identity.
	Exchange(ctx context.Context, code string) (*IdentityUser, error)
}
