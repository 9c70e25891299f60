package usecase

import (
	"context"

	"kitchenlink/internal/domain/entity"
)

// BeginLoginOutput carries the provider redirect for the login flow.
type BeginLoginOutput struct {
	AuthorizationURL string
	State            string
}

// SessionOutput returns a freshly minted session token and its decoded state.
type SessionOutput struct {
	Token   string
	Session *entity.Session
}

// SessionUsecase defines the interface for session and login operations.
type SessionUsecase interface {
	// BeginLogin generates a state value and the provider authorization URL.
	BeginLogin(ctx context.Context) (*BeginLoginOutput, error)

	// CompleteLogin exchanges the provider code, resolves the account for
	// the authenticated email, and mints an enriched session token.
	CompleteLogin(ctx context.Context, code string) (*SessionOutput, error)

	// RefreshSession re-runs the account lookup for the session email and
	// mints a new token. Clients call this after completing onboarding.
	RefreshSession(ctx context.Context, current *entity.Session) (*SessionOutput, error)

	// ParseToken validates a raw token string and returns the session state.
	ParseToken(tokenString string) (*entity.Session, error)
}
