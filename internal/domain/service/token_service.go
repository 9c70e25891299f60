package service

import (
	"time"

	"kitchenlink/internal/domain/entity"
)

// SessionTokenService defines the interface for issuing and validating session tokens.
// This abstracts the details of token creation from the use cases.
type SessionTokenService interface {
	// IssueToken creates a new session token carrying the given session state.
	IssueToken(session *entity.Session) (string, error)

	// ValidateToken checks the validity of a token string and returns the embedded session.
	ValidateToken(tokenString string) (*entity.Session, error)

	// GetTokenDuration returns the configured lifetime for session tokens.
	GetTokenDuration() time.Duration
}
