// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"kitchenlink/config"
	"kitchenlink/internal/domain/entity"
	"kitchenlink/internal/domain/service"
)

const defaultSessionTTL = time.Hour * 24

// sessionClaims carries the session state inside a JWT.
// Pointer fields stay absent from the payload until the account is resolved.
type sessionClaims struct {
	Email     string `json:"email"`
	AccountID *int64 `json:"accountId,omitempty"`
	UserID    *int64 `json:"userId,omitempty"`
	StoreID   *int64 `json:"storeId,omitempty"`
	IsNewUser bool   `json:"isNewUser"`
	jwt.RegisteredClaims
}

// jwtSessionService is a concrete implementation of the SessionTokenService
// interface using the JWT standard.
type jwtSessionService struct {
	secret     string        // Secret key for signing session tokens.
	sessionTTL time.Duration // Time-to-live for session tokens.
}

// NewJWTSessionService is the constructor for jwtSessionService.
func NewJWTSessionService(cfg *config.Config) (service.SessionTokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	ttl := defaultSessionTTL
	if cfg.Session != nil && cfg.Session.TokenDuration > 0 {
		ttl = cfg.Session.TokenDuration
	}

	return &jwtSessionService{
		secret:     cfg.SecretKey.Session,
		sessionTTL: ttl,
	}, nil
}

// IssueToken creates a new session token carrying the given session state.
func (s *jwtSessionService) IssueToken(session *entity.Session) (string, error) {
	now := time.Now()
	claims := &sessionClaims{
		Email:     session.Email,
		AccountID: session.AccountID,
		UserID:    session.UserID,
		StoreID:   session.StoreID,
		IsNewUser: session.IsNewUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// ValidateToken checks the validity of a token string and returns the embedded session.
func (s *jwtSessionService) ValidateToken(tokenString string) (*entity.Session, error) {
	claims := &sessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse session token")
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}

	return &entity.Session{
		Email:     claims.Email,
		AccountID: claims.AccountID,
		UserID:    claims.UserID,
		StoreID:   claims.StoreID,
		IsNewUser: claims.IsNewUser,
	}, nil
}

// GetTokenDuration returns the configured lifetime for session tokens.
func (s *jwtSessionService) GetTokenDuration() time.Duration {
	return s.sessionTTL
}
