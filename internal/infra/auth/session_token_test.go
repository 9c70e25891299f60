package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kitchenlink/config"
	"kitchenlink/internal/domain/entity"
)

func newSessionServiceForTest(t *testing.T) *jwtSessionService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Session = "test-secret"

	svc, err := NewJWTSessionService(cfg)
	require.NoError(t, err)

	return svc.(*jwtSessionService)
}

func TestNewJWTSessionService_MissingSecret(t *testing.T) {
	_, err := NewJWTSessionService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTSessionService_RoundTrip(t *testing.T) {
	svc := newSessionServiceForTest(t)

	accountID := int64(9)
	userID := int64(15)
	session := &entity.Session{
		Email:     "alice@example.com",
		AccountID: &accountID,
		UserID:    &userID,
	}

	token, err := svc.IssueToken(session)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	decoded, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", decoded.Email)
	require.NotNil(t, decoded.AccountID)
	assert.Equal(t, int64(9), *decoded.AccountID)
	require.NotNil(t, decoded.UserID)
	assert.Equal(t, int64(15), *decoded.UserID)
	assert.Nil(t, decoded.StoreID)
	assert.True(t, decoded.Onboarded())
}

func TestJWTSessionService_UnresolvedSessionStaysUnresolved(t *testing.T) {
	svc := newSessionServiceForTest(t)

	token, err := svc.IssueToken(&entity.Session{
		Email:     "new@example.com",
		IsNewUser: true,
	})
	require.NoError(t, err)

	decoded, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Nil(t, decoded.AccountID)
	assert.Nil(t, decoded.UserID)
	assert.Nil(t, decoded.StoreID)
	assert.True(t, decoded.IsNewUser)
	assert.False(t, decoded.Onboarded())
}

func TestJWTSessionService_RejectsTamperedToken(t *testing.T) {
	svc := newSessionServiceForTest(t)

	token, err := svc.IssueToken(&entity.Session{Email: "alice@example.com"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestJWTSessionService_RejectsWrongSecret(t *testing.T) {
	issuing := newSessionServiceForTest(t)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Session = "different-secret"
	validating, err := NewJWTSessionService(otherCfg)
	require.NoError(t, err)

	token, err := issuing.IssueToken(&entity.Session{Email: "alice@example.com"})
	require.NoError(t, err)

	_, err = validating.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTSessionService_TokenDuration(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Session = "test-secret"
	cfg.Session = &config.SessionConfig{TokenDuration: 2 * time.Hour}

	svc, err := NewJWTSessionService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, svc.GetTokenDuration())
}
