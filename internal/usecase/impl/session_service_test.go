package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"kitchenlink/internal/domain/entity"
	domainerrors "kitchenlink/internal/domain/errors"
	"kitchenlink/internal/domain/repository"
	"kitchenlink/internal/domain/service"
	mockRepo "kitchenlink/internal/mocks/repository"
	mockService "kitchenlink/internal/mocks/service"
	"kitchenlink/internal/usecase"
	"kitchenlink/internal/util"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSessionServiceForTest(t *testing.T) (usecase.SessionUsecase, *mockService.MockIdentityProvider, *mockService.MockSessionTokenService, *mockRepo.MockAccountRepository) {
	t.Helper()

	identityProvider := mockService.NewMockIdentityProvider(t)
	tokenService := mockService.NewMockSessionTokenService(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewSessionService(SessionServiceParams{
		IdentityProvider: identityProvider,
		TokenService:     tokenService,
		AccountRepo:      accountRepo,
		Logger:           logger,
	})

	return svc, identityProvider, tokenService, accountRepo
}

func TestSessionService_BeginLogin(t *testing.T) {
	svc, identityProvider, _, _ := newSessionServiceForTest(t)

	identityProvider.EXPECT().
		BuildAuthorizationURL(mock.AnythingOfType("string")).
		Return("https://provider.example.com/auth?state=x")

	output, err := svc.BeginLogin(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, output.State)
	assert.Equal(t, "https://provider.example.com/auth?state=x", output.AuthorizationURL)
}

func TestSessionService_CompleteLogin_ResolvedUserAccount(t *testing.T) {
	svc, identityProvider, tokenService, accountRepo := newSessionServiceForTest(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:          9,
		Email:       "alice@example.com",
		Type:        entity.AccountTypeUser,
		UserProfile: &entity.UserProfile{ID: 15, AccountID: 9, Nickname: "alice"},
	}

	identityProvider.EXPECT().
		Exchange(ctx, "auth-code").
		Return(&service.IdentityUser{Email: "Alice@Example.com", EmailVerified: true}, nil)
	accountRepo.EXPECT().
		FindByEmailDigest(ctx, util.EmailDigest("alice@example.com")).
		Return(account, nil)
	tokenService.EXPECT().
		IssueToken(mock.AnythingOfType("*entity.Session")).
		Return("signed-token", nil)

	output, err := svc.CompleteLogin(ctx, "auth-code")

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	require.NotNil(t, output.Session.AccountID)
	assert.Equal(t, int64(9), *output.Session.AccountID)
	require.NotNil(t, output.Session.UserID)
	assert.Equal(t, int64(15), *output.Session.UserID)
	assert.Nil(t, output.Session.StoreID)
	assert.False(t, output.Session.IsNewUser)
	assert.True(t, output.Session.Onboarded())
}

func TestSessionService_CompleteLogin_UnresolvedEmail(t *testing.T) {
	svc, identityProvider, tokenService, accountRepo := newSessionServiceForTest(t)

	ctx := context.Background()

	identityProvider.EXPECT().
		Exchange(ctx, "auth-code").
		Return(&service.IdentityUser{Email: "new@example.com", EmailVerified: true}, nil)
	accountRepo.EXPECT().
		FindByEmailDigest(ctx, util.EmailDigest("new@example.com")).
		Return(nil, repository.ErrAccountNotFound)
	tokenService.EXPECT().
		IssueToken(mock.AnythingOfType("*entity.Session")).
		Return("signed-token", nil)

	output, err := svc.CompleteLogin(ctx, "auth-code")

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", output.Session.Email)
	assert.Nil(t, output.Session.AccountID)
	assert.Nil(t, output.Session.UserID)
	assert.Nil(t, output.Session.StoreID)
	assert.True(t, output.Session.IsNewUser)
	assert.False(t, output.Session.Onboarded())
}

func TestSessionService_CompleteLogin_ExchangeFails(t *testing.T) {
	svc, identityProvider, _, _ := newSessionServiceForTest(t)

	ctx := context.Background()
	identityProvider.EXPECT().
		Exchange(ctx, "bad-code").
		Return(nil, errors.New("provider rejected the code"))

	output, err := svc.CompleteLogin(ctx, "bad-code")

	assert.ErrorIs(t, err, domainerrors.ErrIdentityFailed)
	assert.Nil(t, output)
}

func TestSessionService_CompleteLogin_UnverifiedEmail(t *testing.T) {
	svc, identityProvider, _, _ := newSessionServiceForTest(t)

	ctx := context.Background()
	identityProvider.EXPECT().
		Exchange(ctx, "auth-code").
		Return(&service.IdentityUser{Email: "alice@example.com", EmailVerified: false}, nil)

	output, err := svc.CompleteLogin(ctx, "auth-code")

	assert.ErrorIs(t, err, domainerrors.ErrIdentityFailed)
	assert.Nil(t, output)
}

func TestSessionService_RefreshSession_PicksUpNewProfile(t *testing.T) {
	svc, _, tokenService, accountRepo := newSessionServiceForTest(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:           4,
		Email:        "vendor@example.com",
		Type:         entity.AccountTypeStore,
		StoreProfile: &entity.StoreProfile{ID: 8, AccountID: 4, StoreName: "Curry Truck"},
	}

	accountRepo.EXPECT().
		FindByEmailDigest(ctx, util.EmailDigest("vendor@example.com")).
		Return(account, nil)
	tokenService.EXPECT().
		IssueToken(mock.AnythingOfType("*entity.Session")).
		Return("fresh-token", nil)

	current := &entity.Session{Email: "vendor@example.com", IsNewUser: true}
	output, err := svc.RefreshSession(ctx, current)

	require.NoError(t, err)
	require.NotNil(t, output.Session.StoreID)
	assert.Equal(t, int64(8), *output.Session.StoreID)
	assert.Nil(t, output.Session.UserID)
	assert.True(t, output.Session.Onboarded())
}

func TestSessionService_RefreshSession_NoSession(t *testing.T) {
	svc, _, _, _ := newSessionServiceForTest(t)

	output, err := svc.RefreshSession(context.Background(), nil)

	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
	assert.Nil(t, output)
}

func TestSessionService_ParseToken_Invalid(t *testing.T) {
	svc, _, tokenService, _ := newSessionServiceForTest(t)

	tokenService.EXPECT().
		ValidateToken("garbage").
		Return(nil, errors.New("token is malformed"))

	session, err := svc.ParseToken("garbage")

	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
	assert.Nil(t, session)
}
