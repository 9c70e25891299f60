package impl

import (
	"context"
	"log/slog"

	deliverycontext "kitchenlink/internal/delivery/context"
	"kitchenlink/internal/domain/entity"
	domainerrors "kitchenlink/internal/domain/errors"
	"kitchenlink/internal/domain/repository"
	"kitchenlink/internal/domain/service"
	"kitchenlink/internal/usecase"
	"kitchenlink/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	identityProvider service.IdentityProvider
	tokenService     service.SessionTokenService
	accountRepo      repository.AccountRepository
	logger           *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	IdentityProvider service.IdentityProvider
	TokenService     service.SessionTokenService
	AccountRepo      repository.AccountRepository
	Logger           *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		identityProvider: params.IdentityProvider,
		tokenService:     params.TokenService,
		accountRepo:      params.AccountRepo,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BeginLogin generates a state value and the provider authorization URL.
func (srv *sessionService) BeginLogin(_ context.Context) (*usecase.BeginLoginOutput, error) {
	state := uuid.New().String()

	return &usecase.BeginLoginOutput{
		AuthorizationURL: srv.identityProvider.BuildAuthorizationURL(state),
		State:            state,
	}, nil
}

// CompleteLogin exchanges the provider code, resolves the account for the
// authenticated email, and mints an enriched session token.
func (srv *sessionService) CompleteLogin(ctx context.Context, code string) (*usecase.SessionOutput, error) {
	identity, err := srv.identityProvider.Exchange(ctx, code)
	if err != nil {
		srv.log(ctx).Warn("Identity provider exchange failed", slog.Any("error", err))

		return nil, domainerrors.ErrIdentityFailed.WrapMessage("code exchange failed")
	}
	if !identity.EmailVerified {
		return nil, domainerrors.ErrIdentityFailed.WrapMessage("provider email is not verified")
	}

	return srv.issueSession(ctx, identity.Email, true)
}

// RefreshSession re-runs the account lookup for the session email and mints
// a new token. Clients call this after completing onboarding.
func (srv *sessionService) RefreshSession(ctx context.Context, current *entity.Session) (*usecase.SessionOutput, error) {
	if current == nil || current.Email == "" {
		return nil, domainerrors.ErrSessionInvalid
	}

	return srv.issueSession(ctx, current.Email, current.IsNewUser)
}

// ParseToken validates a raw token string and returns the session state.
func (srv *sessionService) ParseToken(tokenString string) (*entity.Session, error) {
	session, err := srv.tokenService.ValidateToken(tokenString)
	if err != nil {
		return nil, domainerrors.ErrSessionInvalid
	}

	return session, nil
}

// issueSession builds the session state from the account lookup. A missing
// account leaves the token unresolved (email only); the session stays that
// way until onboarding completes and the client refreshes.
func (srv *sessionService) issueSession(ctx context.Context, email string, isNewUser bool) (*usecase.SessionOutput, error) {
	normalized := util.NormalizeEmail(email)
	session := &entity.Session{
		Email:     normalized,
		IsNewUser: isNewUser,
	}

	account, err := srv.accountRepo.FindByEmailDigest(ctx, util.EmailDigest(normalized))
	switch {
	case err == nil:
		session.AccountID = &account.ID
		session.IsNewUser = false
		subProfileID := account.SubProfileID()
		switch account.Type {
		case entity.AccountTypeUser:
			session.UserID = &subProfileID
		case entity.AccountTypeStore:
			session.StoreID = &subProfileID
		}
	case errors.Is(err, repository.ErrAccountNotFound):
		// Unresolved session: the token carries only the email.
	default:
		return nil, errors.Wrap(err, "failed to resolve account for session")
	}

	token, err := srv.tokenService.IssueToken(session)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token",
			slog.String("email", normalized),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("Session issued",
		slog.String("email", normalized),
		slog.Bool("resolved", session.Onboarded()))

	return &usecase.SessionOutput{
		Token:   token,
		Session: session,
	}, nil
}
