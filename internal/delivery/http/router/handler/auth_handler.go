package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"kitchenlink/internal/delivery/http/middleware"
	"kitchenlink/internal/delivery/http/response"
	domainerrors "kitchenlink/internal/domain/errors"
	"kitchenlink/internal/domain/service"
	"kitchenlink/internal/usecase"
)

// stateCookieName holds the anti-forgery state between the login redirect
// and the provider callback.
const stateCookieName = "oauth_state"

// AuthHandler holds dependencies for login and session handlers.
type AuthHandler struct {
	sessionUsecase usecase.SessionUsecase
	tokenService   service.SessionTokenService
	logger         *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(sessionUsecase usecase.SessionUsecase, tokenService service.SessionTokenService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		sessionUsecase: sessionUsecase,
		tokenService:   tokenService,
		logger:         logger,
	}
}

// Login starts the provider login flow. With ?redirect=true the browser is
// sent straight to the provider; otherwise the URL is returned as JSON for
// the frontend to use.
func (h *AuthHandler) Login(c echo.Context) error {
	output, err := h.sessionUsecase.BeginLogin(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(&http.Cookie{
		Name:     stateCookieName,
		Value:    output.State,
		Path:     "/",
		MaxAge:   int((5 * time.Minute).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	if c.QueryParam("redirect") == "true" {
		return c.Redirect(http.StatusTemporaryRedirect, output.AuthorizationURL)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"authorization_url": output.AuthorizationURL,
	})
}

// Callback completes the provider login flow. The minted session token is
// stored as a cookie and the browser lands on the page the gate would pick
// for its onboarding state.
func (h *AuthHandler) Callback(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return response.BindingError(c, "Missing authorization code")
	}

	if stateCookie, err := c.Cookie(stateCookieName); err != nil || stateCookie.Value == "" || stateCookie.Value != c.QueryParam("state") {
		return domainerrors.ErrIdentityFailed.WrapMessage("state mismatch")
	}

	output, err := h.sessionUsecase.CompleteLogin(c.Request().Context(), code)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Token)

	if output.Session.Onboarded() {
		return c.Redirect(http.StatusTemporaryRedirect, "/")
	}

	return c.Redirect(http.StatusTemporaryRedirect, "/user")
}

// Refresh re-resolves the account for the current session and mints a new
// token. Clients call this right after finishing onboarding so the token
// picks up the fresh profile ids.
func (h *AuthHandler) Refresh(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.sessionUsecase.RefreshSession(c.Request().Context(), session)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Token)

	return response.Success(c, http.StatusOK, map[string]any{
		"token":   output.Token,
		"session": sessionView(output.Session),
	})
}

// Session returns the decoded session accompanying the request.
func (h *AuthHandler) Session(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sessionView(session))
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return response.Success(c, http.StatusOK, map[string]string{"message": "logged out"})
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokenService.GetTokenDuration().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
