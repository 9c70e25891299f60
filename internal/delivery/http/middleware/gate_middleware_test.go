package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deliverycontext "kitchenlink/internal/delivery/context"
	"kitchenlink/internal/domain/entity"
)

func int64Ptr(v int64) *int64 { return &v }

func TestGateDecide(t *testing.T) {
	anonymous := (*entity.Session)(nil)
	unresolved := &entity.Session{Email: "new@example.com", IsNewUser: true}
	userSession := &entity.Session{Email: "u@example.com", AccountID: int64Ptr(1), UserID: int64Ptr(2)}
	storeSession := &entity.Session{Email: "s@example.com", AccountID: int64Ptr(3), StoreID: int64Ptr(4)}
	bothSession := &entity.Session{Email: "b@example.com", AccountID: int64Ptr(5), UserID: int64Ptr(6), StoreID: int64Ptr(7)}

	tests := []struct {
		name       string
		path       string
		session    *entity.Session
		allow      bool
		redirectTo string
	}{
		// Public paths bypass the gate entirely.
		{"login is public", "/login", anonymous, true, ""},
		{"login subpath is public", "/login/callback", unresolved, true, ""},
		{"auth api is public", "/api/auth/callback", anonymous, true, ""},
		{"api routes are public", "/api/opinions", unresolved, true, ""},
		{"static assets are public", "/favicon.ico", unresolved, true, ""},
		{"health probe is public", "/health", anonymous, true, ""},
		{"nested asset is public", "/assets/app.bundle.js", anonymous, true, ""},

		// Not onboarded: only the setup allow-list is reachable.
		{"unresolved may see root", "/", unresolved, true, ""},
		{"unresolved may see user setup", "/user", unresolved, true, ""},
		{"unresolved may see store setup", "/store", unresolved, true, ""},
		{"unresolved elsewhere redirects to setup", "/profile", unresolved, false, "/user"},
		{"anonymous elsewhere redirects to setup", "/dashboard", anonymous, false, "/user"},

		// Onboarded: setup pages redirect home, everything else passes.
		{"user on user setup redirects home", "/user", userSession, false, "/"},
		{"user on store setup redirects home", "/store", userSession, false, "/"},
		{"store on store setup redirects home", "/store", storeSession, false, "/"},
		{"setup check is case-insensitive", "/User", userSession, false, "/"},
		{"user elsewhere passes", "/profile", userSession, true, ""},
		{"store elsewhere passes", "/dashboard", storeSession, true, ""},
		{"user may see root", "/", userSession, true, ""},

		// A session with both ids gates exactly like one with either.
		{"both ids on user setup redirects home", "/user", bothSession, false, "/"},
		{"both ids elsewhere passes", "/profile", bothSession, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := Decide(tt.path, tt.session)
			assert.Equal(t, tt.allow, decision.Allow)
			assert.Equal(t, tt.redirectTo, decision.RedirectTo)
		})
	}
}

func TestGateMiddleware_RedirectsNotOnboarded(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetSession(c, &entity.Session{Email: "new@example.com"})

	gate := NewGateMiddleware()
	handler := gate.Process(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/user", rec.Header().Get("Location"))
}

func TestGateMiddleware_PassesOnboarded(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetSession(c, &entity.Session{
		Email:     "u@example.com",
		AccountID: int64Ptr(1),
		UserID:    int64Ptr(2),
	})

	gate := NewGateMiddleware()
	handler := gate.Process(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
