package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	deliverycontext "kitchenlink/internal/delivery/context"
	"kitchenlink/internal/usecase"
)

// SessionCookieName is the cookie the browser flow stores the token in.
// API clients may send the same token as a Bearer header instead.
const SessionCookieName = "session_token"

// SessionMiddleware decodes the session token accompanying a request and
// stores the result for later middleware and handlers. It never rejects:
// a missing or invalid token simply leaves the request anonymous, and the
// onboarding gate decides what an anonymous request may reach.
type SessionMiddleware struct {
	sessionUsecase usecase.SessionUsecase
}

// NewSessionMiddleware creates a new session decoding middleware
func NewSessionMiddleware(sessionUsecase usecase.SessionUsecase) *SessionMiddleware {
	return &SessionMiddleware{
		sessionUsecase: sessionUsecase,
	}
}

// Process extracts and validates the session token, if present.
func (m *SessionMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return next(c)
		}

		session, err := m.sessionUsecase.ParseToken(tokenString)
		if err != nil {
			// Expired or tampered tokens degrade to anonymous.
			return next(c)
		}

		deliverycontext.SetSession(c, session)

		ctx := deliverycontext.WithSession(c.Request().Context(), session)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// extractToken prefers the Authorization header and falls back to the
// session cookie.
func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString != authHeader {
			return tokenString
		}
	}

	cookie, err := c.Cookie(SessionCookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	return ""
}
