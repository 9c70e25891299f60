package context

import (
	"context"

	"github.com/labstack/echo/v4"

	"kitchenlink/internal/domain/entity"
)

// GetSession extracts the decoded session from echo.Context.
// Returns nil when no valid token accompanied the request.
func GetSession(c echo.Context) *entity.Session {
	if session, ok := c.Get(string(KeySession)).(*entity.Session); ok {
		return session
	}

	return nil
}

// SetSession stores the decoded session in echo.Context.
func SetSession(c echo.Context, session *entity.Session) {
	c.Set(string(KeySession), session)
}

// GetSessionFromContext extracts the decoded session from a standard
// context.Context. Returns nil when absent.
func GetSessionFromContext(ctx context.Context) *entity.Session {
	if session, ok := ctx.Value(KeySession).(*entity.Session); ok {
		return session
	}

	return nil
}

// WithSession returns a new context carrying the decoded session.
func WithSession(ctx context.Context, session *entity.Session) context.Context {
	return context.WithValue(ctx, KeySession, session)
}
