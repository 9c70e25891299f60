package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	deliverycontext "kitchenlink/internal/delivery/context"
	"kitchenlink/internal/domain/entity"
)

// GateDecision is the outcome of evaluating a request against the
// onboarding state carried in the session token.
type GateDecision struct {
	Allow      bool
	RedirectTo string
}

// setupPaths are the pages an account-less session may still reach.
var setupPaths = map[string]struct{}{
	"/":      {},
	"/user":  {},
	"/store": {},
	"/login": {},
}

// GateMiddleware steers page requests by onboarding state. Sessions
// without a resolved sub-profile are sent to the setup page; fully
// onboarded sessions are sent away from the setup pages. The gate never
// rejects a request, it only redirects to a reachable page.
type GateMiddleware struct{}

// NewGateMiddleware creates a new onboarding gate middleware
func NewGateMiddleware() *GateMiddleware {
	return &GateMiddleware{}
}

// Decide evaluates the gate for a path and session. It is a pure
// function so the redirect matrix can be tested without a server.
func Decide(path string, session *entity.Session) GateDecision {
	if isPublicPath(path) {
		return GateDecision{Allow: true}
	}

	if !session.Onboarded() {
		if isSetupPath(path) {
			return GateDecision{Allow: true}
		}

		return GateDecision{RedirectTo: "/user"}
	}

	// Onboarded sessions have no business on the setup pages. A session
	// carrying both ids gates exactly like one carrying either.
	lowered := strings.ToLower(path)
	if lowered == "/user" || lowered == "/store" {
		return GateDecision{RedirectTo: "/"}
	}

	return GateDecision{Allow: true}
}

// isPublicPath reports whether the gate skips a path entirely. API
// routes carry their own session checks, and static assets are
// recognized by the dot in their file name.
func isPublicPath(path string) bool {
	if path == "/health" {
		return true
	}
	if strings.HasPrefix(path, "/login") || strings.HasPrefix(path, "/api/auth") {
		return true
	}
	if strings.HasPrefix(path, "/api/") {
		return true
	}
	if strings.Contains(path, ".") {
		return true
	}

	return false
}

// isSetupPath reports whether an account-less session may reach a path.
func isSetupPath(path string) bool {
	if strings.HasPrefix(path, "/api/auth") {
		return true
	}
	_, ok := setupPaths[path]

	return ok
}

// Process applies the gate decision to the incoming request.
func (m *GateMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		decision := Decide(c.Request().URL.Path, deliverycontext.GetSession(c))
		if decision.RedirectTo != "" {
			return c.Redirect(http.StatusTemporaryRedirect, decision.RedirectTo)
		}

		return next(c)
	}
}
