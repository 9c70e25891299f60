// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	deliverycontext "kitchenlink/internal/delivery/context"
	"kitchenlink/internal/domain/entity"
	domainerrors "kitchenlink/internal/domain/errors"
)

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// parseIDParam reads a numeric path parameter. Non-numeric values are a
// client error, not a lookup miss.
func parseIDParam(c echo.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be numeric")
	}

	return id, nil
}

// requireSession returns the decoded session or the missing-session error.
func requireSession(c echo.Context) (*entity.Session, error) {
	session := deliverycontext.GetSession(c)
	if session == nil {
		return nil, domainerrors.ErrSessionMissing
	}

	return session, nil
}

// requireAccountID returns the resolved account id of the caller.
func requireAccountID(c echo.Context) (int64, error) {
	session, err := requireSession(c)
	if err != nil {
		return 0, err
	}
	if session.AccountID == nil {
		return 0, domainerrors.ErrForbidden.WithDetails("session has no resolved account")
	}

	return *session.AccountID, nil
}

// parseQueryID reads a numeric query parameter value.
func parseQueryID(raw, name string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be numeric")
	}

	return id, nil
}

// sessionView shapes a session for JSON responses.
func sessionView(session *entity.Session) map[string]any {
	return map[string]any{
		"email":      session.Email,
		"account_id": session.AccountID,
		"user_id":    session.UserID,
		"store_id":   session.StoreID,
		"is_new":     session.IsNewUser,
		"onboarded":  session.Onboarded(),
	}
}

// requireStoreID returns the caller's store profile id. Only store
// accounts carry one.
func requireStoreID(c echo.Context) (int64, error) {
	session, err := requireSession(c)
	if err != nil {
		return 0, err
	}
	if session.StoreID == nil {
		return 0, domainerrors.ErrForbidden.WithDetails("session has no store profile")
	}

	return *session.StoreID, nil
}
