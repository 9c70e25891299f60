package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deliverycontext "kitchenlink/internal/delivery/context"
	"kitchenlink/internal/domain/entity"
	domainerrors "kitchenlink/internal/domain/errors"
)

func newParamContext(t *testing.T, names, values []string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	return c
}

func TestParseIDParam(t *testing.T) {
	c := newParamContext(t, []string{"accountId", "questionId"}, []string{"12", "abc"})

	id, err := parseIDParam(c, "accountId")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	// Non-numeric ids are a client error, not a lookup miss.
	_, err = parseIDParam(c, "questionId")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestRequireSession(t *testing.T) {
	c := newParamContext(t, nil, nil)

	_, err := requireSession(c)
	assert.ErrorIs(t, err, domainerrors.ErrSessionMissing)

	deliverycontext.SetSession(c, &entity.Session{Email: "alice@example.com"})
	session, err := requireSession(c)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", session.Email)
}

func TestRequireStoreID(t *testing.T) {
	c := newParamContext(t, nil, nil)

	accountID := int64(1)
	userID := int64(2)
	deliverycontext.SetSession(c, &entity.Session{
		Email:     "u@example.com",
		AccountID: &accountID,
		UserID:    &userID,
	})

	// A user session has no store profile.
	_, err := requireStoreID(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())

	storeID := int64(4)
	deliverycontext.SetSession(c, &entity.Session{
		Email:     "s@example.com",
		AccountID: &accountID,
		StoreID:   &storeID,
	})

	got, err := requireStoreID(c)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got)
}
