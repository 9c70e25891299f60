package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"kitchenlink/internal/delivery/http/response"
	"kitchenlink/internal/usecase"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	accountUsecase usecase.AccountUsecase
	logger         *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(accountUsecase usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		accountUsecase: accountUsecase,
		logger:         logger,
	}
}

type createUserAccountRequest struct {
	Nickname       string `json:"nickname" validate:"required"`
	Introduction   string `json:"introduction"`
	GenderCode     *int   `json:"genderId"`
	AgeGroupCode   *int   `json:"ageGroupId"`
	OccupationCode *int   `json:"occupationId"`
}

// CreateUserAccount creates the account and user sub-profile for the
// authenticated email.
func (h *AccountHandler) CreateUserAccount(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req createUserAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid user account input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.accountUsecase.CreateUserAccount(c.Request().Context(), &usecase.CreateUserAccountInput{
		Email:          session.Email,
		Nickname:       req.Nickname,
		Introduction:   req.Introduction,
		GenderCode:     req.GenderCode,
		AgeGroupCode:   req.AgeGroupCode,
		OccupationCode: req.OccupationCode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.Account)
}

type createStoreAccountRequest struct {
	StoreName    string `json:"storeName" validate:"required"`
	Introduction string `json:"introduction"`
	StoreURL     string `json:"storeUrl"`
}

// CreateStoreAccount creates the account and store sub-profile for the
// authenticated email.
func (h *AccountHandler) CreateStoreAccount(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req createStoreAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid store account input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.accountUsecase.CreateStoreAccount(c.Request().Context(), &usecase.CreateStoreAccountInput{
		Email:        session.Email,
		StoreName:    req.StoreName,
		Introduction: req.Introduction,
		StoreURL:     req.StoreURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.Account)
}

// GetAccount returns the caller's account with its sub-profile.
func (h *AccountHandler) GetAccount(c echo.Context) error {
	accountID, err := requireAccountID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.accountUsecase.GetAccount(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Account)
}

type updateUserProfileRequest struct {
	Nickname       *string `json:"nickname"`
	Introduction   *string `json:"introduction"`
	GenderCode     *int    `json:"genderId"`
	AgeGroupCode   *int    `json:"ageGroupId"`
	OccupationCode *int    `json:"occupationId"`
}

// UpdateUserProfile applies a partial update to the caller's user profile.
func (h *AccountHandler) UpdateUserProfile(c echo.Context) error {
	accountID, err := requireAccountID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateUserProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid profile update input")
	}

	output, err := h.accountUsecase.UpdateUserProfile(c.Request().Context(), &usecase.UpdateUserProfileInput{
		AccountID:      accountID,
		Nickname:       req.Nickname,
		Introduction:   req.Introduction,
		GenderCode:     req.GenderCode,
		AgeGroupCode:   req.AgeGroupCode,
		OccupationCode: req.OccupationCode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Account)
}

type updateStoreProfileRequest struct {
	StoreName    *string `json:"storeName"`
	Introduction *string `json:"introduction"`
	StoreURL     *string `json:"storeUrl"`
}

// UpdateStoreProfile applies a partial update to the caller's store profile.
func (h *AccountHandler) UpdateStoreProfile(c echo.Context) error {
	accountID, err := requireAccountID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateStoreProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid profile update input")
	}

	output, err := h.accountUsecase.UpdateStoreProfile(c.Request().Context(), &usecase.UpdateStoreProfileInput{
		AccountID:    accountID,
		StoreName:    req.StoreName,
		Introduction: req.Introduction,
		StoreURL:     req.StoreURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Account)
}

// DeleteAccount removes the caller's account and every dependent record.
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	accountID, err := requireAccountID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.accountUsecase.DeleteAccount(c.Request().Context(), accountID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// ListLookupTables returns the static code tables for profile forms.
func (h *AccountHandler) ListLookupTables(c echo.Context) error {
	output, err := h.accountUsecase.ListLookupTables(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"genders":     output.Genders,
		"age_groups":  output.AgeGroups,
		"occupations": output.Occupations,
	})
}

// GetStoreShareQR renders the share QR code PNG for a store.
func (h *AccountHandler) GetStoreShareQR(c echo.Context) error {
	storeID, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	png, err := h.accountUsecase.GetStoreShareQR(c.Request().Context(), storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
