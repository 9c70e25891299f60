package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"kitchenlink/internal/delivery/http/response"
	"kitchenlink/internal/usecase"
)

// LocationHandler holds dependencies for opening-schedule handlers.
type LocationHandler struct {
	locationUsecase usecase.LocationUsecase
	logger          *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler, injected by Fx.
func NewLocationHandler(locationUsecase usecase.LocationUsecase, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{
		locationUsecase: locationUsecase,
		logger:          logger,
	}
}

type locationRequest struct {
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	OpeningDate  time.Time `json:"openingDate" validate:"required"`
	LocationName string    `json:"locationName"`
}

// CreateLocation adds an opening-schedule entry for the caller's store.
func (h *LocationHandler) CreateLocation(c echo.Context) error {
	accountID, err := requireAccountID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	if _, err := requireStoreID(c); err != nil {
		return errors.WithStack(err)
	}

	var req locationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.locationUsecase.CreateLocation(c.Request().Context(), &usecase.CreateLocationInput{
		AccountID:    accountID,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		OpeningDate:  req.OpeningDate,
		LocationName: req.LocationName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.Location)
}

// GetLocation returns one opening-schedule entry.
func (h *LocationHandler) GetLocation(c echo.Context) error {
	locationID, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.locationUsecase.GetLocation(c.Request().Context(), locationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Location)
}

// ListLocations returns the caller's opening schedule, soonest first.
func (h *LocationHandler) ListLocations(c echo.Context) error {
	accountID, err := requireAccountID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.locationUsecase.ListLocations(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Locations)
}

// UpdateLocation replaces an entry the caller owns.
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	accountID, err := requireAccountID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	locationID, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req locationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.locationUsecase.UpdateLocation(c.Request().Context(), &usecase.UpdateLocationInput{
		LocationID:   locationID,
		AccountID:    accountID,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		OpeningDate:  req.OpeningDate,
		LocationName: req.LocationName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Location)
}

// DeleteLocation removes an entry the caller owns.
func (h *LocationHandler) DeleteLocation(c echo.Context) error {
	accountID, err := requireAccountID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	locationID, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.locationUsecase.DeleteLocation(c.Request().Context(), locationID, accountID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
