package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"kitchenlink/internal/delivery/http/response"
	domainerrors "kitchenlink/internal/domain/errors"
	"kitchenlink/internal/domain/service"
)

// GeocodingHandler proxies reverse-geocoding lookups for the frontend.
type GeocodingHandler struct {
	geocodingService service.GeocodingService
	logger           *slog.Logger
}

// NewGeocodingHandler is the constructor for GeocodingHandler, injected by Fx.
func NewGeocodingHandler(geocodingService service.GeocodingService, logger *slog.Logger) *GeocodingHandler {
	return &GeocodingHandler{
		geocodingService: geocodingService,
		logger:           logger,
	}
}

// ReverseGeocode resolves a coordinate pair to a human-readable address.
func (h *GeocodingHandler) ReverseGeocode(c echo.Context) error {
	latParam := c.QueryParam("lat")
	lngParam := c.QueryParam("lng")
	if latParam == "" || lngParam == "" {
		return domainerrors.ErrValidationFailed.WithDetails("lat and lng are required")
	}

	lat, err := strconv.ParseFloat(latParam, 64)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("lat must be numeric")
	}
	lng, err := strconv.ParseFloat(lngParam, 64)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("lng must be numeric")
	}

	address, err := h.geocodingService.ReverseGeocode(c.Request().Context(), lat, lng)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"address": address})
}
