// Package geocoding implements the reverse geocoding proxy against an
// external HTTP provider.
package geocoding

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"kitchenlink/config"
	domainerrors "kitchenlink/internal/domain/errors"
	"kitchenlink/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultRequestTimeout = 10 * time.Second

// providerResponse is the relevant subset of the upstream geocoder response.
type providerResponse struct {
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
	} `json:"results"`
	Status string `json:"status"`
}

// geocodingService implements service.GeocodingService over an external provider.
type geocodingService struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewGeocodingService creates a new reverse geocoding client
func NewGeocodingService(cfg *config.Config, logger *slog.Logger) service.GeocodingService {
	svc := &geocodingService{
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
		logger:     logger,
	}

	if cfg.Geocoding != nil {
		svc.endpoint = cfg.Geocoding.Endpoint
		svc.apiKey = cfg.Geocoding.APIKey
		if cfg.Geocoding.Timeout > 0 {
			svc.httpClient.Timeout = cfg.Geocoding.Timeout
		}
	}

	return svc
}

// ReverseGeocode resolves a coordinate pair to a human-readable address.
// The country prefix is stripped from the provider's formatted address.
func (s *geocodingService) ReverseGeocode(ctx context.Context, latitude, longitude float64) (string, error) {
	if s.apiKey == "" {
		return "", domainerrors.ErrGeocodingUnavailable.WrapMessage("provider API key is not configured")
	}

	params := url.Values{}
	params.Set("latlng", strconv.FormatFloat(latitude, 'f', -1, 64)+","+strconv.FormatFloat(longitude, 'f', -1, 64))
	params.Set("key", s.apiKey)
	params.Set("language", "ja")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to build geocoding request")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", domainerrors.ErrGeocodingUnavailable.WrapMessage("upstream request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to read geocoding response")
	}
	if resp.StatusCode != http.StatusOK {
		s.logger.Error("Geocoding provider rejected request",
			slog.Int("status", resp.StatusCode))

		return "", domainerrors.ErrGeocodingUnavailable.WrapMessage("upstream returned non-OK status")
	}

	var parsed providerResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", errors.Wrap(err, "failed to parse geocoding response")
	}
	if parsed.Status != "OK" || len(parsed.Results) == 0 {
		s.logger.Warn("Geocoding provider returned no results",
			slog.String("status", parsed.Status),
			slog.Float64("latitude", latitude),
			slog.Float64("longitude", longitude))

		return "", domainerrors.ErrGeocodingUnavailable.WrapMessage("no address found for coordinates")
	}

	return stripCountryPrefix(parsed.Results[0].FormattedAddress), nil
}

// stripCountryPrefix removes the leading country segment the provider
// prepends to formatted addresses (e.g. "日本、" or "Japan, ").
func stripCountryPrefix(address string) string {
	for _, sep := range []string{"、", ", "} {
		if idx := strings.Index(address, sep); idx >= 0 {
			prefix := address[:idx]
			if prefix == "日本" || strings.EqualFold(prefix, "japan") {
				return address[idx+len(sep):]
			}
		}
	}

	return address
}
