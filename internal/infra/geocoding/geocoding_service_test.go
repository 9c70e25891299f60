package geocoding

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kitchenlink/config"
)

func newGeocodingServiceForTest(t *testing.T, endpoint, apiKey string) *geocodingService {
	t.Helper()

	cfg := &config.Config{
		Geocoding: &config.GeocodingConfig{
			Endpoint: endpoint,
			APIKey:   apiKey,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewGeocodingService(cfg, logger).(*geocodingService)
}

func TestGeocodingService_MissingAPIKey(t *testing.T) {
	svc := newGeocodingServiceForTest(t, "http://unused.example.com", "")

	_, err := svc.ReverseGeocode(context.Background(), 35.68, 139.76)
	assert.Error(t, err)
}

func TestGeocodingService_StripsCountryPrefix(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.URL.Query().Get("latlng"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK","results":[{"formatted_address":"日本、東京都千代田区丸の内1丁目"}]}`))
	}))
	defer upstream.Close()

	svc := newGeocodingServiceForTest(t, upstream.URL, "test-key")

	address, err := svc.ReverseGeocode(context.Background(), 35.68, 139.76)
	require.NoError(t, err)
	assert.Equal(t, "東京都千代田区丸の内1丁目", address)
}

func TestGeocodingService_ProviderZeroResults(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
	}))
	defer upstream.Close()

	svc := newGeocodingServiceForTest(t, upstream.URL, "test-key")

	_, err := svc.ReverseGeocode(context.Background(), 0, 0)
	assert.Error(t, err)
}

func TestStripCountryPrefix(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    string
	}{
		{"japanese prefix", "日本、東京都港区", "東京都港区"},
		{"english prefix", "Japan, Minato City, Tokyo", "Minato City, Tokyo"},
		{"no prefix", "東京都港区", "東京都港区"},
		{"other country kept", "France, Paris", "France, Paris"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripCountryPrefix(tt.address))
		})
	}
}
