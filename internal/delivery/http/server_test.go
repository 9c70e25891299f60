package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"kitchenlink/config"
	deliverymiddleware "kitchenlink/internal/delivery/http/middleware"
	"kitchenlink/internal/delivery/http/router"
	"kitchenlink/internal/delivery/http/router/handler"
)

func newServerForTest(t *testing.T) *httpServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.Port = 8080
	cfg.HTTP.MaxRequestBodySize = "100KB"

	srv, err := NewServer(HTTPParams{
		Lifecycle:       fxtest.NewLifecycle(t),
		Config:          cfg,
		Logger:          logger,
		ErrorMiddleware: deliverymiddleware.NewErrorMiddleware(logger),
		RouterParams: router.RouterParams{
			AuthHandler:         handler.NewAuthHandler(nil, nil, logger),
			AccountHandler:      handler.NewAccountHandler(nil, logger),
			LocationHandler:     handler.NewLocationHandler(nil, logger),
			OpinionHandler:      handler.NewOpinionHandler(nil, logger),
			QuestionHandler:     handler.NewQuestionHandler(nil, logger),
			GeocodingHandler:    handler.NewGeocodingHandler(nil, logger),
			RequestIDMiddleware: deliverymiddleware.NewRequestIDMiddleware(logger),
			LoggerMiddleware:    deliverymiddleware.NewLoggerMiddleware(logger, cfg),
			SessionMiddleware:   deliverymiddleware.NewSessionMiddleware(nil),
			GateMiddleware:      deliverymiddleware.NewGateMiddleware(),
		},
	})
	require.NoError(t, err)

	return srv.(*httpServer)
}

func TestServer_HealthCheck(t *testing.T) {
	srv := newServerForTest(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_RejectsOversizedBody(t *testing.T) {
	srv := newServerForTest(t)

	body := strings.NewReader(strings.Repeat("a", 200*1024))
	req := httptest.NewRequest(http.MethodPost, "/api/opinions", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	srv.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
