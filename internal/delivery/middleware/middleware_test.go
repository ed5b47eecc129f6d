package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"beautymap/config"
	deliverycontext "beautymap/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newServer(buf *bytes.Buffer, debug bool, h echo.HandlerFunc) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, nil))
	cfg := &config.Config{Env: config.Env{Debug: debug}}

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/", h)

	return e
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	e := newServer(&bytes.Buffer{}, false, func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		assert.NotNil(t, deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil))

		return c.NoContent(http.StatusOK)
	})

	t.Run("keeps the caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "abc-123")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Equal(t, "abc-123", seen)
	})

	t.Run("replaces an oversized id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, strings.Repeat("x", 500))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		got := rec.Header().Get(deliverycontext.HeaderXRequestID)
		assert.Len(t, got, 36)
		assert.Equal(t, got, seen)
	})
}

func TestLoggerMiddleware(t *testing.T) {
	t.Run("debug logs every request with its id", func(t *testing.T) {
		var buf bytes.Buffer
		e := newServer(&buf, true, func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "abc-123")
		e.ServeHTTP(httptest.NewRecorder(), req)

		assert.Contains(t, buf.String(), `"msg":"HTTP Request"`)
		assert.Contains(t, buf.String(), `"request_id":"abc-123"`)
		assert.Contains(t, buf.String(), `"status":200`)
	})

	t.Run("quiet mode skips successful requests", func(t *testing.T) {
		var buf bytes.Buffer
		e := newServer(&buf, false, func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Empty(t, buf.String())
	})

	t.Run("errors are logged with the final status", func(t *testing.T) {
		var buf bytes.Buffer
		e := newServer(&buf, false, func(c echo.Context) error {
			return echo.NewHTTPError(http.StatusInternalServerError, "boom")
		})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, buf.String(), `"level":"ERROR"`)
		assert.Contains(t, buf.String(), `"status":500`)
	})
}
