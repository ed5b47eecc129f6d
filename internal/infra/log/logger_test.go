package logs

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"beautymap/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_TagsRequestID(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{Env: config.Env{ServiceName: "beautymap", Log: config.Log{Level: "debug"}}}

	logger, err := NewWithWriter(cfg, &buf)
	require.NoError(t, err)

	ctx := WithRequestID(context.Background(), "req-1")
	logger.InfoContext(ctx, "hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "req-1", record["request_id"])
	assert.Equal(t, "beautymap", record["service"])
}

func TestNewWithWriter_NoDuplicateRequestID(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{Env: config.Env{Log: config.Log{Level: "info"}}}

	logger, err := NewWithWriter(cfg, &buf)
	require.NoError(t, err)

	ctx := WithRequestID(context.Background(), "req-2")
	logger.With(slog.String(RequestIDKey, "req-2")).InfoContext(ctx, "bound")

	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte(`"request_id"`)))
}

func TestNewWithWriter_UnknownLevel(t *testing.T) {
	cfg := &config.Config{Env: config.Env{Log: config.Log{Level: "loud"}}}

	_, err := NewWithWriter(cfg, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))
}
