package logs

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"beautymap/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RequestIDKey is the attribute name used for request IDs.
const RequestIDKey = "request_id"

type requestIDKey struct{}

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New creates and initializes slog.Logger
func New(params Params) (*slog.Logger, error) {
	return NewWithWriter(params.Config, os.Stdout)
}

// NewWithWriter builds the logger on an arbitrary writer. Records logged with a
// context carrying a request ID are tagged with it.
func NewWithWriter(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Env.Log.Pretty {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(&contextHandler{Handler: handler})
	if cfg.Env.ServiceName != "" {
		logger = logger.With(slog.String("service", cfg.Env.ServiceName))
	}

	return logger, nil
}

// WithRequestID stores the request ID for every record logged with ctx.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext returns the request ID or an empty string.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}

	return ""
}

// contextHandler adds the request ID from the record's context unless the
// logger was already bound to one with With.
type contextHandler struct {
	slog.Handler
	hasRequestID bool
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if !h.hasRequestID {
		if id := RequestIDFromContext(ctx); id != "" {
			r.AddAttrs(slog.String(RequestIDKey, id))
		}
	}

	return h.Handler.Handle(ctx, r)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	bound := h.hasRequestID
	for _, a := range attrs {
		if a.Key == RequestIDKey {
			bound = true
		}
	}

	return &contextHandler{Handler: h.Handler.WithAttrs(attrs), hasRequestID: bound}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithGroup(name), hasRequestID: h.hasRequestID}
}

// parseLogLevel converts string log level to slog.Level
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
