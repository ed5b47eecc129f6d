package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"beautymap/config"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

// gormSlogLogger routes GORM output through the application logger.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{
		logger:        baseLogger,
		level:         level,
		slowThreshold: defaultGormSlowThreshold,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) printf(ctx context.Context, atLeast logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.logger == nil || l.level < atLeast {
		return
	}

	l.logger.LogAttrs(ctx, level, "GORM", slog.String("message", fmt.Sprintf(msg, args...)))
}

// traceEntry is how a finished statement should be reported.
type traceEntry struct {
	atLeast logger.LogLevel
	level   slog.Level
	msg     string
	extra   []slog.Attr
}

// classify decides how a statement is reported. Missing rows are expected lookups
// and unique violations become 409 responses, so neither is an error here.
func (l *gormSlogLogger) classify(elapsed time.Duration, err error) (traceEntry, bool) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return traceEntry{}, false
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return traceEntry{atLeast: logger.Info, level: slog.LevelInfo, msg: "SQL constraint conflict",
			extra: []slog.Attr{slog.String("error", err.Error())}}, true
	case err != nil:
		return traceEntry{atLeast: logger.Error, level: slog.LevelError, msg: "SQL failed",
			extra: []slog.Attr{slog.String("error", err.Error())}}, true
	case l.slowThreshold > 0 && elapsed > l.slowThreshold:
		return traceEntry{atLeast: logger.Warn, level: slog.LevelWarn, msg: "SQL slow",
			extra: []slog.Attr{slog.Duration("slowThreshold", l.slowThreshold)}}, true
	default:
		return traceEntry{atLeast: logger.Info, level: slog.LevelInfo, msg: "SQL"}, true
	}
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	entry, ok := l.classify(elapsed, err)
	if !ok || l.level < entry.atLeast {
		return
	}

	sql, rows := sqlAndRowsFn()
	attrs := append([]slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}, entry.extra...)

	l.logger.LogAttrs(ctx, entry.level, entry.msg, attrs...)
}
