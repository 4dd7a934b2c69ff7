package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/umithief/motovibe6/config"
	"github.com/umithief/motovibe6/internal/errors"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormSlogLogger sends GORM's statement traces to slog. Fast statements are
// traced only in debug; expected errors such as not-found or a duplicate
// order code are left to the repositories.
type gormSlogLogger struct {
	logger *slog.Logger
	level  gormlogger.LogLevel
	slow   time.Duration
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) gormlogger.Interface {
	level := gormlogger.Warn
	if cfg != nil && (cfg.Env.Debug || cfg.Env.Log.Level == "debug") {
		level = gormlogger.Info
	}

	return &gormSlogLogger{logger: base, level: level, slow: slowQueryThreshold}
}

func (l *gormSlogLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	next := *l
	next.level = level

	return &next
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Info, slog.LevelInfo, msg, args)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Warn, slog.LevelWarn, msg, args)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Error, slog.LevelError, msg, args)
}

func (l *gormSlogLogger) printf(ctx context.Context, enabledAt gormlogger.LogLevel, level slog.Level, msg string, args []any) {
	if l.logger == nil || l.level < enabledAt {
		return
	}

	l.logger.LogAttrs(ctx, level, "postgres "+level.String(), slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logger == nil || l.level == gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	level, msg, extra := slog.LevelDebug, "postgres query", slog.Attr{}

	switch {
	case err != nil && l.level >= gormlogger.Error && !expectedQueryError(err):
		level, msg, extra = slog.LevelError, "postgres query failed", slog.String("error", err.Error())
	case l.slow > 0 && elapsed > l.slow && l.level >= gormlogger.Warn:
		level, msg, extra = slog.LevelWarn, "postgres slow query", slog.Duration("threshold", l.slow)
	case l.level < gormlogger.Info:
		return
	}

	sql, rows := fc()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
	if extra.Key != "" {
		attrs = append(attrs, extra)
	}

	l.logger.LogAttrs(ctx, level, msg, attrs...)
}

func expectedQueryError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || isUniqueConstraintViolation(err)
}
