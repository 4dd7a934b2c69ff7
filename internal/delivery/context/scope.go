// Package context carries request-scoped values, the request id and a logger
// tagged with it, from the Echo layer down to the use cases and out again to
// outgoing API calls.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the header a request id travels in, both directions.
const HeaderXRequestID = echo.HeaderXRequestID

// echoRequestIDKey stores the id on echo.Context for the response envelope.
const echoRequestIDKey = "motovibe.request_id"

type scopeKey uint8

const (
	requestIDKey scopeKey = iota + 1
	loggerKey
)

// GetRequestID returns the id assigned to the request. A request that skipped
// the middleware gets a fresh id, pinned so later envelopes repeat it.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	id := GetRequestIDFromContext(c.Request().Context())
	if id == "" {
		id = uuid.Must(uuid.NewV7()).String()
	}
	SetRequestID(c, id)

	return id
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestIDFromContext returns "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetLogger returns nil when no scoped logger was attached.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}
