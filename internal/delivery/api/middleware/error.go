package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/umithief/motovibe6/internal/delivery/api/response"
	deliverycontext "github.com/umithief/motovibe6/internal/delivery/context"
	domainerrors "github.com/umithief/motovibe6/internal/domain/errors"
	"github.com/umithief/motovibe6/internal/errors"
)

// ErrorMiddleware is installed as Echo's HTTPErrorHandler so that every
// failure, including router 404/405s, leaves in the common envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, code, message := m.classify(err, c)
	_ = response.Fail(c, status, code, message, nil)
}

// classify maps err to the envelope fields; only server-side failures are logged.
func (m *ErrorMiddleware) classify(err error, c echo.Context) (int, string, string) {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	req := c.Request()

	if appErr, ok := asAppError(err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.Any("error", err),
				slog.String("code", appErr.ErrorCode()),
				slog.String("path", req.URL.Path),
			)
		}

		return appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}

		return httpErr.Code, "HTTP_ERROR", message
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
	)
	internal := domainerrors.ErrInternalError

	return internal.HTTPCode(), internal.ErrorCode(), internal.Message()
}

func asAppError(err error) (domainerrors.AppError, bool) {
	var appErr domainerrors.AppError
	ok := errors.As(err, &appErr)

	return appErr, ok
}
