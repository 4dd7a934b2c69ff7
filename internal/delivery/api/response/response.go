// Package response renders the JSON envelope shared by every API route:
// {"data": ..., "meta": {...}} on success, {"error": ..., "meta": {...}} otherwise.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	deliverycontext "github.com/umithief/motovibe6/internal/delivery/context"
	domainerrors "github.com/umithief/motovibe6/internal/domain/errors"
	"github.com/umithief/motovibe6/internal/errors"
)

type Envelope struct {
	Data  any        `json:"data,omitempty"`
	Error *ErrorBody `json:"error,omitempty"`
	Meta  Meta       `json:"meta"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type Meta struct {
	RequestID string `json:"request_id"`
}

func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Envelope{Data: data, Meta: meta(c)})
}

// Fail writes an error envelope. Details are kept only for client errors
// other than 401/403.
func Fail(c echo.Context, statusCode int, code, message string, details any) error {
	if !exposesDetails(statusCode) {
		details = nil
	}

	return c.JSON(statusCode, Envelope{
		Error: &ErrorBody{Code: code, Message: message, Details: details},
		Meta:  meta(c),
	})
}

func BadRequest(c echo.Context, code, message string) error {
	return Fail(c, http.StatusBadRequest, code, message, nil)
}

func Unauthorized(c echo.Context, code, message string) error {
	return Fail(c, http.StatusUnauthorized, code, message, nil)
}

// FailWith renders err when it is a domain error; anything else is handed
// back, with a stack, for Echo's error handler.
func FailWith(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return errors.WithStack(err)
	}

	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return Fail(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}

func meta(c echo.Context) Meta {
	return Meta{RequestID: deliverycontext.GetRequestID(c)}
}

func exposesDetails(statusCode int) bool {
	return statusCode < http.StatusInternalServerError &&
		statusCode != http.StatusUnauthorized &&
		statusCode != http.StatusForbidden
}
