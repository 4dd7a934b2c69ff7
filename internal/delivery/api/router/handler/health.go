// Package handler contains the Echo handlers of the REST API.
package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/umithief/motovibe6/internal/delivery/api/response"
)

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

func invalidID(c echo.Context) error {
	return response.BadRequest(c, "INVALID_ID", "Geçersiz kimlik.")
}

func invalidInput(c echo.Context) error {
	return response.BadRequest(c, "INVALID_INPUT", "İstek gövdesi okunamadı.")
}

func validationError(c echo.Context, err error) error {
	return response.Fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Girilen bilgiler geçersiz.", err.Error())
}
