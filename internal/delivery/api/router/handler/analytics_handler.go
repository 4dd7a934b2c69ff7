package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/umithief/motovibe6/internal/delivery/api/middleware"
	"github.com/umithief/motovibe6/internal/delivery/api/response"
	"github.com/umithief/motovibe6/internal/domain/entity"
	"github.com/umithief/motovibe6/internal/usecase"
)

const (
	defaultLogLimit = 50
	maxLogLimit     = 500
)

// AnalyticsHandlerParams holds dependencies for AnalyticsHandler, injected by Fx.
type AnalyticsHandlerParams struct {
	fx.In

	AnalyticsUC usecase.AnalyticsUsecase
	LogUC       usecase.ActivityLogUsecase
	Logger      *slog.Logger
}

// AnalyticsHandler serves visitor stats, event tracking, the dashboard and
// the activity log.
type AnalyticsHandler struct {
	analyticsUC usecase.AnalyticsUsecase
	logUC       usecase.ActivityLogUsecase
	logger      *slog.Logger
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler
func NewAnalyticsHandler(params AnalyticsHandlerParams) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUC: params.AnalyticsUC,
		logUC:       params.LogUC,
		logger:      params.Logger,
	}
}

// TrackEventRequest represents one analytics fact
type TrackEventRequest struct {
	Type        entity.EventType `json:"type" validate:"required"`
	UserName    string           `json:"userName"`
	ProductID   *uuid.UUID       `json:"productId"`
	ProductName string           `json:"productName"`
	Duration    int              `json:"duration" validate:"gte=0"`
}

// GetStats returns the visit counters.
func (h *AnalyticsHandler) GetStats(c echo.Context) error {
	stats, err := h.analyticsUC.VisitorStats(c.Request().Context())
	if err != nil {
		return response.FailWith(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// RecordVisit counts one visit for today.
func (h *AnalyticsHandler) RecordVisit(c echo.Context) error {
	if err := h.analyticsUC.RecordVisit(c.Request().Context()); err != nil {
		return response.FailWith(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// TrackEvent stores an analytics event. Guests are tracked without a user.
func (h *AnalyticsHandler) TrackEvent(c echo.Context) error {
	var req TrackEventRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(c)
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	event := &entity.AnalyticsEvent{
		Type:        req.Type,
		UserName:    req.UserName,
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		Duration:    req.Duration,
	}
	if userID, ok := middleware.GetUserID(c); ok {
		event.UserID = &userID
		if name := middleware.GetUserName(c); name != "" {
			event.UserName = name
		}
	}

	if err := h.analyticsUC.TrackEvent(c.Request().Context(), event); err != nil {
		return response.FailWith(c, err)
	}

	return c.NoContent(http.StatusAccepted)
}

// GetDashboard aggregates events over the requested range.
func (h *AnalyticsHandler) GetDashboard(c echo.Context) error {
	dashboard, err := h.analyticsUC.Dashboard(c.Request().Context(), entity.TimeRange(c.QueryParam("range")))
	if err != nil {
		return response.FailWith(c, err)
	}

	return response.Success(c, http.StatusOK, dashboard)
}

// ListLogs returns the most recent activity log entries.
func (h *AnalyticsHandler) ListLogs(c echo.Context) error {
	limit := defaultLogLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return response.BadRequest(c, "INVALID_LIMIT", "Geçersiz limit.")
		}
		limit = min(parsed, maxLogLimit)
	}

	logs, err := h.logUC.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return response.FailWith(c, err)
	}

	return response.Success(c, http.StatusOK, logs)
}
