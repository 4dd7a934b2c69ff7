package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/umithief/motovibe6/internal/delivery/api/middleware"
	"github.com/umithief/motovibe6/internal/delivery/api/response"
	"github.com/umithief/motovibe6/internal/domain/entity"
	domainerrors "github.com/umithief/motovibe6/internal/domain/errors"
	"github.com/umithief/motovibe6/internal/usecase"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves checkout and order tracking.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// OrderItemRequest is one cart line. Name, image and price sent by the client
// are not read; the order freezes the catalog values.
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity" validate:"gte=1"`
}

// PlaceOrderRequest represents a checkout. Any client-side total is ignored.
type PlaceOrderRequest struct {
	Items []OrderItemRequest `json:"items" validate:"dive"`
}

// UpdateStatusRequest represents an admin status change
type UpdateStatusRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required,oneof=preparing shipped delivered cancelled"`
}

// PlaceOrder creates an order for the authenticated user.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Geçersiz oturum.")
	}

	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(c)
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	items := make([]entity.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = entity.OrderItem{ProductID: item.ProductID, Quantity: item.Quantity}
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), &usecase.PlaceOrderInput{
		UserID: userID,
		Items:  items,
	})
	if err != nil {
		return response.FailWith(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// ListOrders returns the caller's orders. Admins see every order, optionally
// narrowed by the userId query parameter.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Geçersiz oturum.")
	}

	var filter entity.OrderFilter
	if raw := c.QueryParam("userId"); raw != "" {
		requested, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Geçersiz kullanıcı kimliği.")
		}
		filter.UserID = &requested
	}

	if !middleware.IsAdmin(c) {
		if filter.UserID != nil && *filter.UserID != userID {
			return response.FailWith(c, domainerrors.ErrForbidden)
		}
		filter.UserID = &userID
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), filter)
	if err != nil {
		return response.FailWith(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// GetOrder returns one order to its owner or an admin.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, ok, err := h.loadVisibleOrder(c)
	if !ok {
		return err
	}

	return response.Success(c, http.StatusOK, order)
}

// GetTrackingQR renders the order's tracking QR code as PNG.
func (h *OrderHandler) GetTrackingQR(c echo.Context) error {
	order, ok, err := h.loadVisibleOrder(c)
	if !ok {
		return err
	}

	png, err := h.orderUC.TrackingQR(c.Request().Context(), order.ID)
	if err != nil {
		return response.FailWith(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// UpdateStatus moves an order along its lifecycle.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return invalidID(c)
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(c)
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return response.FailWith(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// loadVisibleOrder resolves the :id order and checks ownership. When ok is
// false the response has been written or err must be returned to Echo.
func (h *OrderHandler) loadVisibleOrder(c echo.Context) (*entity.Order, bool, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return nil, false, response.Unauthorized(c, "INVALID_TOKEN", "Geçersiz oturum.")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return nil, false, invalidID(c)
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), id)
	if err != nil {
		return nil, false, response.FailWith(c, err)
	}

	if order.UserID != userID && !middleware.IsAdmin(c) {
		return nil, false, response.FailWith(c, domainerrors.ErrForbidden)
	}

	return order, true, nil
}
