package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/umithief/motovibe6/internal/domain/entity"
)

// PlaceOrderInput is a checkout request. Items are the frozen cart lines.
type PlaceOrderInput struct {
	UserID uuid.UUID
	Items  []entity.OrderItem
}

// OrderUsecase turns carts into orders and drives their status.
type OrderUsecase interface {
	PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*entity.Order, error)
	ListOrders(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
	// TrackingQR renders the order's tracking QR code as PNG.
	TrackingQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
