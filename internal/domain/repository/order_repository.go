package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/umithief/motovibe6/internal/domain/entity"
)

var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderCodeTaken is returned when the unique display code index rejects an insert.
	ErrOrderCodeTaken = errors.New("order code already exists")
)

// OrderRepository persists orders. Items and Total are never rewritten after Create.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// List returns the matching orders, newest first.
	List(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}
