package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/umithief/motovibe6/internal/domain/entity"
)

var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientStock is returned by AdjustStock when the decrement would go negative.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductRepository persists the catalog.
type ProductRepository interface {
	List(ctx context.Context) ([]*entity.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	// Update replaces every mutable field. Last writer wins.
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error

	// AdjustStock adds delta to the stock count atomically, refusing to go below zero.
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) error

	// Count is used to decide whether the catalog needs seeding.
	Count(ctx context.Context) (int64, error)
}
