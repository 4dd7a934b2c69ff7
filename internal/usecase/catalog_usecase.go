// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/umithief/motovibe6/internal/domain/entity"
)

// ProductInput carries the admin-editable fields of a product.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Category    entity.ProductCategory
	Image       string
	Images      []string
	Rating      float64
	Features    []string
	Stock       int
}

// CategoryInput carries the fields of a homepage category tile.
type CategoryInput struct {
	Name      string
	Type      entity.ProductCategory
	Image     string
	Desc      string
	Count     string
	ClassName string
}

// SlideInput carries the fields of a homepage slide.
type SlideInput struct {
	Image    string
	Title    string
	Subtitle string
	CTA      string
	Action   entity.SlideAction
}

// CatalogUsecase manages products and the homepage content.
type CatalogUsecase interface {
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	ListCategories(ctx context.Context) ([]*entity.CategoryItem, error)
	CreateCategory(ctx context.Context, input *CategoryInput) (*entity.CategoryItem, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, input *CategoryInput) (*entity.CategoryItem, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	ListSlides(ctx context.Context) ([]*entity.Slide, error)
	CreateSlide(ctx context.Context, input *SlideInput) (*entity.Slide, error)
	UpdateSlide(ctx context.Context, id uuid.UUID, input *SlideInput) (*entity.Slide, error)
	DeleteSlide(ctx context.Context, id uuid.UUID) error

	// SeedDefaults fills an empty catalog with the built-in data and reports whether it did.
	SeedDefaults(ctx context.Context) (bool, error)
}
