package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/umithief/motovibe6/internal/domain/entity"
)

var (
	// ErrCategoryNotFound is returned when a category tile is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrSlideNotFound is returned when a slide is not found.
	ErrSlideNotFound = errors.New("slide not found")
)

// CategoryRepository persists homepage category tiles.
type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.CategoryItem, error)
	Create(ctx context.Context, category *entity.CategoryItem) error
	Update(ctx context.Context, category *entity.CategoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SlideRepository persists homepage slides.
type SlideRepository interface {
	List(ctx context.Context) ([]*entity.Slide, error)
	Create(ctx context.Context, slide *entity.Slide) error
	Update(ctx context.Context, slide *entity.Slide) error
	Delete(ctx context.Context, id uuid.UUID) error
}
