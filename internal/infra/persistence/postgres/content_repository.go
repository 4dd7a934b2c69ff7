package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/umithief/motovibe6/internal/domain/entity"
	domainerrors "github.com/umithief/motovibe6/internal/domain/errors"
	"github.com/umithief/motovibe6/internal/domain/repository"
	"github.com/umithief/motovibe6/internal/infra/persistence/model"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository returns a GORM backed store of homepage tiles.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) List(ctx context.Context) ([]*entity.CategoryItem, error) {
	var rows []model.CategoryModel
	if err := repo.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	items := make([]*entity.CategoryItem, len(rows))
	for i := range rows {
		items[i] = model.ToCategoryDomain(&rows[i])
	}

	return items, nil
}

func (repo *categoryRepository) Create(ctx context.Context, category *entity.CategoryItem) error {
	if err := repo.db.WithContext(ctx).Create(model.FromCategoryDomain(category)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	return nil
}

func (repo *categoryRepository) Update(ctx context.Context, category *entity.CategoryItem) error {
	result := repo.db.WithContext(ctx).Model(&model.CategoryModel{}).Where("id = ?", category.ID).
		Select("name", "type", "image", "description", "count", "class_name").
		Updates(model.FromCategoryDomain(category))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

func (repo *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CategoryModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

type slideRepository struct {
	db *gorm.DB
}

// NewSlideRepository returns a GORM backed store of homepage slides.
func NewSlideRepository(db *gorm.DB) repository.SlideRepository {
	return &slideRepository{db: db}
}

func (repo *slideRepository) List(ctx context.Context) ([]*entity.Slide, error) {
	var rows []model.SlideModel
	if err := repo.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list slides")
	}

	slides := make([]*entity.Slide, len(rows))
	for i := range rows {
		slides[i] = model.ToSlideDomain(&rows[i])
	}

	return slides, nil
}

func (repo *slideRepository) Create(ctx context.Context, slide *entity.Slide) error {
	if err := repo.db.WithContext(ctx).Create(model.FromSlideDomain(slide)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create slide")
	}

	return nil
}

func (repo *slideRepository) Update(ctx context.Context, slide *entity.Slide) error {
	result := repo.db.WithContext(ctx).Model(&model.SlideModel{}).Where("id = ?", slide.ID).
		Select("image", "title", "subtitle", "cta", "action").
		Updates(model.FromSlideDomain(slide))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update slide")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSlideNotFound
	}

	return nil
}

func (repo *slideRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SlideModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete slide")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSlideNotFound
	}

	return nil
}
