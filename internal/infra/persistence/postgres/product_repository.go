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

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository returns a GORM backed catalog store.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	var rows []model.ProductModel
	if err := repo.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, len(rows))
	for i := range rows {
		products[i] = model.ToProductDomain(&rows[i])
	}

	return products, nil
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var row model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return model.ToProductDomain(&row), nil
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if err := repo.db.WithContext(ctx).Create(model.FromProductDomain(product)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	return nil
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	row := model.FromProductDomain(product)
	result := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Where("id = ?", product.ID).
		Select("name", "description", "price", "category", "image", "images", "rating", "features", "stock", "updated_at").
		Updates(row)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// AdjustStock applies delta in a single conditional UPDATE so concurrent
// checkouts cannot drive the count negative.
func (repo *productRepository) AdjustStock(ctx context.Context, id uuid.UUID, delta int) error {
	result := repo.db.WithContext(ctx).Model(&model.ProductModel{}).
		Where("id = ? AND stock + ? >= 0", id, delta).
		Update("stock", gorm.Expr("stock + ?", delta))
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return repository.ErrInsufficientStock
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to adjust stock")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check product")
	}
	if count == 0 {
		return repository.ErrProductNotFound
	}

	return repository.ErrInsufficientStock
}

func (repo *productRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return count, nil
}
