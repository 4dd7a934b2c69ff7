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

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository returns a GORM backed order store.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order. The only unique index besides the key is the display code.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if err := repo.db.WithContext(ctx).Create(model.FromOrderDomain(order)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrOrderCodeTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var row model.OrderModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return model.ToOrderDomain(&row), nil
}

func (repo *orderRepository) List(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, error) {
	query := repo.db.WithContext(ctx).Order("date DESC")
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	var rows []model.OrderModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, len(rows))
	for i := range rows {
		orders[i] = model.ToOrderDomain(&rows[i])
	}

	return orders, nil
}

// UpdateStatus touches only the status column. Items and total stay frozen.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).Model(&model.OrderModel{}).Where("id = ?", id).Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}
