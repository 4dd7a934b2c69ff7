package bolt

import (
	"context"
	"slices"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/umithief/motovibe6/internal/domain/entity"
	"github.com/umithief/motovibe6/internal/domain/repository"
)

type orderRepository struct {
	store store
}

// NewOrderRepository returns the orders bucket with its unique code index.
func NewOrderRepository(db *bbolt.DB) repository.OrderRepository {
	return &orderRepository{store: store{db: db}}
}

func (r *orderRepository) Create(_ context.Context, order *entity.Order) error {
	return r.store.update(func(tx *bbolt.Tx) error {
		codes := tx.Bucket(bucketOrderCodes)
		if codes.Get([]byte(order.Code)) != nil {
			return repository.ErrOrderCodeTaken
		}

		if err := putJSON(tx.Bucket(bucketOrders), idKey(order.ID), order); err != nil {
			return err
		}

		return codes.Put([]byte(order.Code), idKey(order.ID))
	})
}

func (r *orderRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	var o entity.Order
	err := r.store.view(func(tx *bbolt.Tx) error {
		found, err := getJSON(tx.Bucket(bucketOrders), idKey(id), &o)
		if err == nil && !found {
			return repository.ErrOrderNotFound
		}

		return err
	})
	if err != nil {
		return nil, err
	}

	return &o, nil
}

func (r *orderRepository) List(_ context.Context, filter entity.OrderFilter) ([]*entity.Order, error) {
	var orders []*entity.Order
	err := r.store.view(func(tx *bbolt.Tx) error {
		var err error
		orders, err = listJSON[entity.Order](tx.Bucket(bucketOrders))

		return err
	})
	if err != nil {
		return nil, err
	}

	if filter.UserID != nil {
		orders = slices.DeleteFunc(orders, func(o *entity.Order) bool {
			return o.UserID != *filter.UserID
		})
	}

	slices.SortStableFunc(orders, func(a, b *entity.Order) int {
		return b.Date.Compare(a.Date)
	})

	return orders, nil
}

func (r *orderRepository) UpdateStatus(_ context.Context, id uuid.UUID, status entity.OrderStatus) error {
	return r.store.update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketOrders)

		var o entity.Order
		found, err := getJSON(b, idKey(id), &o)
		if err != nil {
			return err
		}
		if !found {
			return repository.ErrOrderNotFound
		}

		o.Status = status

		return putJSON(b, idKey(id), &o)
	})
}
