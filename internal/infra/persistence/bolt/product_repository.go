package bolt

import (
	"context"
	"slices"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/umithief/motovibe6/internal/domain/entity"
	"github.com/umithief/motovibe6/internal/domain/repository"
)

type productRepository struct {
	store store
}

// NewProductRepository returns the products bucket.
func NewProductRepository(db *bbolt.DB) repository.ProductRepository {
	return &productRepository{store: store{db: db}}
}

func (r *productRepository) List(_ context.Context) ([]*entity.Product, error) {
	var products []*entity.Product
	err := r.store.view(func(tx *bbolt.Tx) error {
		var err error
		products, err = listJSON[entity.Product](tx.Bucket(bucketProducts))

		return err
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(products, func(a, b *entity.Product) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return products, nil
}

func (r *productRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	var p entity.Product
	err := r.store.view(func(tx *bbolt.Tx) error {
		found, err := getJSON(tx.Bucket(bucketProducts), idKey(id), &p)
		if err == nil && !found {
			return repository.ErrProductNotFound
		}

		return err
	})
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *productRepository) Create(_ context.Context, product *entity.Product) error {
	return r.store.update(func(tx *bbolt.Tx) error {
		return putJSON(tx.Bucket(bucketProducts), idKey(product.ID), product)
	})
}

func (r *productRepository) Update(_ context.Context, product *entity.Product) error {
	return r.store.update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketProducts)
		if b.Get(idKey(product.ID)) == nil {
			return repository.ErrProductNotFound
		}

		return putJSON(b, idKey(product.ID), product)
	})
}

func (r *productRepository) Delete(_ context.Context, id uuid.UUID) error {
	return r.store.update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketProducts)
		if b.Get(idKey(id)) == nil {
			return repository.ErrProductNotFound
		}

		return b.Delete(idKey(id))
	})
}

// AdjustStock is a read-modify-write inside one write transaction; bbolt
// serialises writers so no decrement can interleave.
func (r *productRepository) AdjustStock(_ context.Context, id uuid.UUID, delta int) error {
	return r.store.update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketProducts)

		var p entity.Product
		found, err := getJSON(b, idKey(id), &p)
		if err != nil {
			return err
		}
		if !found {
			return repository.ErrProductNotFound
		}
		if p.Stock+delta < 0 {
			return repository.ErrInsufficientStock
		}

		p.Stock += delta

		return putJSON(b, idKey(id), &p)
	})
}

func (r *productRepository) Count(_ context.Context) (int64, error) {
	var n int64
	err := r.store.view(func(tx *bbolt.Tx) error {
		n = int64(tx.Bucket(bucketProducts).Stats().KeyN)

		return nil
	})

	return n, err
}
