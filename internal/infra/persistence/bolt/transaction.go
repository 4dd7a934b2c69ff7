package bolt

import (
	"context"

	"go.etcd.io/bbolt"

	"github.com/umithief/motovibe6/internal/domain/repository"
)

type boltTransactionManager struct {
	db *bbolt.DB
}

// NewTransactionManager runs units of work inside one bbolt write transaction.
func NewTransactionManager(db *bbolt.DB) repository.TransactionManager {
	return &boltTransactionManager{db: db}
}

// Execute commits when fn returns nil and rolls back otherwise. The context is
// not consulted; bbolt transactions cannot be interrupted.
func (tm *boltTransactionManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return tm.db.Update(func(tx *bbolt.Tx) error {
		return fn(&boltRepositoryFactory{store: store{db: tm.db, tx: tx}})
	})
}

type boltRepositoryFactory struct {
	store store
}

func (f *boltRepositoryFactory) NewUserRepository() repository.UserRepository {
	return &userRepository{store: f.store}
}

func (f *boltRepositoryFactory) NewProductRepository() repository.ProductRepository {
	return &productRepository{store: f.store}
}

func (f *boltRepositoryFactory) NewOrderRepository() repository.OrderRepository {
	return &orderRepository{store: f.store}
}

func (f *boltRepositoryFactory) NewActivityLogRepository() repository.ActivityLogRepository {
	return &activityLogRepository{store: f.store}
}
