// Package postgres implements the persistence ports on PostgreSQL via GORM.
package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/umithief/motovibe6/internal/domain/repository"
)

type txManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &txManager{db: db}
}

// Execute commits when fn returns nil and rolls back otherwise; a panic in
// fn rolls back and is re-raised by gorm.
func (m *txManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	//nolint:wrapcheck // fn's error must reach the use case unchanged
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txRepositories{tx: tx})
	})
}

// txRepositories binds every repository to one open transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (f txRepositories) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f txRepositories) NewProductRepository() repository.ProductRepository {
	return NewProductRepository(f.tx)
}

func (f txRepositories) NewOrderRepository() repository.OrderRepository {
	return NewOrderRepository(f.tx)
}

func (f txRepositories) NewActivityLogRepository() repository.ActivityLogRepository {
	return NewActivityLogRepository(f.tx)
}
