package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/umithief/motovibe6/internal/domain/repository"
	"github.com/umithief/motovibe6/internal/errors"
)

// store is embedded by every repository. A non-nil session binds each call to it.
type store struct {
	db   *mongo.Database
	sess mongo.Session
}

func (s store) col(name string) *mongo.Collection {
	return s.db.Collection(name)
}

func (s store) ctx(ctx context.Context) context.Context {
	if s.sess == nil {
		return ctx
	}

	return mongo.NewSessionContext(ctx, s.sess)
}

type mongoTransactionManager struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewTransactionManager runs units of work inside multi-document transactions.
// The server must be a replica set or sharded cluster.
func NewTransactionManager(client *mongo.Client, db *mongo.Database) repository.TransactionManager {
	return &mongoTransactionManager{client: client, db: db}
}

func (tm *mongoTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	sess, err := tm.client.StartSession()
	if err != nil {
		return errors.Wrap(err, "failed to start MongoDB session")
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, fn(&mongoRepositoryFactory{store: store{db: tm.db, sess: sc}})
	})

	return err
}

type mongoRepositoryFactory struct {
	store store
}

func (f *mongoRepositoryFactory) NewUserRepository() repository.UserRepository {
	return &userRepository{store: f.store}
}

func (f *mongoRepositoryFactory) NewProductRepository() repository.ProductRepository {
	return &productRepository{store: f.store}
}

func (f *mongoRepositoryFactory) NewOrderRepository() repository.OrderRepository {
	return &orderRepository{store: f.store}
}

func (f *mongoRepositoryFactory) NewActivityLogRepository() repository.ActivityLogRepository {
	return &activityLogRepository{store: f.store}
}
