package mongodb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/umithief/motovibe6/internal/domain/entity"
	domainerrors "github.com/umithief/motovibe6/internal/domain/errors"
	"github.com/umithief/motovibe6/internal/domain/repository"
	"github.com/umithief/motovibe6/internal/errors"
)

type orderRepository struct {
	store store
}

// NewOrderRepository returns the orders collection.
func NewOrderRepository(db *mongo.Database) repository.OrderRepository {
	return &orderRepository{store: store{db: db}}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if _, err := r.store.col(colOrders).InsertOne(r.store.ctx(ctx), toOrderDoc(order)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrOrderCodeTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var doc orderDoc
	if err := r.store.col(colOrders).FindOne(r.store.ctx(ctx), bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return doc.toDomain(), nil
}

func (r *orderRepository) List(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, error) {
	ctx = r.store.ctx(ctx)
	query := bson.M{}
	if filter.UserID != nil {
		query["userId"] = filter.UserID.String()
	}

	cur, err := r.store.col(colOrders).Find(ctx, query, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	var docs []orderDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode orders")
	}

	orders := make([]*entity.Order, len(docs))
	for i := range docs {
		orders[i] = docs[i].toDomain()
	}

	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	update := bson.M{"$set": bson.M{"status": string(status), "updatedAt": time.Now().UTC()}}
	res, err := r.store.col(colOrders).UpdateOne(r.store.ctx(ctx), bson.M{"_id": id.String()}, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update order status")
	}
	if res.MatchedCount == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}
