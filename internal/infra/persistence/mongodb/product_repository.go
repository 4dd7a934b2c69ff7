package mongodb

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/umithief/motovibe6/internal/domain/entity"
	domainerrors "github.com/umithief/motovibe6/internal/domain/errors"
	"github.com/umithief/motovibe6/internal/domain/repository"
	"github.com/umithief/motovibe6/internal/errors"
)

type productRepository struct {
	store store
}

// NewProductRepository returns the products collection.
func NewProductRepository(db *mongo.Database) repository.ProductRepository {
	return &productRepository{store: store{db: db}}
}

func (r *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	ctx = r.store.ctx(ctx)
	cur, err := r.store.col(colProducts).Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	var docs []productDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode products")
	}

	products := make([]*entity.Product, len(docs))
	for i := range docs {
		products[i] = docs[i].toDomain()
	}

	return products, nil
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var doc productDoc
	if err := r.store.col(colProducts).FindOne(r.store.ctx(ctx), bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return doc.toDomain(), nil
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if _, err := r.store.col(colProducts).InsertOne(r.store.ctx(ctx), toProductDoc(product)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	return nil
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	doc := toProductDoc(product)
	res, err := r.store.col(colProducts).ReplaceOne(r.store.ctx(ctx), bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}
	if res.MatchedCount == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.store.col(colProducts).DeleteOne(r.store.ctx(ctx), bson.M{"_id": id.String()})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product")
	}
	if res.DeletedCount == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// AdjustStock guards the $inc with a stock filter so the document never goes negative.
func (r *productRepository) AdjustStock(ctx context.Context, id uuid.UUID, delta int) error {
	ctx = r.store.ctx(ctx)
	filter := bson.M{"_id": id.String(), "stock": bson.M{"$gte": -delta}}

	res, err := r.store.col(colProducts).UpdateOne(ctx, filter, bson.M{"$inc": bson.M{"stock": delta}})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to adjust stock")
	}
	if res.MatchedCount > 0 {
		return nil
	}

	n, err := r.store.col(colProducts).CountDocuments(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return errors.Wrap(err, "failed to check product")
	}
	if n == 0 {
		return repository.ErrProductNotFound
	}

	return repository.ErrInsufficientStock
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.store.col(colProducts).CountDocuments(r.store.ctx(ctx), bson.M{})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return n, nil
}
