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

var byCreation = options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

type categoryRepository struct {
	store store
}

// NewCategoryRepository returns the categories collection.
func NewCategoryRepository(db *mongo.Database) repository.CategoryRepository {
	return &categoryRepository{store: store{db: db}}
}

func (r *categoryRepository) List(ctx context.Context) ([]*entity.CategoryItem, error) {
	cur, err := r.store.col(colCategories).Find(ctx, bson.M{}, byCreation)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	var docs []categoryDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode categories")
	}

	items := make([]*entity.CategoryItem, len(docs))
	for i := range docs {
		items[i] = docs[i].toDomain()
	}

	return items, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.CategoryItem) error {
	if _, err := r.store.col(colCategories).InsertOne(ctx, toCategoryDoc(category)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	return nil
}

func (r *categoryRepository) Update(ctx context.Context, category *entity.CategoryItem) error {
	doc := toCategoryDoc(category)
	update := bson.M{"$set": bson.M{
		"name":      doc.Name,
		"type":      doc.Type,
		"image":     doc.Image,
		"desc":      doc.Desc,
		"count":     doc.Count,
		"className": doc.ClassName,
	}}

	res, err := r.store.col(colCategories).UpdateOne(ctx, bson.M{"_id": doc.ID}, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update category")
	}
	if res.MatchedCount == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.store.col(colCategories).DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete category")
	}
	if res.DeletedCount == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

type slideRepository struct {
	store store
}

// NewSlideRepository returns the slides collection.
func NewSlideRepository(db *mongo.Database) repository.SlideRepository {
	return &slideRepository{store: store{db: db}}
}

func (r *slideRepository) List(ctx context.Context) ([]*entity.Slide, error) {
	cur, err := r.store.col(colSlides).Find(ctx, bson.M{}, byCreation)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list slides")
	}

	var docs []slideDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode slides")
	}

	slides := make([]*entity.Slide, len(docs))
	for i := range docs {
		slides[i] = docs[i].toDomain()
	}

	return slides, nil
}

func (r *slideRepository) Create(ctx context.Context, slide *entity.Slide) error {
	if _, err := r.store.col(colSlides).InsertOne(ctx, toSlideDoc(slide)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create slide")
	}

	return nil
}

func (r *slideRepository) Update(ctx context.Context, slide *entity.Slide) error {
	doc := toSlideDoc(slide)
	update := bson.M{"$set": bson.M{
		"image":    doc.Image,
		"title":    doc.Title,
		"subtitle": doc.Subtitle,
		"cta":      doc.CTA,
		"action":   doc.Action,
	}}

	res, err := r.store.col(colSlides).UpdateOne(ctx, bson.M{"_id": doc.ID}, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update slide")
	}
	if res.MatchedCount == 0 {
		return repository.ErrSlideNotFound
	}

	return nil
}

func (r *slideRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.store.col(colSlides).DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete slide")
	}
	if res.DeletedCount == 0 {
		return repository.ErrSlideNotFound
	}

	return nil
}
