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

type forumTopicRepository struct {
	store store
}

// NewForumTopicRepository returns the forum collection. Comments are embedded arrays.
func NewForumTopicRepository(db *mongo.Database) repository.ForumTopicRepository {
	return &forumTopicRepository{store: store{db: db}}
}

func (r *forumTopicRepository) List(ctx context.Context) ([]*entity.ForumTopic, error) {
	cur, err := r.store.col(colTopics).Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list forum topics")
	}

	var docs []topicDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode forum topics")
	}

	topics := make([]*entity.ForumTopic, len(docs))
	for i := range docs {
		topics[i] = docs[i].toDomain()
	}

	return topics, nil
}

func (r *forumTopicRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ForumTopic, error) {
	var doc topicDoc
	if err := r.store.col(colTopics).FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrTopicNotFound
		}

		return nil, errors.Wrap(err, "failed to find forum topic")
	}

	return doc.toDomain(), nil
}

func (r *forumTopicRepository) Create(ctx context.Context, topic *entity.ForumTopic) error {
	if _, err := r.store.col(colTopics).InsertOne(ctx, toTopicDoc(topic)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create forum topic")
	}

	return nil
}

func (r *forumTopicRepository) AppendComment(ctx context.Context, topicID uuid.UUID, comment *entity.ForumComment) error {
	return r.update(ctx, topicID, bson.M{"$push": bson.M{"comments": toCommentDoc(comment)}})
}

func (r *forumTopicRepository) IncrementLikes(ctx context.Context, topicID uuid.UUID) error {
	return r.update(ctx, topicID, bson.M{"$inc": bson.M{"likes": 1}})
}

func (r *forumTopicRepository) IncrementViews(ctx context.Context, topicID uuid.UUID) error {
	return r.update(ctx, topicID, bson.M{"$inc": bson.M{"views": 1}})
}

func (r *forumTopicRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.store.col(colTopics).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count forum topics")
	}

	return n, nil
}

func (r *forumTopicRepository) update(ctx context.Context, topicID uuid.UUID, update bson.M) error {
	res, err := r.store.col(colTopics).UpdateOne(ctx, bson.M{"_id": topicID.String()}, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update forum topic")
	}
	if res.MatchedCount == 0 {
		return repository.ErrTopicNotFound
	}

	return nil
}
