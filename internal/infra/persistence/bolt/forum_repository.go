package bolt

import (
	"context"
	"slices"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/umithief/motovibe6/internal/domain/entity"
	"github.com/umithief/motovibe6/internal/domain/repository"
)

type forumTopicRepository struct {
	store store
}

// NewForumTopicRepository returns the board bucket. Topics are stored with their comments.
func NewForumTopicRepository(db *bbolt.DB) repository.ForumTopicRepository {
	return &forumTopicRepository{store: store{db: db}}
}

func (r *forumTopicRepository) List(_ context.Context) ([]*entity.ForumTopic, error) {
	var topics []*entity.ForumTopic
	err := r.store.view(func(tx *bbolt.Tx) error {
		var err error
		topics, err = listJSON[entity.ForumTopic](tx.Bucket(bucketTopics))

		return err
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(topics, func(a, b *entity.ForumTopic) int {
		return b.Date.Compare(a.Date)
	})

	return topics, nil
}

func (r *forumTopicRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.ForumTopic, error) {
	var t entity.ForumTopic
	err := r.store.view(func(tx *bbolt.Tx) error {
		found, err := getJSON(tx.Bucket(bucketTopics), idKey(id), &t)
		if err == nil && !found {
			return repository.ErrTopicNotFound
		}

		return err
	})
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func (r *forumTopicRepository) Create(_ context.Context, topic *entity.ForumTopic) error {
	return r.store.update(func(tx *bbolt.Tx) error {
		return putJSON(tx.Bucket(bucketTopics), idKey(topic.ID), topic)
	})
}

func (r *forumTopicRepository) AppendComment(_ context.Context, topicID uuid.UUID, comment *entity.ForumComment) error {
	return r.modify(topicID, func(t *entity.ForumTopic) {
		t.Comments = append(t.Comments, *comment)
	})
}

func (r *forumTopicRepository) IncrementLikes(_ context.Context, topicID uuid.UUID) error {
	return r.modify(topicID, func(t *entity.ForumTopic) { t.Likes++ })
}

func (r *forumTopicRepository) IncrementViews(_ context.Context, topicID uuid.UUID) error {
	return r.modify(topicID, func(t *entity.ForumTopic) { t.Views++ })
}

func (r *forumTopicRepository) Count(_ context.Context) (int64, error) {
	var n int64
	err := r.store.view(func(tx *bbolt.Tx) error {
		n = int64(tx.Bucket(bucketTopics).Stats().KeyN)

		return nil
	})

	return n, err
}

func (r *forumTopicRepository) modify(id uuid.UUID, fn func(t *entity.ForumTopic)) error {
	return r.store.update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketTopics)

		var t entity.ForumTopic
		found, err := getJSON(b, idKey(id), &t)
		if err != nil {
			return err
		}
		if !found {
			return repository.ErrTopicNotFound
		}

		fn(&t)

		return putJSON(b, idKey(id), &t)
	})
}
