package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/umithief/motovibe6/internal/domain/entity"
)

// ErrTopicNotFound is returned when a forum topic is not found.
var ErrTopicNotFound = errors.New("forum topic not found")

// ForumTopicRepository persists the board. Counters are plain increments.
type ForumTopicRepository interface {
	// List returns topics newest first with their comments.
	List(ctx context.Context) ([]*entity.ForumTopic, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ForumTopic, error)
	Create(ctx context.Context, topic *entity.ForumTopic) error
	AppendComment(ctx context.Context, topicID uuid.UUID, comment *entity.ForumComment) error
	IncrementLikes(ctx context.Context, topicID uuid.UUID) error
	IncrementViews(ctx context.Context, topicID uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}
