package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/umithief/motovibe6/internal/domain/entity"
)

// CreateTopicInput is a new board thread.
type CreateTopicInput struct {
	AuthorID   uuid.UUID
	AuthorName string
	Title      string
	Content    string
	Category   entity.ForumCategory
	Tags       []string
}

// AddCommentInput is a reply to a thread.
type AddCommentInput struct {
	TopicID    uuid.UUID
	AuthorID   uuid.UUID
	AuthorName string
	Content    string
}

// ForumUsecase manages the community board.
type ForumUsecase interface {
	ListTopics(ctx context.Context) ([]*entity.ForumTopic, error)
	CreateTopic(ctx context.Context, input *CreateTopicInput) (*entity.ForumTopic, error)
	AddComment(ctx context.Context, input *AddCommentInput) (*entity.ForumComment, error)
	// LikeTopic adds one like. Repeated likes from the same user all count.
	LikeTopic(ctx context.Context, id uuid.UUID) error
	ViewTopic(ctx context.Context, id uuid.UUID) error
	SeedDefaults(ctx context.Context) (bool, error)
}
