package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "github.com/umithief/motovibe6/internal/delivery/context"
	"github.com/umithief/motovibe6/internal/domain/entity"
	domainerrors "github.com/umithief/motovibe6/internal/domain/errors"
	"github.com/umithief/motovibe6/internal/domain/repository"
	"github.com/umithief/motovibe6/internal/domain/seed"
	"github.com/umithief/motovibe6/internal/domain/service"
	"github.com/umithief/motovibe6/internal/usecase"
)

type forumService struct {
	topicRepo repository.ForumTopicRepository
	clock     service.Clock
	logger    *slog.Logger
}

// ForumServiceParams holds dependencies for ForumService, injected by Fx.
type ForumServiceParams struct {
	fx.In

	TopicRepo repository.ForumTopicRepository
	Clock     service.Clock
	Logger    *slog.Logger
}

// NewForumService creates the forum use case.
func NewForumService(params ForumServiceParams) usecase.ForumUsecase {
	return &forumService{
		topicRepo: params.TopicRepo,
		clock:     params.Clock,
		logger:    params.Logger,
	}
}

func (srv *forumService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *forumService) ListTopics(ctx context.Context) ([]*entity.ForumTopic, error) {
	topics, err := srv.topicRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list topics")
	}

	return topics, nil
}

func (srv *forumService) CreateTopic(ctx context.Context, input *usecase.CreateTopicInput) (*entity.ForumTopic, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Content) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title and content are required")
	}

	category := input.Category
	if category == "" {
		category = entity.ForumGeneral
	}
	if !category.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown forum category")
	}

	tags := make([]string, 0, len(input.Tags))
	for _, tag := range input.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	topic := &entity.ForumTopic{
		ID:         uuid.Must(uuid.NewV7()),
		AuthorID:   input.AuthorID,
		AuthorName: input.AuthorName,
		Title:      strings.TrimSpace(input.Title),
		Content:    input.Content,
		Category:   category,
		Date:       srv.clock.Now(),
		Comments:   []entity.ForumComment{},
		Tags:       tags,
	}
	if err := srv.topicRepo.Create(ctx, topic); err != nil {
		return nil, errors.Wrap(err, "failed to create topic")
	}

	srv.log(ctx).Info("Forum topic created", slog.String("topicID", topic.ID.String()))

	return topic, nil
}

func (srv *forumService) AddComment(ctx context.Context, input *usecase.AddCommentInput) (*entity.ForumComment, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("content is required")
	}

	comment := &entity.ForumComment{
		ID:         uuid.Must(uuid.NewV7()),
		AuthorID:   input.AuthorID,
		AuthorName: input.AuthorName,
		Content:    input.Content,
		Date:       srv.clock.Now(),
	}

	err := srv.topicRepo.AppendComment(ctx, input.TopicID, comment)
	if errors.Is(err, repository.ErrTopicNotFound) {
		return nil, domainerrors.ErrTopicNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to append comment")
	}

	return comment, nil
}

func (srv *forumService) LikeTopic(ctx context.Context, id uuid.UUID) error {
	err := srv.topicRepo.IncrementLikes(ctx, id)
	if errors.Is(err, repository.ErrTopicNotFound) {
		return domainerrors.ErrTopicNotFound
	}

	return errors.Wrap(err, "failed to like topic")
}

func (srv *forumService) ViewTopic(ctx context.Context, id uuid.UUID) error {
	err := srv.topicRepo.IncrementViews(ctx, id)
	if errors.Is(err, repository.ErrTopicNotFound) {
		return domainerrors.ErrTopicNotFound
	}

	return errors.Wrap(err, "failed to count topic view")
}

func (srv *forumService) SeedDefaults(ctx context.Context) (bool, error) {
	count, err := srv.topicRepo.Count(ctx)
	if err != nil {
		return false, errors.Wrap(err, "failed to count topics")
	}
	if count > 0 {
		return false, nil
	}

	for _, topic := range seed.Topics(srv.clock.Now()) {
		if err := srv.topicRepo.Create(ctx, topic); err != nil {
			return false, errors.Wrap(err, "failed to seed topic")
		}
	}

	return true, nil
}
