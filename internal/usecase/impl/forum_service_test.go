package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/umithief/motovibe6/internal/domain/entity"
	domainerrors "github.com/umithief/motovibe6/internal/domain/errors"
	"github.com/umithief/motovibe6/internal/domain/repository"
	mockRepo "github.com/umithief/motovibe6/internal/mocks/repository"
	"github.com/umithief/motovibe6/internal/usecase"
)

func createTestForumService(t *testing.T) (usecase.ForumUsecase, *mockRepo.MockForumTopicRepository) {
	topicRepo := mockRepo.NewMockForumTopicRepository(t)

	return NewForumService(ForumServiceParams{
		TopicRepo: topicRepo,
		Clock:     newFixedClock(t),
		Logger:    newDiscardLogger(),
	}), topicRepo
}

func TestForumService_CreateTopic_DefaultsCategory(t *testing.T) {
	svc, topicRepo := createTestForumService(t)
	ctx := context.Background()
	author := uuid.New()

	topicRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.ForumTopic")).Return(nil).Once()

	topic, err := svc.CreateTopic(ctx, &usecase.CreateTopicInput{
		AuthorID:   author,
		AuthorName: "Mehmet",
		Title:      " Zincir yağlama ",
		Content:    "Hangi yağı kullanıyorsunuz?",
		Tags:       []string{"bakım", " ", "zincir"},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ForumGeneral, topic.Category)
	assert.Equal(t, "Zincir yağlama", topic.Title)
	assert.Equal(t, []string{"bakım", "zincir"}, topic.Tags)
	assert.Empty(t, topic.Comments)
	assert.Zero(t, topic.Likes)
}

func TestForumService_CreateTopic_Invalid(t *testing.T) {
	svc, _ := createTestForumService(t)

	_, err := svc.CreateTopic(context.Background(), &usecase.CreateTopicInput{Title: "Başlık"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.CreateTopic(context.Background(), &usecase.CreateTopicInput{
		Title:    "Başlık",
		Content:  "İçerik",
		Category: "Politika",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestForumService_AddComment_TopicMissing(t *testing.T) {
	svc, topicRepo := createTestForumService(t)
	ctx := context.Background()
	topicID := uuid.New()

	topicRepo.EXPECT().AppendComment(ctx, topicID, mock.Anything).Return(repository.ErrTopicNotFound).Once()

	_, err := svc.AddComment(ctx, &usecase.AddCommentInput{TopicID: topicID, Content: "Katılıyorum"})

	assert.ErrorIs(t, err, domainerrors.ErrTopicNotFound)
}

func TestForumService_AddComment(t *testing.T) {
	svc, topicRepo := createTestForumService(t)
	ctx := context.Background()
	topicID := uuid.New()

	topicRepo.EXPECT().
		AppendComment(ctx, topicID, mock.MatchedBy(func(c *entity.ForumComment) bool {
			return c.Content == "Katılıyorum" && c.Date.Equal(testNow)
		})).
		Return(nil).Once()

	comment, err := svc.AddComment(ctx, &usecase.AddCommentInput{TopicID: topicID, AuthorName: "Ali", Content: "Katılıyorum"})

	require.NoError(t, err)
	assert.Equal(t, "Ali", comment.AuthorName)
}

func TestForumService_LikeTopic_RepeatedLikesCount(t *testing.T) {
	svc, topicRepo := createTestForumService(t)
	ctx := context.Background()
	topicID := uuid.New()

	topicRepo.EXPECT().IncrementLikes(ctx, topicID).Return(nil).Twice()

	require.NoError(t, svc.LikeTopic(ctx, topicID))
	require.NoError(t, svc.LikeTopic(ctx, topicID))
}

func TestForumService_ViewTopic_NotFound(t *testing.T) {
	svc, topicRepo := createTestForumService(t)
	ctx := context.Background()
	topicID := uuid.New()

	topicRepo.EXPECT().IncrementViews(ctx, topicID).Return(repository.ErrTopicNotFound).Once()

	assert.ErrorIs(t, svc.ViewTopic(ctx, topicID), domainerrors.ErrTopicNotFound)
}

func TestForumService_SeedDefaults(t *testing.T) {
	svc, topicRepo := createTestForumService(t)
	ctx := context.Background()

	topicRepo.EXPECT().Count(ctx).Return(0, nil).Once()
	topicRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	seeded, err := svc.SeedDefaults(ctx)

	require.NoError(t, err)
	assert.True(t, seeded)
}
