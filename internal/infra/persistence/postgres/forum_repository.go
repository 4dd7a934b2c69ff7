package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/umithief/motovibe6/internal/domain/entity"
	domainerrors "github.com/umithief/motovibe6/internal/domain/errors"
	"github.com/umithief/motovibe6/internal/domain/repository"
	"github.com/umithief/motovibe6/internal/infra/persistence/model"
)

type forumTopicRepository struct {
	db *gorm.DB
}

// NewForumTopicRepository returns a GORM backed board store. Comments live in their own table.
func NewForumTopicRepository(db *gorm.DB) repository.ForumTopicRepository {
	return &forumTopicRepository{db: db}
}

func preloadComments(db *gorm.DB) *gorm.DB {
	return db.Order("date ASC")
}

func (repo *forumTopicRepository) List(ctx context.Context) ([]*entity.ForumTopic, error) {
	var rows []model.ForumTopicModel
	if err := repo.db.WithContext(ctx).Preload("Comments", preloadComments).Order("date DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list forum topics")
	}

	topics := make([]*entity.ForumTopic, len(rows))
	for i := range rows {
		topics[i] = model.ToForumTopicDomain(&rows[i])
	}

	return topics, nil
}

func (repo *forumTopicRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ForumTopic, error) {
	var row model.ForumTopicModel
	if err := repo.db.WithContext(ctx).Preload("Comments", preloadComments).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTopicNotFound
		}

		return nil, errors.Wrap(err, "failed to find forum topic")
	}

	return model.ToForumTopicDomain(&row), nil
}

func (repo *forumTopicRepository) Create(ctx context.Context, topic *entity.ForumTopic) error {
	row := model.FromForumTopicDomain(topic)

	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Comments").Create(row).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to create forum topic")
		}

		for i := range topic.Comments {
			if err := tx.Create(model.FromForumCommentDomain(topic.ID, &topic.Comments[i])).Error; err != nil {
				return domainerrors.NewDatabaseExecuteError(err, "failed to create forum comment")
			}
		}

		return nil
	})
}

func (repo *forumTopicRepository) AppendComment(ctx context.Context, topicID uuid.UUID, comment *entity.ForumComment) error {
	if err := repo.exists(ctx, topicID); err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(model.FromForumCommentDomain(topicID, comment)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append forum comment")
	}

	return nil
}

func (repo *forumTopicRepository) IncrementLikes(ctx context.Context, topicID uuid.UUID) error {
	return repo.increment(ctx, topicID, "likes")
}

func (repo *forumTopicRepository) IncrementViews(ctx context.Context, topicID uuid.UUID) error {
	return repo.increment(ctx, topicID, "views")
}

func (repo *forumTopicRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ForumTopicModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count forum topics")
	}

	return count, nil
}

func (repo *forumTopicRepository) increment(ctx context.Context, topicID uuid.UUID, column string) error {
	result := repo.db.WithContext(ctx).Model(&model.ForumTopicModel{}).Where("id = ?", topicID).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment "+column)
	}
	if result.RowsAffected == 0 {
		return repository.ErrTopicNotFound
	}

	return nil
}

func (repo *forumTopicRepository) exists(ctx context.Context, topicID uuid.UUID) error {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ForumTopicModel{}).Where("id = ?", topicID).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check forum topic")
	}
	if count == 0 {
		return repository.ErrTopicNotFound
	}

	return nil
}
