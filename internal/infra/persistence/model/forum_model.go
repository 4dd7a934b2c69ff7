package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/umithief/motovibe6/internal/domain/entity"
)

// ForumTopicModel mirrors the 'forum_topics' table.
type ForumTopicModel struct {
	ID         uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	AuthorID   uuid.UUID                   `gorm:"type:uuid;index"`
	AuthorName string                      `gorm:"type:varchar(100)"`
	Title      string                      `gorm:"type:varchar(200);not null"`
	Content    string                      `gorm:"type:text;not null"`
	Category   string                      `gorm:"type:varchar(16);not null"`
	Date       time.Time                   `gorm:"index;not null"`
	Likes      int                         `gorm:"not null;default:0"`
	Views      int                         `gorm:"not null;default:0"`
	Tags       datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Comments   []ForumCommentModel         `gorm:"foreignKey:TopicID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ForumTopicModel) TableName() string {
	return "forum_topics"
}

// ForumCommentModel mirrors the 'forum_comments' table. TopicID references forum_topics.id.
type ForumCommentModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	TopicID    uuid.UUID `gorm:"type:uuid;index;not null"`
	AuthorID   uuid.UUID `gorm:"type:uuid"`
	AuthorName string    `gorm:"type:varchar(100)"`
	Content    string    `gorm:"type:text;not null"`
	Date       time.Time `gorm:"not null"`
	Likes      int       `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (ForumCommentModel) TableName() string {
	return "forum_comments"
}

func ToForumCommentDomain(m *ForumCommentModel) entity.ForumComment {
	return entity.ForumComment{
		ID:         m.ID,
		AuthorID:   m.AuthorID,
		AuthorName: m.AuthorName,
		Content:    m.Content,
		Date:       m.Date,
		Likes:      m.Likes,
	}
}

func FromForumCommentDomain(topicID uuid.UUID, c *entity.ForumComment) *ForumCommentModel {
	return &ForumCommentModel{
		ID:         c.ID,
		TopicID:    topicID,
		AuthorID:   c.AuthorID,
		AuthorName: c.AuthorName,
		Content:    c.Content,
		Date:       c.Date,
		Likes:      c.Likes,
	}
}

func ToForumTopicDomain(m *ForumTopicModel) *entity.ForumTopic {
	comments := make([]entity.ForumComment, len(m.Comments))
	for i := range m.Comments {
		comments[i] = ToForumCommentDomain(&m.Comments[i])
	}

	return &entity.ForumTopic{
		ID:         m.ID,
		AuthorID:   m.AuthorID,
		AuthorName: m.AuthorName,
		Title:      m.Title,
		Content:    m.Content,
		Category:   entity.ForumCategory(m.Category),
		Date:       m.Date,
		Likes:      m.Likes,
		Views:      m.Views,
		Comments:   comments,
		Tags:       nonNil(m.Tags),
	}
}

// FromForumTopicDomain maps the topic row. Comments are stored separately.
func FromForumTopicDomain(t *entity.ForumTopic) *ForumTopicModel {
	return &ForumTopicModel{
		ID:         t.ID,
		AuthorID:   t.AuthorID,
		AuthorName: t.AuthorName,
		Title:      t.Title,
		Content:    t.Content,
		Category:   string(t.Category),
		Date:       t.Date,
		Likes:      t.Likes,
		Views:      t.Views,
		Tags:       datatypes.JSONSlice[string](nonNil(t.Tags)),
	}
}
