package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/umithief/motovibe6/internal/domain/entity"
)

// AnalyticsEventModel mirrors the append-only 'analytics_events' table.
type AnalyticsEventModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Type        string     `gorm:"type:varchar(32);not null"`
	UserID      *uuid.UUID `gorm:"type:uuid"`
	UserName    string     `gorm:"type:varchar(100)"`
	ProductID   *uuid.UUID `gorm:"type:uuid"`
	ProductName string     `gorm:"type:varchar(200)"`
	Duration    int
	Timestamp   time.Time `gorm:"index;not null"`
}

// TableName explicitly sets the table name for GORM.
func (AnalyticsEventModel) TableName() string {
	return "analytics_events"
}

func ToAnalyticsEventDomain(m *AnalyticsEventModel) *entity.AnalyticsEvent {
	return &entity.AnalyticsEvent{
		ID:          m.ID,
		Type:        entity.EventType(m.Type),
		UserID:      m.UserID,
		UserName:    m.UserName,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Duration:    m.Duration,
		Timestamp:   m.Timestamp,
	}
}

func FromAnalyticsEventDomain(e *entity.AnalyticsEvent) *AnalyticsEventModel {
	return &AnalyticsEventModel{
		ID:          e.ID,
		Type:        string(e.Type),
		UserID:      e.UserID,
		UserName:    e.UserName,
		ProductID:   e.ProductID,
		ProductName: e.ProductName,
		Duration:    e.Duration,
		Timestamp:   e.Timestamp,
	}
}

// VisitModel mirrors the 'visits' table, one counter row per calendar day.
type VisitModel struct {
	Day   string `gorm:"type:char(10);primaryKey"`
	Count int64  `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (VisitModel) TableName() string {
	return "visits"
}

// ActivityLogModel mirrors the 'activity_logs' table.
type ActivityLogModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Type      string    `gorm:"type:varchar(16);not null"`
	Event     string    `gorm:"type:varchar(100);not null"`
	Details   string    `gorm:"type:text"`
	Timestamp time.Time `gorm:"index;not null"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityLogModel) TableName() string {
	return "activity_logs"
}

func ToActivityLogDomain(m *ActivityLogModel) *entity.ActivityLog {
	return &entity.ActivityLog{
		ID:        m.ID,
		Type:      entity.LogLevel(m.Type),
		Event:     m.Event,
		Details:   m.Details,
		Timestamp: m.Timestamp,
	}
}

func FromActivityLogDomain(l *entity.ActivityLog) *ActivityLogModel {
	return &ActivityLogModel{
		ID:        l.ID,
		Type:      string(l.Type),
		Event:     l.Event,
		Details:   l.Details,
		Timestamp: l.Timestamp,
	}
}

// All lists every model for schema migration and code generation.
func All() []any {
	return []any{
		&UserModel{},
		&ProductModel{},
		&CategoryModel{},
		&SlideModel{},
		&OrderModel{},
		&ForumTopicModel{},
		&ForumCommentModel{},
		&AnalyticsEventModel{},
		&VisitModel{},
		&ActivityLogModel{},
	}
}
