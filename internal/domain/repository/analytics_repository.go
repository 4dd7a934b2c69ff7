package repository

import (
	"context"
	"time"

	"github.com/umithief/motovibe6/internal/domain/entity"
)

// AnalyticsEventRepository is an append-only event log.
type AnalyticsEventRepository interface {
	Append(ctx context.Context, event *entity.AnalyticsEvent) error
	// ListSince returns the events at or after since, oldest first.
	ListSince(ctx context.Context, since time.Time) ([]*entity.AnalyticsEvent, error)
}

// VisitRepository keeps one counter per calendar day key (YYYY-MM-DD).
type VisitRepository interface {
	Increment(ctx context.Context, day string) error
	Stats(ctx context.Context, today string) (*entity.VisitorStats, error)
}

// ActivityLogRepository stores admin audit lines.
type ActivityLogRepository interface {
	Append(ctx context.Context, log *entity.ActivityLog) error
	// ListRecent returns at most limit entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]*entity.ActivityLog, error)
	// DeleteBefore removes entries older than cutoff and reports how many went.
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
