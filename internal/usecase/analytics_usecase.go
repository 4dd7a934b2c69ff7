package usecase

import (
	"context"

	"github.com/umithief/motovibe6/internal/domain/entity"
)

// AnalyticsUsecase records storefront activity and summarises it.
type AnalyticsUsecase interface {
	TrackEvent(ctx context.Context, event *entity.AnalyticsEvent) error
	Dashboard(ctx context.Context, r entity.TimeRange) (*entity.Dashboard, error)
	RecordVisit(ctx context.Context) error
	VisitorStats(ctx context.Context) (*entity.VisitorStats, error)
}

// ActivityLogUsecase exposes the admin audit log.
type ActivityLogUsecase interface {
	ListRecent(ctx context.Context, limit int) ([]*entity.ActivityLog, error)
	// Purge removes entries past the retention window.
	Purge(ctx context.Context) (int64, error)
}
