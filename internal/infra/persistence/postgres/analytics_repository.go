package postgres

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/umithief/motovibe6/internal/domain/entity"
	domainerrors "github.com/umithief/motovibe6/internal/domain/errors"
	"github.com/umithief/motovibe6/internal/domain/repository"
	"github.com/umithief/motovibe6/internal/infra/persistence/model"
)

type analyticsEventRepository struct {
	db *gorm.DB
}

// NewAnalyticsEventRepository returns the append-only event table.
func NewAnalyticsEventRepository(db *gorm.DB) repository.AnalyticsEventRepository {
	return &analyticsEventRepository{db: db}
}

func (repo *analyticsEventRepository) Append(ctx context.Context, event *entity.AnalyticsEvent) error {
	if err := repo.db.WithContext(ctx).Create(model.FromAnalyticsEventDomain(event)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append analytics event")
	}

	return nil
}

func (repo *analyticsEventRepository) ListSince(ctx context.Context, since time.Time) ([]*entity.AnalyticsEvent, error) {
	var rows []model.AnalyticsEventModel
	if err := repo.db.WithContext(ctx).Where("timestamp >= ?", since).Order("timestamp ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list analytics events")
	}

	events := make([]*entity.AnalyticsEvent, len(rows))
	for i := range rows {
		events[i] = model.ToAnalyticsEventDomain(&rows[i])
	}

	return events, nil
}

type visitRepository struct {
	db *gorm.DB
}

// NewVisitRepository returns the per-day visit counters.
func NewVisitRepository(db *gorm.DB) repository.VisitRepository {
	return &visitRepository{db: db}
}

// Increment upserts the day row and bumps it in one statement.
func (repo *visitRepository) Increment(ctx context.Context, day string) error {
	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "day"}},
		DoUpdates: clause.Assignments(map[string]any{"count": gorm.Expr("visits.count + 1")}),
	}).Create(&model.VisitModel{Day: day, Count: 1}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to increment visits")
	}

	return nil
}

func (repo *visitRepository) Stats(ctx context.Context, today string) (*entity.VisitorStats, error) {
	stats := &entity.VisitorStats{}

	if err := repo.db.WithContext(ctx).Model(&model.VisitModel{}).
		Select("COALESCE(SUM(count), 0)").Scan(&stats.TotalVisits).Error; err != nil {
		return nil, errors.Wrap(err, "failed to sum visits")
	}

	var row model.VisitModel
	err := repo.db.WithContext(ctx).Where("day = ?", today).Limit(1).Find(&row).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to read today's visits")
	}
	stats.TodayVisits = row.Count

	return stats, nil
}

type activityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository returns the admin audit log table.
func NewActivityLogRepository(db *gorm.DB) repository.ActivityLogRepository {
	return &activityLogRepository{db: db}
}

func (repo *activityLogRepository) Append(ctx context.Context, log *entity.ActivityLog) error {
	if err := repo.db.WithContext(ctx).Create(model.FromActivityLogDomain(log)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append activity log")
	}

	return nil
}

func (repo *activityLogRepository) ListRecent(ctx context.Context, limit int) ([]*entity.ActivityLog, error) {
	var rows []model.ActivityLogModel
	if err := repo.db.WithContext(ctx).Order("timestamp DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list activity logs")
	}

	logs := make([]*entity.ActivityLog, len(rows))
	for i := range rows {
		logs[i] = model.ToActivityLogDomain(&rows[i])
	}

	return logs, nil
}

func (repo *activityLogRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).Where("timestamp < ?", cutoff).Delete(&model.ActivityLogModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to purge activity logs")
	}

	return result.RowsAffected, nil
}
