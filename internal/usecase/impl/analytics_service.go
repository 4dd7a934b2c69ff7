package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"github.com/umithief/motovibe6/config"
	deliverycontext "github.com/umithief/motovibe6/internal/delivery/context"
	"github.com/umithief/motovibe6/internal/domain/analytics"
	"github.com/umithief/motovibe6/internal/domain/entity"
	domainerrors "github.com/umithief/motovibe6/internal/domain/errors"
	"github.com/umithief/motovibe6/internal/domain/repository"
	"github.com/umithief/motovibe6/internal/domain/service"
	"github.com/umithief/motovibe6/internal/usecase"
)

type analyticsService struct {
	eventRepo repository.AnalyticsEventRepository
	visitRepo repository.VisitRepository
	clock     service.Clock
	logger    *slog.Logger
}

// AnalyticsServiceParams holds dependencies for AnalyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	EventRepo repository.AnalyticsEventRepository
	VisitRepo repository.VisitRepository
	Clock     service.Clock
	Logger    *slog.Logger
}

// NewAnalyticsService creates the analytics use case.
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	return &analyticsService{
		eventRepo: params.EventRepo,
		visitRepo: params.VisitRepo,
		clock:     params.Clock,
		logger:    params.Logger,
	}
}

func (srv *analyticsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *analyticsService) TrackEvent(ctx context.Context, event *entity.AnalyticsEvent) error {
	if !event.Type.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown event type")
	}
	if event.Duration < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("duration must not be negative")
	}

	event.ID = uuid.Must(uuid.NewV7())
	if event.Timestamp.IsZero() {
		event.Timestamp = srv.clock.Now()
	}

	if err := srv.eventRepo.Append(ctx, event); err != nil {
		return errors.Wrap(err, "failed to append analytics event")
	}

	return nil
}

func (srv *analyticsService) Dashboard(ctx context.Context, r entity.TimeRange) (*entity.Dashboard, error) {
	r, err := entity.ParseTimeRange(string(r))
	if err != nil {
		return nil, domainerrors.ErrInvalidRange.WithDetails(err.Error())
	}

	now := srv.clock.Now()
	events, err := srv.eventRepo.ListSince(ctx, now.Add(-r.Window()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list analytics events")
	}

	values := make([]entity.AnalyticsEvent, len(events))
	for i, ev := range events {
		values[i] = *ev
	}

	dash := analytics.Aggregate(values, r, now, srv.clock.Location())
	srv.log(ctx).Debug("Dashboard aggregated", slog.String("range", string(r)), slog.Int("events", len(values)))

	return &dash, nil
}

func (srv *analyticsService) today() string {
	return srv.clock.Now().In(srv.clock.Location()).Format(entity.VisitDateLayout)
}

func (srv *analyticsService) RecordVisit(ctx context.Context) error {
	return errors.Wrap(srv.visitRepo.Increment(ctx, srv.today()), "failed to record visit")
}

func (srv *analyticsService) VisitorStats(ctx context.Context) (*entity.VisitorStats, error) {
	stats, err := srv.visitRepo.Stats(ctx, srv.today())
	if err != nil {
		return nil, errors.Wrap(err, "failed to read visitor stats")
	}

	return stats, nil
}

type activityLogService struct {
	logRepo   repository.ActivityLogRepository
	clock     service.Clock
	retention time.Duration
	logger    *slog.Logger
}

// ActivityLogServiceParams holds dependencies for ActivityLogService, injected by Fx.
type ActivityLogServiceParams struct {
	fx.In

	LogRepo repository.ActivityLogRepository
	Clock   service.Clock
	Config  *config.Config
	Logger  *slog.Logger
}

const (
	defaultLogLimit = 50
	maxLogLimit     = 500
)

// NewActivityLogService creates the audit log use case.
func NewActivityLogService(params ActivityLogServiceParams) usecase.ActivityLogUsecase {
	days := 90
	if params.Config != nil && params.Config.ActivityLog != nil && params.Config.ActivityLog.RetentionDays > 0 {
		days = params.Config.ActivityLog.RetentionDays
	}

	return &activityLogService{
		logRepo:   params.LogRepo,
		clock:     params.Clock,
		retention: time.Duration(days) * 24 * time.Hour,
		logger:    params.Logger,
	}
}

func (srv *activityLogService) ListRecent(ctx context.Context, limit int) ([]*entity.ActivityLog, error) {
	if limit <= 0 {
		limit = defaultLogLimit
	}
	limit = min(limit, maxLogLimit)

	logs, err := srv.logRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activity logs")
	}

	return logs, nil
}

func (srv *activityLogService) Purge(ctx context.Context) (int64, error) {
	cutoff := srv.clock.Now().Add(-srv.retention)

	n, err := srv.logRepo.DeleteBefore(ctx, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge activity logs")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Purged activity logs",
		slog.Int64("deleted", n),
		slog.Time("cutoff", cutoff),
	)

	return n, nil
}
