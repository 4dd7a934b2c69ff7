// Package worker runs the background maintenance jobs.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"

	"github.com/umithief/motovibe6/config"
	"github.com/umithief/motovibe6/internal/delivery"
	deliverycontext "github.com/umithief/motovibe6/internal/delivery/context"
	"github.com/umithief/motovibe6/internal/domain/lifecycle"
	"github.com/umithief/motovibe6/internal/usecase"
)

const defaultSchedule = "@daily"

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

type scheduler struct {
	cron     *cron.Cron
	logger   *slog.Logger
	logSvc   usecase.ActivityLogUsecase
	schedule string
}

// SchedulerParams holds dependencies for the job scheduler
type SchedulerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	Location *time.Location
	Logger   *slog.Logger
	LogSvc   usecase.ActivityLogUsecase
}

// NewScheduler creates the cron scheduler that purges expired activity logs
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	schedule := defaultSchedule
	if params.Cfg.ActivityLog != nil && params.Cfg.ActivityLog.Schedule != "" {
		schedule = params.Cfg.ActivityLog.Schedule
	}

	s := &scheduler{
		cron:     cron.New(cron.WithLocation(params.Location), cron.WithParser(cronParser)),
		logger:   params.Logger,
		logSvc:   params.LogSvc,
		schedule: schedule,
	}

	if _, err := s.cron.AddFunc(schedule, s.purgeLogs); err != nil {
		return nil, errors.Wrapf(err, "invalid activity log schedule %q", schedule)
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve runs the scheduler until ctx is done.
func (s *scheduler) Serve(ctx context.Context) error {
	s.logger.Info("Starting job scheduler", slog.String("activityLogSchedule", s.schedule))
	s.cron.Start()
	<-ctx.Done()

	return nil
}

func (s *scheduler) purgeLogs() {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	ctx = deliverycontext.WithLogger(ctx, s.logger.With(slog.String("job", "activity_log_retention")))
	if _, err := s.logSvc.Purge(ctx); err != nil {
		s.logger.Error("Activity log retention failed", slog.Any("error", err))
	}
}

// stop waits for a running job to finish, bounded by the lifecycle timeout.
func (s *scheduler) stop(ctx context.Context) error {
	s.logger.Info("Stopping job scheduler")

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}
