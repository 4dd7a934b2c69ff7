package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"github.com/umithief/motovibe6/config"
	mockUsecase "github.com/umithief/motovibe6/internal/mocks/usecase"
)

func newTestScheduler(t *testing.T, schedule string, logSvc *mockUsecase.MockActivityLogUsecase) (*scheduler, error) {
	cfg := &config.Config{ActivityLog: &config.ActivityLogConfig{Schedule: schedule}}

	d, err := NewScheduler(SchedulerParams{
		Lc:       fxtest.NewLifecycle(t),
		Cfg:      cfg,
		Location: time.UTC,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		LogSvc:   logSvc,
	})
	if err != nil {
		return nil, err
	}

	return d.(*scheduler), nil
}

func TestNewScheduler_InvalidSchedule(t *testing.T) {
	_, err := newTestScheduler(t, "every tuesday", mockUsecase.NewMockActivityLogUsecase(t))

	assert.Error(t, err)
}

func TestNewScheduler_DefaultSchedule(t *testing.T) {
	s, err := newTestScheduler(t, "", mockUsecase.NewMockActivityLogUsecase(t))

	require.NoError(t, err)
	assert.Equal(t, defaultSchedule, s.schedule)
	assert.Len(t, s.cron.Entries(), 1)
}

func TestScheduler_PurgeLogs(t *testing.T) {
	logSvc := mockUsecase.NewMockActivityLogUsecase(t)
	s, err := newTestScheduler(t, "@hourly", logSvc)
	require.NoError(t, err)

	logSvc.EXPECT().Purge(mock.Anything).Return(3, nil).Once()
	s.purgeLogs()

	logSvc.EXPECT().Purge(mock.Anything).Return(0, errors.New("store closed")).Once()
	s.purgeLogs()
}

func TestScheduler_ServeStopsWithContext(t *testing.T) {
	s, err := newTestScheduler(t, "@hourly", mockUsecase.NewMockActivityLogUsecase(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after cancel")
	}

	require.NoError(t, s.stop(context.Background()))
}
