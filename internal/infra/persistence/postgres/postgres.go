package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/umithief/motovibe6/config"
	"github.com/umithief/motovibe6/internal/domain/lifecycle"
	"github.com/umithief/motovibe6/internal/errors"
	"github.com/umithief/motovibe6/internal/infra/persistence/model"
)

const (
	poolSampleInterval = 5 * time.Second
	poolWaitWarnAfter  = 50 * time.Millisecond
)

type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to PostgreSQL. The schema is migrated and the pool sampler
// started when the app starts; both stop with it.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Storage.Postgres == nil {
		return nil, errors.New("storage.postgres is not configured")
	}

	db, err := pgLib.New(params.Config.Storage.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "connect postgres")
	}
	db.Config.TranslateError = true
	// multi-step writes go through the TransactionManager
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "postgres sql.DB handle")
	}

	sampler := &poolSampler{db: sqlDB, logger: params.Logger.With(slog.String("component", "pg_pool"))}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "ping postgres")
			}
			if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
				return errors.Wrap(err, "migrate storefront schema")
			}
			sampler.start(poolSampleInterval)

			return nil
		},
		OnStop: func(context.Context) error {
			sampler.stop()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// poolSampler logs whenever requests had to wait for a pooled connection
// since the previous sample.
type poolSampler struct {
	db     *sql.DB
	logger *slog.Logger
	cancel context.CancelFunc
	prev   sql.DBStats
}

func (s *poolSampler) start(interval time.Duration) {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.prev = s.db.Stats()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sample(ctx)
			}
		}
	}()
}

func (s *poolSampler) stop() {
	if s.cancel != nil {
		s.cancel()
	}
}

func (s *poolSampler) sample(ctx context.Context) {
	cur := s.db.Stats()
	waits := cur.WaitCount - s.prev.WaitCount
	waited := cur.WaitDuration - s.prev.WaitDuration
	s.prev = cur

	if waits <= 0 {
		return
	}

	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}

	s.logger.LogAttrs(ctx, level, "Connection pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("max_open", cur.MaxOpenConnections),
	)
}
