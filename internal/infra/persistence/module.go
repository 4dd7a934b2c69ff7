// Package persistence selects the storage backend that satisfies the repository ports.
package persistence

import (
	"go.uber.org/fx"

	"github.com/umithief/motovibe6/internal/errors"
	"github.com/umithief/motovibe6/internal/infra/persistence/bolt"
	"github.com/umithief/motovibe6/internal/infra/persistence/mongodb"
	"github.com/umithief/motovibe6/internal/infra/persistence/postgres"
)

// Supported storage.backend values.
const (
	BackendMongo    = "mongo"
	BackendPostgres = "postgres"
	BackendBolt     = "bolt"
)

// ErrUnknownBackend is reported for an unsupported storage.backend.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Module provides every repository port from the named backend. There is no
// fallback between backends.
func Module(backend string) fx.Option {
	switch backend {
	case BackendMongo:
		return fx.Module("persistence.mongo", fx.Provide(
			mongodb.New,
			mongodb.NewTransactionManager,
			mongodb.NewUserRepository,
			mongodb.NewProductRepository,
			mongodb.NewOrderRepository,
			mongodb.NewCategoryRepository,
			mongodb.NewSlideRepository,
			mongodb.NewForumTopicRepository,
			mongodb.NewAnalyticsEventRepository,
			mongodb.NewVisitRepository,
			mongodb.NewActivityLogRepository,
		))
	case BackendPostgres:
		return fx.Module("persistence.postgres", fx.Provide(
			postgres.New,
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewProductRepository,
			postgres.NewOrderRepository,
			postgres.NewCategoryRepository,
			postgres.NewSlideRepository,
			postgres.NewForumTopicRepository,
			postgres.NewAnalyticsEventRepository,
			postgres.NewVisitRepository,
			postgres.NewActivityLogRepository,
		))
	case BackendBolt:
		return fx.Module("persistence.bolt", fx.Provide(
			bolt.New,
			bolt.NewTransactionManager,
			bolt.NewUserRepository,
			bolt.NewProductRepository,
			bolt.NewOrderRepository,
			bolt.NewCategoryRepository,
			bolt.NewSlideRepository,
			bolt.NewForumTopicRepository,
			bolt.NewAnalyticsEventRepository,
			bolt.NewVisitRepository,
			bolt.NewActivityLogRepository,
		))
	default:
		return fx.Error(errors.Wrapf(ErrUnknownBackend, "%q", backend))
	}
}
