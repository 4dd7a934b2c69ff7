package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/umithief/motovibe6/internal/domain/entity"
	domainerrors "github.com/umithief/motovibe6/internal/domain/errors"
	"github.com/umithief/motovibe6/internal/domain/repository"
	"github.com/umithief/motovibe6/internal/errors"
)

type analyticsEventRepository struct {
	store store
}

// NewAnalyticsEventRepository returns the append-only events collection.
func NewAnalyticsEventRepository(db *mongo.Database) repository.AnalyticsEventRepository {
	return &analyticsEventRepository{store: store{db: db}}
}

func (r *analyticsEventRepository) Append(ctx context.Context, event *entity.AnalyticsEvent) error {
	if _, err := r.store.col(colEvents).InsertOne(ctx, toEventDoc(event)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append analytics event")
	}

	return nil
}

func (r *analyticsEventRepository) ListSince(ctx context.Context, since time.Time) ([]*entity.AnalyticsEvent, error) {
	cur, err := r.store.col(colEvents).Find(ctx,
		bson.M{"timestamp": bson.M{"$gte": since}},
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list analytics events")
	}

	var docs []eventDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode analytics events")
	}

	events := make([]*entity.AnalyticsEvent, len(docs))
	for i := range docs {
		events[i] = docs[i].toDomain()
	}

	return events, nil
}

type visitRepository struct {
	store store
}

// NewVisitRepository returns the per-day counters, one document per day keyed by date.
func NewVisitRepository(db *mongo.Database) repository.VisitRepository {
	return &visitRepository{store: store{db: db}}
}

func (r *visitRepository) Increment(ctx context.Context, day string) error {
	_, err := r.store.col(colVisits).UpdateOne(ctx,
		bson.M{"_id": day},
		bson.M{"$inc": bson.M{"count": 1}},
		options.Update().SetUpsert(true))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to increment visits")
	}

	return nil
}

func (r *visitRepository) Stats(ctx context.Context, today string) (*entity.VisitorStats, error) {
	cur, err := r.store.col(colVisits).Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$count"}}},
			{Key: "today", Value: bson.D{{Key: "$sum", Value: bson.D{
				{Key: "$cond", Value: bson.A{bson.D{{Key: "$eq", Value: bson.A{"$_id", today}}}, "$count", 0}},
			}}}},
		}}},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate visits")
	}

	var rows []struct {
		Total int64 `bson:"total"`
		Today int64 `bson:"today"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, errors.Wrap(err, "failed to decode visit stats")
	}

	stats := &entity.VisitorStats{}
	if len(rows) > 0 {
		stats.TotalVisits = rows[0].Total
		stats.TodayVisits = rows[0].Today
	}

	return stats, nil
}

type activityLogRepository struct {
	store store
}

// NewActivityLogRepository returns the audit log collection.
func NewActivityLogRepository(db *mongo.Database) repository.ActivityLogRepository {
	return &activityLogRepository{store: store{db: db}}
}

func (r *activityLogRepository) Append(ctx context.Context, log *entity.ActivityLog) error {
	if _, err := r.store.col(colLogs).InsertOne(r.store.ctx(ctx), toLogDoc(log)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append activity log")
	}

	return nil
}

func (r *activityLogRepository) ListRecent(ctx context.Context, limit int) ([]*entity.ActivityLog, error) {
	ctx = r.store.ctx(ctx)
	cur, err := r.store.col(colLogs).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(int64(limit)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activity logs")
	}

	var docs []logDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode activity logs")
	}

	logs := make([]*entity.ActivityLog, len(docs))
	for i := range docs {
		logs[i] = docs[i].toDomain()
	}

	return logs, nil
}

func (r *activityLogRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.store.col(colLogs).DeleteMany(r.store.ctx(ctx), bson.M{"timestamp": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to purge activity logs")
	}

	return res.DeletedCount, nil
}
