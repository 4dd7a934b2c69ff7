package bolt

import (
	"context"
	"time"

	"go.etcd.io/bbolt"

	"github.com/umithief/motovibe6/internal/domain/entity"
	"github.com/umithief/motovibe6/internal/domain/repository"
	"github.com/umithief/motovibe6/internal/errors"
)

type analyticsEventRepository struct {
	store store
}

// NewAnalyticsEventRepository returns the event bucket, keyed chronologically.
func NewAnalyticsEventRepository(db *bbolt.DB) repository.AnalyticsEventRepository {
	return &analyticsEventRepository{store: store{db: db}}
}

func (r *analyticsEventRepository) Append(_ context.Context, event *entity.AnalyticsEvent) error {
	return r.store.update(func(tx *bbolt.Tx) error {
		return putJSON(tx.Bucket(bucketEvents), timeKey(event.Timestamp, event.ID), event)
	})
}

func (r *analyticsEventRepository) ListSince(_ context.Context, since time.Time) ([]*entity.AnalyticsEvent, error) {
	var events []*entity.AnalyticsEvent
	err := r.store.view(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketEvents).Cursor()
		for k, v := c.Seek(timePrefix(since)); k != nil; k, v = c.Next() {
			e := new(entity.AnalyticsEvent)
			if err := json.Unmarshal(v, e); err != nil {
				return errors.Wrapf(err, "decode event %x", k)
			}
			events = append(events, e)
		}

		return nil
	})

	return events, err
}

type visitRepository struct {
	store store
}

// NewVisitRepository returns the day -> count bucket.
func NewVisitRepository(db *bbolt.DB) repository.VisitRepository {
	return &visitRepository{store: store{db: db}}
}

func (r *visitRepository) Increment(_ context.Context, day string) error {
	return r.store.update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketVisits)

		return b.Put([]byte(day), encodeCount(decodeCount(b.Get([]byte(day)))+1))
	})
}

func (r *visitRepository) Stats(_ context.Context, today string) (*entity.VisitorStats, error) {
	stats := &entity.VisitorStats{}
	err := r.store.view(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketVisits)
		stats.TodayVisits = int64(decodeCount(b.Get([]byte(today))))

		return b.ForEach(func(_, v []byte) error {
			stats.TotalVisits += int64(decodeCount(v))

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return stats, nil
}

type activityLogRepository struct {
	store store
}

// NewActivityLogRepository returns the audit bucket, keyed chronologically.
func NewActivityLogRepository(db *bbolt.DB) repository.ActivityLogRepository {
	return &activityLogRepository{store: store{db: db}}
}

func (r *activityLogRepository) Append(_ context.Context, log *entity.ActivityLog) error {
	return r.store.update(func(tx *bbolt.Tx) error {
		return putJSON(tx.Bucket(bucketLogs), timeKey(log.Timestamp, log.ID), log)
	})
}

func (r *activityLogRepository) ListRecent(_ context.Context, limit int) ([]*entity.ActivityLog, error) {
	logs := make([]*entity.ActivityLog, 0, limit)
	err := r.store.view(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketLogs).Cursor()
		for k, v := c.Last(); k != nil && len(logs) < limit; k, v = c.Prev() {
			l := new(entity.ActivityLog)
			if err := json.Unmarshal(v, l); err != nil {
				return errors.Wrapf(err, "decode activity log %x", k)
			}
			logs = append(logs, l)
		}

		return nil
	})

	return logs, err
}

func (r *activityLogRepository) DeleteBefore(_ context.Context, cutoff time.Time) (int64, error) {
	var deleted int64
	err := r.store.update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketLogs)
		prefix := timePrefix(cutoff)

		var stale [][]byte
		c := b.Cursor()
		for k, _ := c.First(); k != nil && before(k, prefix); k, _ = c.Next() {
			stale = append(stale, append([]byte(nil), k...))
		}

		for _, k := range stale {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		deleted = int64(len(stale))

		return nil
	})

	return deleted, err
}
