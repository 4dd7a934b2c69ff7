// Package bolt implements the persistence ports on an embedded bbolt file.
// Every collection is a namespaced bucket; values are JSON documents.
package bolt

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.etcd.io/bbolt"
	"go.uber.org/fx"

	"github.com/umithief/motovibe6/config"
	"github.com/umithief/motovibe6/internal/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultOpenTimeout = time.Second

// Bucket names. The mv_ prefix keeps the file shareable with other tools.
var (
	bucketUsers      = []byte("mv_users")
	bucketUserEmails = []byte("mv_user_emails") // email -> user id
	bucketProducts   = []byte("mv_products")
	bucketCategories = []byte("mv_categories")
	bucketSlides     = []byte("mv_slides")
	bucketOrders     = []byte("mv_orders")
	bucketOrderCodes = []byte("mv_order_codes") // code -> order id
	bucketTopics     = []byte("mv_forum_topics")
	bucketEvents     = []byte("mv_analytics_events")
	bucketVisits     = []byte("mv_visits")
	bucketLogs       = []byte("mv_activity_logs")
	bucketSettings   = []byte("mv_settings")
)

var allBuckets = [][]byte{
	bucketUsers, bucketUserEmails, bucketProducts, bucketCategories, bucketSlides,
	bucketOrders, bucketOrderCodes, bucketTopics, bucketEvents, bucketVisits, bucketLogs,
	bucketSettings,
}

// Open opens (or creates) the store file and its buckets.
func Open(path string, timeout time.Duration) (*bbolt.DB, error) {
	if timeout <= 0 {
		timeout = defaultOpenTimeout
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrapf(err, "create store directory %s", dir)
		}
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: timeout})
	if err != nil {
		return nil, errors.Wrapf(err, "open bolt store %s", path)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range allBuckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return errors.Wrapf(err, "create bucket %s", name)
			}
		}

		return nil
	})
	if err != nil {
		_ = db.Close()

		return nil, err
	}

	return db, nil
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured store and closes it when the app stops.
func New(params Params) (*bbolt.DB, error) {
	path, timeout := config.DefaultBoltPath, time.Duration(0)
	if b := params.Config.Storage.Bolt; b != nil {
		if b.Path != "" {
			path = b.Path
		}
		timeout = b.OpenTimeout
	}

	db, err := Open(path, timeout)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			params.Logger.Info("Bolt store opened", slog.String("path", path))

			return nil
		},
		OnStop: func(context.Context) error {
			return db.Close()
		},
	})

	return db, nil
}

// store is embedded by every repository. A non-nil tx pins calls to an
// enclosing transaction; otherwise each call opens its own.
type store struct {
	db *bbolt.DB
	tx *bbolt.Tx
}

func (s store) view(fn func(tx *bbolt.Tx) error) error {
	if s.tx != nil {
		return fn(s.tx)
	}

	return s.db.View(fn)
}

func (s store) update(fn func(tx *bbolt.Tx) error) error {
	if s.tx != nil {
		return fn(s.tx)
	}

	return s.db.Update(fn)
}

func putJSON(b *bbolt.Bucket, key []byte, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "encode record")
	}

	return b.Put(key, raw)
}

func getJSON(b *bbolt.Bucket, key []byte, v any) (bool, error) {
	raw := b.Get(key)
	if raw == nil {
		return false, nil
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return true, errors.Wrapf(err, "decode record %x", key)
	}

	return true, nil
}

// listJSON decodes every value of the bucket.
func listJSON[T any](b *bbolt.Bucket) ([]*T, error) {
	out := make([]*T, 0, b.Stats().KeyN)
	err := b.ForEach(func(k, v []byte) error {
		item := new(T)
		if err := json.Unmarshal(v, item); err != nil {
			return errors.Wrapf(err, "decode record %x", k)
		}
		out = append(out, item)

		return nil
	})

	return out, err
}
