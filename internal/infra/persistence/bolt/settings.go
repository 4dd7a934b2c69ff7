package bolt

import (
	"go.etcd.io/bbolt"

	"github.com/umithief/motovibe6/internal/errors"
)

// ErrSettingNotFound is returned by SettingsStore.Get for an unknown key.
var ErrSettingNotFound = errors.New("setting not found")

// SettingsStore keeps small named JSON records, e.g. client preferences.
type SettingsStore struct {
	db *bbolt.DB
}

func NewSettingsStore(db *bbolt.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

// Get decodes the record stored under key into v.
func (s *SettingsStore) Get(key string, v any) error {
	return s.db.View(func(tx *bbolt.Tx) error {
		found, err := getJSON(tx.Bucket(bucketSettings), []byte(key), v)
		if err == nil && !found {
			return ErrSettingNotFound
		}

		return err
	})
}

func (s *SettingsStore) Put(key string, v any) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return putJSON(tx.Bucket(bucketSettings), []byte(key), v)
	})
}

func (s *SettingsStore) Delete(key string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSettings).Delete([]byte(key))
	})
}
