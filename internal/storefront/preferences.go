package storefront

import (
	"sync"

	"github.com/google/uuid"

	"github.com/umithief/motovibe6/internal/domain/entity"
	"github.com/umithief/motovibe6/internal/errors"
	"github.com/umithief/motovibe6/internal/infra/persistence/bolt"
)

const (
	settingFavorites = "favorites"
	settingSession   = "session"
)

// Preferences holds the client-side records: the favorites list and the
// authenticated session. A session saved without "remember me" lives in
// memory only and is gone when the process exits.
type Preferences struct {
	settings *bolt.SettingsStore

	mu      sync.Mutex
	session *entity.AuthSession
}

func NewPreferences(settings *bolt.SettingsStore) *Preferences {
	return &Preferences{settings: settings}
}

// Favorites returns the saved product IDs, empty when none were saved.
func (p *Preferences) Favorites() ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := p.settings.Get(settingFavorites, &ids); err != nil {
		if errors.Is(err, bolt.ErrSettingNotFound) {
			return []uuid.UUID{}, nil
		}

		return nil, errors.Wrap(err, "failed to load favorites")
	}

	return ids, nil
}

func (p *Preferences) SaveFavorites(ids []uuid.UUID) error {
	return errors.Wrap(p.settings.Put(settingFavorites, ids), "failed to save favorites")
}

// Session returns the in-memory session, or the remembered one. It returns
// nil without error when nobody is signed in.
func (p *Preferences) Session() (*entity.AuthSession, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.session != nil {
		return p.session, nil
	}

	var session entity.AuthSession
	if err := p.settings.Get(settingSession, &session); err != nil {
		if errors.Is(err, bolt.ErrSettingNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load session")
	}
	p.session = &session

	return p.session, nil
}

// SaveSession keeps session in memory and, with remember set, in the store.
// Without remember any previously remembered session is dropped.
func (p *Preferences) SaveSession(session *entity.AuthSession, remember bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.session = session
	if remember {
		return errors.Wrap(p.settings.Put(settingSession, session), "failed to save session")
	}

	return errors.Wrap(p.settings.Delete(settingSession), "failed to drop remembered session")
}

func (p *Preferences) ClearSession() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.session = nil

	return errors.Wrap(p.settings.Delete(settingSession), "failed to clear session")
}
