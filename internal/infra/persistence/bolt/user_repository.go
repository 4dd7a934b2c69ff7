package bolt

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/umithief/motovibe6/internal/domain/entity"
	"github.com/umithief/motovibe6/internal/domain/repository"
)

// userRecord carries the password hash the public entity hides from JSON.
type userRecord struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	IsAdmin      bool      `json:"isAdmin"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	JoinDate     time.Time `json:"joinDate"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (r *userRecord) toDomain() *entity.User {
	u := entity.User(*r)

	return &u
}

type userRepository struct {
	store store
}

// NewUserRepository returns the users bucket with its email index.
func NewUserRepository(db *bbolt.DB) repository.UserRepository {
	return &userRepository{store: store{db: db}}
}

func (r *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	var rec userRecord
	err := r.store.view(func(tx *bbolt.Tx) error {
		found, err := getJSON(tx.Bucket(bucketUsers), idKey(id), &rec)
		if err == nil && !found {
			return repository.ErrUserNotFound
		}

		return err
	})
	if err != nil {
		return nil, err
	}

	return rec.toDomain(), nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var id uuid.UUID
	err := r.store.view(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(bucketUserEmails).Get([]byte(email))
		if raw == nil {
			return repository.ErrUserNotFound
		}
		copy(id[:], raw)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.FindByID(ctx, id)
}

func (r *userRepository) Create(_ context.Context, user *entity.User) error {
	return r.store.update(func(tx *bbolt.Tx) error {
		emails := tx.Bucket(bucketUserEmails)
		if emails.Get([]byte(user.Email)) != nil {
			return repository.ErrUserEmailTaken
		}

		rec := userRecord(*user)
		if err := putJSON(tx.Bucket(bucketUsers), idKey(user.ID), &rec); err != nil {
			return err
		}

		return emails.Put([]byte(user.Email), idKey(user.ID))
	})
}

func (r *userRepository) Update(_ context.Context, user *entity.User) error {
	return r.store.update(func(tx *bbolt.Tx) error {
		users, emails := tx.Bucket(bucketUsers), tx.Bucket(bucketUserEmails)

		var prev userRecord
		found, err := getJSON(users, idKey(user.ID), &prev)
		if err != nil {
			return err
		}
		if !found {
			return repository.ErrUserNotFound
		}

		if prev.Email != user.Email {
			if owner := emails.Get([]byte(user.Email)); owner != nil {
				return repository.ErrUserEmailTaken
			}
			if err := emails.Delete([]byte(prev.Email)); err != nil {
				return err
			}
			if err := emails.Put([]byte(user.Email), idKey(user.ID)); err != nil {
				return err
			}
		}

		rec := userRecord(*user)

		return putJSON(users, idKey(user.ID), &rec)
	})
}
