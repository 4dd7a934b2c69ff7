package mongodb

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/umithief/motovibe6/internal/domain/entity"
	domainerrors "github.com/umithief/motovibe6/internal/domain/errors"
	"github.com/umithief/motovibe6/internal/domain/repository"
	"github.com/umithief/motovibe6/internal/errors"
)

type userRepository struct {
	store store
}

// NewUserRepository returns the users collection as a domain.UserRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{store: store{db: db}}
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"_id": id.String()}, "failed to find user by id")
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email}, "failed to find user by email")
}

func (r *userRepository) findOne(ctx context.Context, filter bson.M, msg string) (*entity.User, error) {
	var doc userDoc
	if err := r.store.col(colUsers).FindOne(r.store.ctx(ctx), filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, msg)
	}

	return doc.toDomain(), nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	if _, err := r.store.col(colUsers).InsertOne(r.store.ctx(ctx), toUserDoc(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrUserEmailTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	return nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	doc := toUserDoc(user)
	res, err := r.store.col(colUsers).ReplaceOne(r.store.ctx(ctx), bson.M{"_id": doc.ID}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrUserEmailTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}
	if res.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
