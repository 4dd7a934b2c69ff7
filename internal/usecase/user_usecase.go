package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/umithief/motovibe6/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UserUsecase defines the interface for account operations.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*entity.AuthSession, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// EnsureAdmin creates or promotes the bootstrap administrator.
	EnsureAdmin(ctx context.Context, input *RegisterInput) error
}
