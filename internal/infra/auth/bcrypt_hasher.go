// Package auth implements password hashing and access tokens.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/umithief/motovibe6/config"
	"github.com/umithief/motovibe6/internal/domain/service"
	"github.com/umithief/motovibe6/internal/errors"
)

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher uses auth.bcryptCost when bcrypt accepts it and
// bcrypt.DefaultCost otherwise.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil {
		if c := cfg.Auth.BcryptCost; c >= bcrypt.MinCost && c <= bcrypt.MaxCost {
			cost = c
		}
	}

	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "hash password")
	}

	return string(hash), nil
}

func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
