package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/umithief/motovibe6/config"
)

func newHasherConfig(cost int) *config.Config {
	return &config.Config{Auth: &config.AuthConfig{BcryptCost: cost}}
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(newHasherConfig(bcrypt.MinCost))

	hash, err := hasher.Hash("gizli123")
	require.NoError(t, err)
	assert.NotEqual(t, "gizli123", hash)

	assert.True(t, hasher.Check("gizli123", hash))
	assert.False(t, hasher.Check("gizli124", hash))
	assert.False(t, hasher.Check("gizli123", "not-a-hash"))
}

func TestBcryptHasher_SaltsEachHash(t *testing.T) {
	hasher := NewBcryptHasher(newHasherConfig(bcrypt.MinCost))

	first, err := hasher.Hash("gizli123")
	require.NoError(t, err)
	second, err := hasher.Hash("gizli123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_Cost(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want int
	}{
		{name: "configured", cfg: newHasherConfig(bcrypt.MinCost + 1), want: bcrypt.MinCost + 1},
		{name: "too high", cfg: newHasherConfig(bcrypt.MaxCost + 1), want: bcrypt.DefaultCost},
		{name: "unset", cfg: &config.Config{}, want: bcrypt.DefaultCost},
		{name: "nil config", cfg: nil, want: bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := NewBcryptHasher(tt.cfg).(*bcryptHasher)
			assert.Equal(t, tt.want, hasher.cost)
		})
	}
}

func TestBcryptHasher_HashIsBcrypt(t *testing.T) {
	hasher := NewBcryptHasher(newHasherConfig(bcrypt.MinCost))

	hash, err := hasher.Hash("gizli123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}
