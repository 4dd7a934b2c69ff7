package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/umithief/motovibe6/internal/errors"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"translated", errors.Wrap(gorm.ErrDuplicatedKey, "insert"), true},
		{"pg error", errors.Wrap(&pgconn.PgError{Code: "23505", ConstraintName: "idx_orders_code"}, "insert"), true},
		{"driver message", errors.New(`ERROR: duplicate key value violates unique constraint "idx_orders_code" (SQLSTATE 23505)`), true},
		{"other pg error", &pgconn.PgError{Code: "40001"}, false},
		{"other", errors.New("connection reset"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueConstraintViolation(tt.err))
		})
	}
}

func TestIsCheckConstraintViolation(t *testing.T) {
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.True(t, isCheckConstraintViolation(&pgconn.PgError{Code: "23514", ConstraintName: "chk_products_stock"}))
	assert.True(t, isCheckConstraintViolation(errors.New(`new row violates check constraint "chk_products_stock" (SQLSTATE 23514)`)))
	assert.False(t, isCheckConstraintViolation(gorm.ErrRecordNotFound))
}
