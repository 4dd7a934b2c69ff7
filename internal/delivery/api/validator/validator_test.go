package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Internal string `json:"-" validate:"omitempty,max=3"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&loginForm{Email: "ayse@example.com", Password: "x"}))

	err := v.Validate(&loginForm{Email: "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email failed on email")
	assert.Contains(t, err.Error(), "password failed on required")
}
