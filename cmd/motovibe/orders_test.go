package main

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCartLine(t *testing.T) {
	id := uuid.MustParse("01900000-0000-7000-8001-000000000001")

	tests := []struct {
		name    string
		in      string
		want    cartLine
		wantErr bool
	}{
		{name: "id only", in: id.String(), want: cartLine{productID: id, quantity: 1}},
		{name: "with quantity", in: id.String() + ":3", want: cartLine{productID: id, quantity: 3}},
		{name: "bad id", in: "kask:2", wantErr: true},
		{name: "zero quantity", in: id.String() + ":0", wantErr: true},
		{name: "text quantity", in: id.String() + ":two", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCartLine(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
