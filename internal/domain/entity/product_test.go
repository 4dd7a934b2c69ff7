package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validProduct() Product {
	return Product{
		Name:     "AeroSpeed Carbon Pro Kask",
		Price:    decimal.NewFromInt(8500),
		Category: CategoryHelmet,
		Image:    "cover.jpg",
		Rating:   4.8,
		Stock:    15,
	}
}

func TestProduct_Normalize(t *testing.T) {
	t.Run("empty gallery falls back to cover", func(t *testing.T) {
		p := validProduct()
		p.Normalize()
		assert.Equal(t, []string{"cover.jpg"}, p.Images)
		assert.Equal(t, "cover.jpg", p.Image)
		assert.NotNil(t, p.Features)
	})

	t.Run("cover is always the first gallery entry", func(t *testing.T) {
		p := validProduct()
		p.Image = "old.jpg"
		p.Images = []string{" ", "a.jpg", "b.jpg"}
		p.Normalize()
		assert.Equal(t, []string{"a.jpg", "b.jpg"}, p.Images)
		assert.Equal(t, "a.jpg", p.Image)
	})

	t.Run("no images at all", func(t *testing.T) {
		p := validProduct()
		p.Image = ""
		p.Normalize()
		assert.Empty(t, p.Images)
		assert.Empty(t, p.Image)
	})
}

func TestProduct_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Product)
		want   error
	}{
		{name: "valid", mutate: func(*Product) {}, want: nil},
		{name: "missing name", mutate: func(p *Product) { p.Name = "" }, want: ErrProductNameRequired},
		{name: "zero price", mutate: func(p *Product) { p.Price = decimal.Zero }, want: ErrProductPriceInvalid},
		{name: "rating above five", mutate: func(p *Product) { p.Rating = 5.1 }, want: ErrProductRatingInvalid},
		{name: "negative stock", mutate: func(p *Product) { p.Stock = -1 }, want: ErrProductStockInvalid},
		{name: "unknown category", mutate: func(p *Product) { p.Category = "Scooter" }, want: ErrProductCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProduct()
			tt.mutate(&p)
			assert.ErrorIs(t, p.Validate(), tt.want)
		})
	}
}

func TestParseTimeRange(t *testing.T) {
	r, err := ParseTimeRange("")
	assert.NoError(t, err)
	assert.Equal(t, Range24h, r)

	r, err = ParseTimeRange("30d")
	assert.NoError(t, err)
	assert.Equal(t, Range30d, r)

	_, err = ParseTimeRange("1y")
	assert.ErrorIs(t, err, ErrUnknownRange)
}

func TestUser_Roles(t *testing.T) {
	assert.Equal(t, Roles{RoleUser}, (&User{}).Roles())
	assert.True(t, (&User{IsAdmin: true}).Roles().Contains(RoleAdmin))
	assert.Equal(t, Roles{RoleAdmin}, RolesFromStrings([]string{"admin", "merchant"}))
}
