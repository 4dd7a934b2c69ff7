package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umithief/motovibe6/internal/domain/entity"
)

func product(name string, price int64) entity.Product {
	return entity.Product{
		ID:       uuid.New(),
		Name:     name,
		Price:    decimal.NewFromInt(price),
		Category: entity.CategoryHelmet,
		Image:    name + ".jpg",
		Images:   []string{name + ".jpg"},
		Stock:    1,
	}
}

func TestCart_AddSameProductKeepsOneEntry(t *testing.T) {
	c := New()
	helmet := product("Helmet", 8500)

	assert.Equal(t, OutcomeAdded, c.Add(helmet))
	for range 4 {
		assert.Equal(t, OutcomeUpdated, c.Add(helmet))
	}

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 5, c.Quantity(helmet.ID))
	assert.Equal(t, 5, c.Count())
}

func TestCart_AddIgnoresStock(t *testing.T) {
	c := New()
	p := product("Gloves", 1800)
	p.Stock = 0

	c.Add(p)
	c.Add(p)

	assert.Equal(t, 2, c.Quantity(p.ID))
}

func TestCart_UpdateQuantityClamps(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		delta    int
		expected int
	}{
		{name: "increment", start: 2, delta: 1, expected: 3},
		{name: "decrement", start: 2, delta: -1, expected: 1},
		{name: "clamped at one", start: 2, delta: -5, expected: 1},
		{name: "zero delta", start: 3, delta: 0, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			helmet := product("Helmet", 8500)
			for range tt.start {
				c.Add(helmet)
			}

			assert.True(t, c.UpdateQuantity(helmet.ID, tt.delta))
			assert.Equal(t, tt.expected, c.Quantity(helmet.ID))
		})
	}
}

func TestCart_UpdateQuantityUnknownIsNoop(t *testing.T) {
	c := New()
	c.Add(product("Helmet", 8500))

	assert.False(t, c.UpdateQuantity(uuid.New(), 3))
	assert.Equal(t, 1, c.Count())
}

func TestCart_TotalScenario(t *testing.T) {
	c := New()
	helmet := product("Helmet", 8500)
	gloves := product("Gloves", 1800)

	c.Add(helmet)
	c.Add(helmet)
	c.Add(gloves)
	require.True(t, decimal.NewFromInt(18800).Equal(c.Total()), c.Total().String())

	assert.True(t, c.Remove(gloves.ID))
	assert.True(t, decimal.NewFromInt(17000).Equal(c.Total()), c.Total().String())
	assert.False(t, c.Remove(gloves.ID))
}

func TestCart_TotalHasNoFloatDrift(t *testing.T) {
	c := New()
	p := product("Oil", 0)
	p.Price = decimal.RequireFromString("0.1")
	for range 3 {
		c.Add(p)
	}

	assert.Equal(t, "0.3", c.Total().String())
}

func TestCart_SnapshotIsFrozen(t *testing.T) {
	c := New()
	helmet := product("Helmet", 8500)
	c.Add(helmet)
	c.Add(helmet)

	items := c.Snapshot()
	c.Add(helmet)
	c.Clear()

	require.Len(t, items, 1)
	assert.Equal(t, helmet.ID, items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "Helmet.jpg", items[0].Image)
	assert.True(t, decimal.NewFromInt(17000).Equal(entity.ItemsTotal(items)))
	assert.True(t, c.IsEmpty())
}

func TestCart_ItemsIsDeepCopy(t *testing.T) {
	c := New()
	c.Add(product("Helmet", 8500))

	items := c.Items()
	items[0].Quantity = 99
	items[0].Product.Images[0] = "changed"

	again := c.Items()
	assert.Equal(t, 1, again[0].Quantity)
	assert.Equal(t, "Helmet.jpg", again[0].Product.Images[0])
}
