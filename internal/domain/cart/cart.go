// Package cart holds the shopping cart value. It performs no I/O; callers own
// notifications and analytics around each mutation.
package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/umithief/motovibe6/internal/domain/entity"
)

// Outcome tells the caller which notification an Add deserves.
type Outcome int

const (
	// OutcomeAdded means a new entry was appended.
	OutcomeAdded Outcome = iota + 1
	// OutcomeUpdated means an existing entry's quantity was incremented.
	OutcomeUpdated
)

// Item is a product snapshot plus a quantity of at least one.
type Item struct {
	Product  entity.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// Subtotal is price times quantity.
func (i Item) Subtotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is an ordered list of entries, unique per product ID. The zero value is
// an empty cart. Cart is not safe for concurrent use.
type Cart struct {
	items []Item
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

func (c *Cart) indexOf(id uuid.UUID) int {
	for i := range c.items {
		if c.items[i].Product.ID == id {
			return i
		}
	}

	return -1
}

// Add increments the entry for product or appends a new one with quantity 1.
// Stock is not consulted here.
func (c *Cart) Add(product entity.Product) Outcome {
	if i := c.indexOf(product.ID); i >= 0 {
		c.items[i].Quantity++
		return OutcomeUpdated
	}

	c.items = append(c.items, Item{Product: product, Quantity: 1})

	return OutcomeAdded
}

// UpdateQuantity applies delta and clamps the result to 1. It reports whether
// the product was in the cart.
func (c *Cart) UpdateQuantity(id uuid.UUID, delta int) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}

	c.items[i].Quantity = max(1, c.items[i].Quantity+delta)

	return true
}

// Remove deletes the entry and reports whether it existed.
func (c *Cart) Remove(id uuid.UUID) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}

	c.items = append(c.items[:i], c.items[i+1:]...)

	return true
}

// Total is recomputed on every call.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Subtotal())
	}

	return total
}

// Count is the number of units across all entries.
func (c *Cart) Count() int {
	n := 0
	for _, item := range c.items {
		n += item.Quantity
	}

	return n
}

// Len is the number of distinct entries.
func (c *Cart) Len() int {
	return len(c.items)
}

// IsEmpty reports whether the cart has no entries.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Quantity returns the quantity held for id, zero if absent.
func (c *Cart) Quantity(id uuid.UUID) int {
	if i := c.indexOf(id); i >= 0 {
		return c.items[i].Quantity
	}

	return 0
}

// Items returns a deep copy of the entries.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	for i, item := range c.items {
		out[i] = item
		out[i].Product.Images = append([]string(nil), item.Product.Images...)
		out[i].Product.Features = append([]string(nil), item.Product.Features...)
	}

	return out
}

// Snapshot freezes the current entries into order line items.
func (c *Cart) Snapshot() []entity.OrderItem {
	out := make([]entity.OrderItem, len(c.items))
	for i, item := range c.items {
		out[i] = entity.OrderItem{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Price:     item.Product.Price,
			Quantity:  item.Quantity,
			Image:     item.Product.Image,
		}
	}

	return out
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}
