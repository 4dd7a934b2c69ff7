package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPreparing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered, OrderStatusCancelled},
}

// IsValid checks if the status is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPreparing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo reports whether next may follow s. Re-applying the current
// status is allowed and treated as a no-op by callers.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return true
	}

	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// Label returns the Turkish display name.
func (s OrderStatus) Label() string {
	switch s {
	case OrderStatusPreparing:
		return "Hazırlanıyor"
	case OrderStatusShipped:
		return "Kargoda"
	case OrderStatusDelivered:
		return "Teslim Edildi"
	case OrderStatusCancelled:
		return "İptal"
	default:
		return string(s)
	}
}

// OrderItem is a frozen copy of a cart entry. It never references the live
// product record beyond its identifier.
type OrderItem struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image"`
}

// Subtotal is price times quantity.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is a persisted checkout. Total and Items are immutable after creation.
type Order struct {
	ID        uuid.UUID       `json:"id"`
	Code      string          `json:"code"` // Display code, MV-<year>-<4 digits>.
	UserID    uuid.UUID       `json:"userId"`
	Date      time.Time       `json:"date"`
	Status    OrderStatus     `json:"status"`
	Total     decimal.Decimal `json:"total"`
	Items     []OrderItem     `json:"items"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// OrderFilter narrows an order listing.
type OrderFilter struct {
	UserID *uuid.UUID
}

// ItemsTotal sums the line items.
func ItemsTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}

	return total
}

// FormatOrderCode renders the display code for the given year and sequence.
func FormatOrderCode(year, seq int) string {
	return fmt.Sprintf("MV-%d-%04d", year, seq%10000)
}
