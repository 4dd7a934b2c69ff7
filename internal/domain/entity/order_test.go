package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		from     OrderStatus
		to       OrderStatus
		expected bool
	}{
		{name: "preparing to shipped", from: OrderStatusPreparing, to: OrderStatusShipped, expected: true},
		{name: "preparing to cancelled", from: OrderStatusPreparing, to: OrderStatusCancelled, expected: true},
		{name: "preparing to delivered skips shipping", from: OrderStatusPreparing, to: OrderStatusDelivered, expected: false},
		{name: "shipped to delivered", from: OrderStatusShipped, to: OrderStatusDelivered, expected: true},
		{name: "shipped to cancelled", from: OrderStatusShipped, to: OrderStatusCancelled, expected: true},
		{name: "shipped back to preparing", from: OrderStatusShipped, to: OrderStatusPreparing, expected: false},
		{name: "delivered is terminal", from: OrderStatusDelivered, to: OrderStatusCancelled, expected: false},
		{name: "cancelled is terminal", from: OrderStatusCancelled, to: OrderStatusPreparing, expected: false},
		{name: "same status is idempotent", from: OrderStatusDelivered, to: OrderStatusDelivered, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatus_Label(t *testing.T) {
	assert.Equal(t, "Hazırlanıyor", OrderStatusPreparing.Label())
	assert.Equal(t, "Kargoda", OrderStatusShipped.Label())
	assert.Equal(t, "Teslim Edildi", OrderStatusDelivered.Label())
	assert.Equal(t, "İptal", OrderStatusCancelled.Label())
	assert.False(t, OrderStatus("lost").IsValid())
}

func TestItemsTotal(t *testing.T) {
	items := []OrderItem{
		{ProductID: uuid.New(), Name: "Kask", Price: decimal.NewFromInt(8500), Quantity: 2},
		{ProductID: uuid.New(), Name: "Eldiven", Price: decimal.NewFromInt(1800), Quantity: 1},
	}

	assert.True(t, decimal.NewFromInt(18800).Equal(ItemsTotal(items)))
	assert.True(t, decimal.Zero.Equal(ItemsTotal(nil)))
}

func TestFormatOrderCode(t *testing.T) {
	assert.Equal(t, "MV-2024-0042", FormatOrderCode(2024, 42))
	assert.Equal(t, "MV-2024-1234", FormatOrderCode(2024, 1234))
}
