package service

import (
	"context"
	"time"
)

// OrderEvent is published when an order is created or changes status
type OrderEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	Type      string    `json:"type"`
	OrderID   string    `json:"order_id"`
	OrderCode string    `json:"order_code"`
	UserID    string    `json:"user_id"`
	Status    string    `json:"status"`
	Previous  string    `json:"previous_status,omitempty"`
	Total     string    `json:"total"`
	At        time.Time `json:"at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
