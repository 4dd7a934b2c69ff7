package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/umithief/motovibe6/internal/errors"
)

// EventType is the kind of analytics fact.
type EventType string

const (
	EventViewProduct     EventType = "view_product"
	EventAddToCart       EventType = "add_to_cart"
	EventCheckoutStart   EventType = "checkout_start"
	EventSessionDuration EventType = "session_duration"
)

// IsValid checks if the event type is known.
func (t EventType) IsValid() bool {
	switch t {
	case EventViewProduct, EventAddToCart, EventCheckoutStart, EventSessionDuration:
		return true
	default:
		return false
	}
}

// AnalyticsEvent is an append-only fact.
type AnalyticsEvent struct {
	ID          uuid.UUID  `json:"id"`
	Type        EventType  `json:"type"`
	UserID      *uuid.UUID `json:"userId,omitempty"` // Nil for guests.
	UserName    string     `json:"userName,omitempty"`
	ProductID   *uuid.UUID `json:"productId,omitempty"`
	ProductName string     `json:"productName,omitempty"`
	Duration    int        `json:"duration,omitempty"` // Seconds, session_duration only.
	Timestamp   time.Time  `json:"timestamp"`
}

// TimeRange is a named dashboard window.
type TimeRange string

const (
	Range24h TimeRange = "24h"
	Range7d  TimeRange = "7d"
	Range30d TimeRange = "30d"
)

// ErrUnknownRange is returned for an unsupported window name.
var ErrUnknownRange = errors.New("unknown time range")

// ParseTimeRange validates a window name. An empty string means 24h.
func ParseTimeRange(s string) (TimeRange, error) {
	switch TimeRange(s) {
	case "":
		return Range24h, nil
	case Range24h, Range7d, Range30d:
		return TimeRange(s), nil
	default:
		return "", errors.Wrapf(ErrUnknownRange, "range %q", s)
	}
}

// Window is the look-back length of the range.
func (r TimeRange) Window() time.Duration {
	switch r {
	case Range7d:
		return 7 * 24 * time.Hour
	case Range30d:
		return 30 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// ProductCount is one row of a top list.
type ProductCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TimelinePoint is one chart bucket.
type TimelinePoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Dashboard is the aggregated analytics summary.
type Dashboard struct {
	TotalProductViews  int             `json:"totalProductViews"`
	TotalAddToCart     int             `json:"totalAddToCart"`
	TotalCheckouts     int             `json:"totalCheckouts"`
	AvgSessionDuration int             `json:"avgSessionDuration"` // Seconds.
	TopViewedProducts  []ProductCount  `json:"topViewedProducts"`
	TopAddedProducts   []ProductCount  `json:"topAddedProducts"`
	ActivityTimeline   []TimelinePoint `json:"activityTimeline"`
}
