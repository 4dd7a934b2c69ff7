package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryItem is a homepage category tile.
type CategoryItem struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Type      ProductCategory `json:"type"`
	Image     string          `json:"image"`
	Desc      string          `json:"desc"`
	Count     string          `json:"count"`
	ClassName string          `json:"className,omitempty"` // Layout hint.
	CreatedAt time.Time       `json:"createdAt"`
}

// SlideAction is where a slide's call to action leads.
type SlideAction string

const (
	SlideActionShop    SlideAction = "shop"
	SlideActionBlog    SlideAction = "blog"
	SlideActionContact SlideAction = "contact"
)

// Slide is a homepage hero slide.
type Slide struct {
	ID        uuid.UUID   `json:"id"`
	Image     string      `json:"image"`
	Title     string      `json:"title"`
	Subtitle  string      `json:"subtitle,omitempty"`
	CTA       string      `json:"cta,omitempty"`
	Action    SlideAction `json:"action,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}
