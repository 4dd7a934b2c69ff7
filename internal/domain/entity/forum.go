package entity

import (
	"time"

	"github.com/google/uuid"
)

// ForumCategory groups topics on the board.
type ForumCategory string

const (
	ForumGeneral   ForumCategory = "Genel"
	ForumTechnical ForumCategory = "Teknik"
	ForumTravel    ForumCategory = "Gezi"
	ForumGear      ForumCategory = "Ekipman"
	ForumEvent     ForumCategory = "Etkinlik"
)

// IsValid checks if the category is known.
func (c ForumCategory) IsValid() bool {
	switch c {
	case ForumGeneral, ForumTechnical, ForumTravel, ForumGear, ForumEvent:
		return true
	default:
		return false
	}
}

// ForumComment is a sub-record of a topic. Comments are append-only.
type ForumComment struct {
	ID         uuid.UUID `json:"id"`
	AuthorID   uuid.UUID `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Content    string    `json:"content"`
	Date       time.Time `json:"date"`
	Likes      int       `json:"likes"`
}

// ForumTopic is a board thread. Likes and views are increment-only counters
// without per-user deduplication.
type ForumTopic struct {
	ID         uuid.UUID      `json:"id"`
	AuthorID   uuid.UUID      `json:"authorId"`
	AuthorName string         `json:"authorName"`
	Title      string         `json:"title"`
	Content    string         `json:"content"`
	Category   ForumCategory  `json:"category"`
	Date       time.Time      `json:"date"`
	Likes      int            `json:"likes"`
	Views      int            `json:"views"`
	Comments   []ForumComment `json:"comments"`
	Tags       []string       `json:"tags"`
}
