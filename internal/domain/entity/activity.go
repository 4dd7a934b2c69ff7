package entity

import (
	"time"

	"github.com/google/uuid"
)

// LogLevel is the severity of an activity log entry.
type LogLevel string

const (
	LogSuccess LogLevel = "success"
	LogWarning LogLevel = "warning"
	LogInfo    LogLevel = "info"
	LogError   LogLevel = "error"
)

// ActivityLog is an admin-facing audit line.
type ActivityLog struct {
	ID        uuid.UUID `json:"id"`
	Type      LogLevel  `json:"type"`
	Event     string    `json:"event"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

// VisitorStats is the visit counter summary.
type VisitorStats struct {
	TotalVisits int64 `json:"totalVisits"`
	TodayVisits int64 `json:"todayVisits"`
}

// VisitDateLayout keys the per-day visit counter.
const VisitDateLayout = "2006-01-02"
