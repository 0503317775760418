package event

import (
	"time"
)

// Status is the stored lifecycle state of an event. The stored value is
// advisory for time-driven completion; see AdvanceLifecycle.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusOngoing, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

// ============================
// Event Model
type Event struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Description  string    `gorm:"type:varchar(255)" json:"description,omitempty"`
	StartTime    time.Time `gorm:"not null" json:"start_time"`
	EndTime      time.Time `gorm:"not null;index" json:"end_time"`
	Location     string    `gorm:"type:varchar(100);not null" json:"location"`
	MaxAttendees int       `gorm:"not null" json:"max_attendees"`
	Status       Status    `gorm:"type:varchar(20);default:'scheduled';index" json:"status"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// ============================
// Create Event Request
type CreateEventRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	StartTime    string `json:"start_time" binding:"required"` // RFC 3339
	EndTime      string `json:"end_time" binding:"required"`   // RFC 3339
	Location     string `json:"location" binding:"required"`
	MaxAttendees int    `json:"max_attendees" binding:"required,gt=0"`
}

// ============================
// Update Event Request (all fields optional, applied when present)
type UpdateEventRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	Location     *string `json:"location"`
	MaxAttendees *int    `json:"max_attendees"`
	Status       *string `json:"status"`
}

// EventSummary is the projection returned by the list endpoint.
type EventSummary struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Status   Status `json:"status"`
}
