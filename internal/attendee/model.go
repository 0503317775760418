package attendee

import (
	"time"
)

// ============================
// Attendee Model
//
// Each attendee belongs to exactly one event; email is unique per event,
// compared case-insensitively (values are stored lower-cased).
type Attendee struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	FirstName     string    `gorm:"type:varchar(50);not null" json:"first_name"`
	LastName      string    `gorm:"type:varchar(50);not null" json:"last_name"`
	Email         string    `gorm:"type:varchar(120);not null;index:idx_attendee_event_email,unique" json:"email"`
	PhoneNumber   string    `gorm:"type:varchar(15)" json:"phone_number,omitempty"`
	EventID       uint      `gorm:"not null;index:idx_attendee_event_email,unique" json:"event_id"`
	CheckInStatus bool      `gorm:"default:false" json:"check_in_status"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// ============================
// Register Attendee Request
type RegisterRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phone_number"`
}

// Row is one candidate check-in entry from a bulk roster upload.
// Fields arrive as free text; Reconcile normalizes them before matching.
type Row struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

// Outcome of one reconciled row.
const (
	OutcomeCheckedIn         = "checked_in"
	OutcomeAddedAndCheckedIn = "added_and_checked_in"
)

// ProcessedRow reports what happened to one input row. Matched rows carry
// the stored attendee's fields, created rows carry the row's own fields.
type ProcessedRow struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Outcome     string `json:"outcome"`
}

// BatchResult is the result of one bulk check-in batch, one entry per input
// row, in input order.
type BatchResult struct {
	Processed []ProcessedRow `json:"processed"`
}
