package notification

import "time"

// InAppNotification is a broadcast feed entry generated from attendee
// activity events consumed off Kafka.
type InAppNotification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EventID   *uint     `gorm:"index" json:"event_id,omitempty"`
	Title     string    `gorm:"size:150;not null" json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Category  string    `gorm:"size:30;not null" json:"category"` // registration, checkin, bulk_checkin, system
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (InAppNotification) TableName() string {
	return "in_app_notifications"
}
