package event

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

var _ Store = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// ===========================
// Create Event
func (r *Repository) CreateEvent(ctx context.Context, e *Event) error {
	return r.DB.WithContext(ctx).Create(e).Error
}

// ===========================
// Get Event By ID; returns (nil, nil) when the event does not exist
func (r *Repository) GetEventByID(ctx context.Context, id uint) (*Event, error) {
	var e Event
	err := r.DB.WithContext(ctx).First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ===========================
// List Events ordered by start time
func (r *Repository) ListEvents(ctx context.Context) ([]Event, error) {
	var events []Event
	err := r.DB.WithContext(ctx).
		Order("start_time ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// ===========================
// Update Event
func (r *Repository) UpdateEvent(ctx context.Context, e *Event) error {
	return r.DB.WithContext(ctx).Save(e).Error
}

// ===========================
// Update only the status column (used by the lifecycle side effect on reads)
func (r *Repository) UpdateStatus(ctx context.Context, id uint, status Status) error {
	return r.DB.WithContext(ctx).
		Model(&Event{}).
		Where("id = ?", id).
		Update("status", status).Error
}
