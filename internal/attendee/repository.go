package attendee

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/anirudhs017/event-management-backend/internal/event"
)

// Repository is the gorm-backed Store implementation.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

var _ Store = (*Repository)(nil)

func firstOrNil[T any](err error, value *T) (*T, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// ===========================
// Event lookups
func (r *Repository) FindEvent(ctx context.Context, id uint) (*event.Event, error) {
	var e event.Event
	err := r.DB.WithContext(ctx).First(&e, id).Error
	return firstOrNil(err, &e)
}

func (r *Repository) FindEventForUpdate(ctx context.Context, id uint) (*event.Event, error) {
	var e event.Event
	err := r.DB.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&e, id).Error
	return firstOrNil(err, &e)
}

// ===========================
// Attendee lookups
func (r *Repository) CountAttendees(ctx context.Context, eventID uint) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&Attendee{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	return count, err
}

func (r *Repository) FindByEmail(ctx context.Context, eventID uint, email string) (*Attendee, error) {
	var a Attendee
	err := r.DB.WithContext(ctx).
		Where("event_id = ? AND LOWER(email) = LOWER(?)", eventID, email).
		First(&a).Error
	return firstOrNil(err, &a)
}

func (r *Repository) FindByEmailOrPhone(ctx context.Context, eventID uint, email, phone string) (*Attendee, error) {
	query := r.DB.WithContext(ctx).Where("event_id = ?", eventID)
	if phone != "" {
		query = query.Where("LOWER(email) = LOWER(?) OR phone_number = ?", email, phone)
	} else {
		query = query.Where("LOWER(email) = LOWER(?)", email)
	}

	var a Attendee
	err := query.Order("id ASC").First(&a).Error
	return firstOrNil(err, &a)
}

func (r *Repository) FindByID(ctx context.Context, eventID, attendeeID uint) (*Attendee, error) {
	var a Attendee
	err := r.DB.WithContext(ctx).
		Where("id = ? AND event_id = ?", attendeeID, eventID).
		First(&a).Error
	return firstOrNil(err, &a)
}

func (r *Repository) List(ctx context.Context, eventID uint, checkedIn *bool) ([]Attendee, error) {
	query := r.DB.WithContext(ctx).Where("event_id = ?", eventID)
	if checkedIn != nil {
		query = query.Where("check_in_status = ?", *checkedIn)
	}

	var attendees []Attendee
	err := query.Order("id ASC").Find(&attendees).Error
	if err != nil {
		return nil, err
	}
	return attendees, nil
}

// ===========================
// Writes
func (r *Repository) Insert(ctx context.Context, a *Attendee) error {
	return r.DB.WithContext(ctx).Create(a).Error
}

func (r *Repository) Update(ctx context.Context, a *Attendee) error {
	return r.DB.WithContext(ctx).Save(a).Error
}

// InTransaction runs fn against a Repository bound to one transaction.
func (r *Repository) InTransaction(ctx context.Context, fn func(tx Store) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{DB: tx})
	})
}
