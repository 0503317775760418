package notification

import (
	"context"
	"fmt"

	"github.com/anirudhs017/event-management-backend/internal/apperror"
	"gorm.io/gorm"
)

type Service interface {
	CreateFromActivity(ctx context.Context, activity map[string]interface{}) error
	List(ctx context.Context, limit int) ([]InAppNotification, error)
	MarkAsRead(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateFromActivity turns an attendee activity event into an in-app
// notification. Unknown activity types are stored under the system category
// rather than dropped so nothing published to the topic is lost silently.
func (s *service) CreateFromActivity(ctx context.Context, activity map[string]interface{}) error {
	activityType, _ := activity["type"].(string)

	var eventID *uint
	if raw, ok := activity["event_id"].(float64); ok {
		id := uint(raw)
		eventID = &id
	}

	eventLabel := "an event"
	if eventID != nil {
		eventLabel = fmt.Sprintf("event %d", *eventID)
	}

	n := &InAppNotification{EventID: eventID}

	switch activityType {
	case "attendee.registered":
		email, _ := activity["email"].(string)
		n.Category = "registration"
		n.Title = "New registration"
		n.Message = fmt.Sprintf("%s registered for %s", email, eventLabel)
	case "attendee.checked_in":
		email, _ := activity["email"].(string)
		n.Category = "checkin"
		n.Title = "Attendee checked in"
		n.Message = fmt.Sprintf("%s checked in at %s", email, eventLabel)
	case "attendee.bulk_checkin":
		count, _ := activity["rows"].(float64)
		n.Category = "bulk_checkin"
		n.Title = "Bulk check-in processed"
		n.Message = fmt.Sprintf("%d roster rows reconciled for %s", int(count), eventLabel)
	default:
		n.Category = "system"
		n.Title = "Activity recorded"
		n.Message = fmt.Sprintf("activity %q recorded", activityType)
	}

	return s.repo.Create(ctx, n)
}

func (s *service) List(ctx context.Context, limit int) ([]InAppNotification, error) {
	return s.repo.List(ctx, limit)
}

func (s *service) MarkAsRead(ctx context.Context, id uint) error {
	if err := s.repo.MarkAsRead(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperror.NotFound("notification not found")
		}
		return apperror.Persistence(err)
	}
	return nil
}
