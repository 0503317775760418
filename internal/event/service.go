package event

import (
	"context"
	"log"
	"time"

	"github.com/anirudhs017/event-management-backend/internal/apperror"
	"github.com/anirudhs017/event-management-backend/internal/auditlog"
)

// Service wraps business logic for events
type Service struct {
	Repo     Store
	AuditSvc auditlog.Service
	Now      func() time.Time
}

func NewService(r Store, auditSvc auditlog.Service) *Service {
	return &Service{
		Repo:     r,
		AuditSvc: auditSvc,
		Now:      time.Now,
	}
}

func (s *Service) audit(ctx context.Context, userID uint, eventID *uint, action string, details map[string]interface{}, ip, status string) {
	if s.AuditSvc == nil {
		return
	}
	if err := s.AuditSvc.LogAction(ctx, &userID, eventID, action, details, ip, status); err != nil {
		log.Printf("audit log write failed: %v", err)
	}
}

// ===========================
// Create Event
func (s *Service) CreateEvent(ctx context.Context, req *CreateEventRequest, userID uint, ip string) (*Event, error) {
	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		s.audit(ctx, userID, nil, "EVENT_CREATED", map[string]interface{}{
			"name": req.Name, "error": "invalid start_time format",
		}, ip, "failure")
		return nil, apperror.Validation("invalid start_time format, use RFC 3339")
	}

	endTime, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		s.audit(ctx, userID, nil, "EVENT_CREATED", map[string]interface{}{
			"name": req.Name, "error": "invalid end_time format",
		}, ip, "failure")
		return nil, apperror.Validation("invalid end_time format, use RFC 3339")
	}

	if endTime.Before(startTime) {
		return nil, apperror.Validation("end_time must not be before start_time")
	}
	if req.MaxAttendees <= 0 {
		return nil, apperror.Validation("max_attendees must be a positive integer")
	}

	event := &Event{
		Name:         req.Name,
		Description:  req.Description,
		StartTime:    startTime,
		EndTime:      endTime,
		Location:     req.Location,
		MaxAttendees: req.MaxAttendees,
		Status:       StatusScheduled,
	}

	if err := s.Repo.CreateEvent(ctx, event); err != nil {
		s.audit(ctx, userID, nil, "EVENT_CREATED", map[string]interface{}{
			"name": req.Name, "error": "database error",
		}, ip, "failure")
		return nil, apperror.Persistence(err)
	}

	s.audit(ctx, userID, &event.ID, "EVENT_CREATED", map[string]interface{}{
		"name": event.Name, "location": event.Location,
	}, ip, "success")

	return event, nil
}

// ===========================
// Update Event (partial; fields applied only when present)
func (s *Service) UpdateEvent(ctx context.Context, id uint, req *UpdateEventRequest, userID uint, ip string) (*Event, error) {
	event, err := s.Repo.GetEventByID(ctx, id)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if event == nil {
		return nil, apperror.NotFound("event not found")
	}

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.StartTime != nil {
		t, err := time.Parse(time.RFC3339, *req.StartTime)
		if err != nil {
			return nil, apperror.Validation("invalid start_time format, use RFC 3339")
		}
		event.StartTime = t
	}
	if req.EndTime != nil {
		t, err := time.Parse(time.RFC3339, *req.EndTime)
		if err != nil {
			return nil, apperror.Validation("invalid end_time format, use RFC 3339")
		}
		event.EndTime = t
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.MaxAttendees != nil {
		if *req.MaxAttendees <= 0 {
			return nil, apperror.Validation("max_attendees must be a positive integer")
		}
		// Lowering capacity below the current attendee count is allowed;
		// the cap is enforced at registration time, not retroactively.
		event.MaxAttendees = *req.MaxAttendees
	}
	if req.Status != nil {
		status := Status(*req.Status)
		if !status.Valid() {
			return nil, apperror.Validation("invalid status, allowed values are: scheduled, ongoing, completed, canceled")
		}
		event.Status = status
	}

	if event.EndTime.Before(event.StartTime) {
		return nil, apperror.Validation("end_time must not be before start_time")
	}

	if err := s.Repo.UpdateEvent(ctx, event); err != nil {
		s.audit(ctx, userID, &event.ID, "EVENT_UPDATED", map[string]interface{}{
			"error": "database error",
		}, ip, "failure")
		return nil, apperror.Persistence(err)
	}

	s.audit(ctx, userID, &event.ID, "EVENT_UPDATED", map[string]interface{}{
		"name": event.Name, "status": string(event.Status),
	}, ip, "success")

	return event, nil
}

// ===========================
// List Events
//
// Side effect: listing applies the lifecycle rule to every event and
// persists any ongoing -> completed transition it produces. Callers always
// see effective statuses.
func (s *Service) ListEvents(ctx context.Context) ([]EventSummary, error) {
	events, err := s.Repo.ListEvents(ctx)
	if err != nil {
		return nil, apperror.Persistence(err)
	}

	now := s.Now()
	summaries := make([]EventSummary, 0, len(events))
	for _, e := range events {
		advanced, changed := AdvanceLifecycle(e, now)
		if changed {
			if err := s.Repo.UpdateStatus(ctx, advanced.ID, advanced.Status); err != nil {
				return nil, apperror.Persistence(err)
			}
		}
		summaries = append(summaries, EventSummary{
			ID:       advanced.ID,
			Name:     advanced.Name,
			Location: advanced.Location,
			Status:   advanced.Status,
		})
	}

	return summaries, nil
}

// ===========================
// Get Event
//
// Carries the same lifecycle side effect as ListEvents.
func (s *Service) GetEvent(ctx context.Context, id uint) (*Event, error) {
	event, err := s.Repo.GetEventByID(ctx, id)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if event == nil {
		return nil, apperror.NotFound("event not found")
	}

	advanced, changed := AdvanceLifecycle(*event, s.Now())
	if changed {
		if err := s.Repo.UpdateStatus(ctx, advanced.ID, advanced.Status); err != nil {
			return nil, apperror.Persistence(err)
		}
	}

	return &advanced, nil
}
