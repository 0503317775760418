package attendee

import (
	"context"
	"log"
	"strings"

	"github.com/anirudhs017/event-management-backend/internal/apperror"
	"github.com/anirudhs017/event-management-backend/internal/auditlog"
	"github.com/anirudhs017/event-management-backend/internal/event"
	"github.com/anirudhs017/event-management-backend/utils"
)

// Service owns attendee registration, check-in and bulk reconciliation for
// events.
type Service struct {
	Store    Store
	AuditSvc auditlog.Service
	Match    MatchStrategy
}

func NewService(store Store, auditSvc auditlog.Service) *Service {
	return &Service{
		Store:    store,
		AuditSvc: auditSvc,
		Match:    MatchByEmailOrPhone,
	}
}

func (s *Service) audit(ctx context.Context, eventID *uint, action string, details map[string]interface{}, ip, status string) {
	if s.AuditSvc == nil {
		return
	}
	if err := s.AuditSvc.LogAction(ctx, nil, eventID, action, details, ip, status); err != nil {
		log.Printf("audit log write failed: %v", err)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ===========================
// Register Attendee
//
// Preconditions run in order: event exists, email not already registered for
// this event, capacity not reached. The whole check-then-insert sequence
// holds a row lock on the event so concurrent registrations cannot both pass
// the capacity check.
func (s *Service) Register(ctx context.Context, eventID uint, req *RegisterRequest, ip string) (*Attendee, error) {
	email := normalizeEmail(req.Email)

	var created *Attendee
	err := s.Store.InTransaction(ctx, func(tx Store) error {
		ev, err := tx.FindEventForUpdate(ctx, eventID)
		if err != nil {
			return apperror.Persistence(err)
		}
		if ev == nil {
			return apperror.NotFound("event not found")
		}

		existing, err := tx.FindByEmail(ctx, eventID, email)
		if err != nil {
			return apperror.Persistence(err)
		}
		if existing != nil {
			return apperror.Conflict("attendee already registered")
		}

		count, err := tx.CountAttendees(ctx, eventID)
		if err != nil {
			return apperror.Persistence(err)
		}
		if count >= int64(ev.MaxAttendees) {
			return apperror.Conflict("max attendees reached")
		}

		a := &Attendee{
			FirstName:     strings.TrimSpace(req.FirstName),
			LastName:      strings.TrimSpace(req.LastName),
			Email:         email,
			PhoneNumber:   strings.TrimSpace(req.PhoneNumber),
			EventID:       eventID,
			CheckInStatus: false,
		}
		if err := tx.Insert(ctx, a); err != nil {
			return apperror.Persistence(err)
		}

		created = a
		return nil
	})
	if err != nil {
		s.audit(ctx, &eventID, "ATTENDEE_REGISTERED", map[string]interface{}{
			"email": email, "error": err.Error(),
		}, ip, "failure")
		return nil, err
	}

	s.audit(ctx, &eventID, "ATTENDEE_REGISTERED", map[string]interface{}{
		"attendee_id": created.ID, "email": created.Email,
	}, ip, "success")
	utils.PublishActivity("attendee.registered", map[string]interface{}{
		"event_id":    eventID,
		"attendee_id": created.ID,
		"email":       created.Email,
	})

	return created, nil
}

// ===========================
// Check In Attendee
//
// A second check-in for the same attendee is rejected with a conflict; the
// stored state is left untouched.
func (s *Service) CheckIn(ctx context.Context, eventID, attendeeID uint, ip string) (*Attendee, error) {
	ev, err := s.Store.FindEvent(ctx, eventID)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if ev == nil {
		return nil, apperror.NotFound("event not found")
	}

	a, err := s.Store.FindByID(ctx, eventID, attendeeID)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if a == nil {
		return nil, apperror.NotFound("attendee not found")
	}

	if a.CheckInStatus {
		return nil, apperror.Conflict("attendee is already checked in")
	}

	a.CheckInStatus = true
	if err := s.Store.Update(ctx, a); err != nil {
		return nil, apperror.Persistence(err)
	}

	s.audit(ctx, &eventID, "ATTENDEE_CHECKED_IN", map[string]interface{}{
		"attendee_id": a.ID, "email": a.Email,
	}, ip, "success")
	utils.PublishActivity("attendee.checked_in", map[string]interface{}{
		"event_id":    eventID,
		"attendee_id": a.ID,
		"email":       a.Email,
	})

	return a, nil
}

// Roster loads the event together with its full attendee list, for exports.
func (s *Service) Roster(ctx context.Context, eventID uint) (*event.Event, []Attendee, error) {
	ev, err := s.Store.FindEvent(ctx, eventID)
	if err != nil {
		return nil, nil, apperror.Persistence(err)
	}
	if ev == nil {
		return nil, nil, apperror.NotFound("event not found")
	}

	attendees, err := s.Store.List(ctx, eventID, nil)
	if err != nil {
		return nil, nil, apperror.Persistence(err)
	}
	return ev, attendees, nil
}

// ===========================
// List Attendees
//
// checkedIn filters by check-in status when non-nil. Results come back in
// insertion order, which is stable within one store snapshot.
func (s *Service) List(ctx context.Context, eventID uint, checkedIn *bool) ([]Attendee, error) {
	ev, err := s.Store.FindEvent(ctx, eventID)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if ev == nil {
		return nil, apperror.NotFound("event not found")
	}

	attendees, err := s.Store.List(ctx, eventID, checkedIn)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	return attendees, nil
}
