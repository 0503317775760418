package attendee

import (
	"context"

	"github.com/anirudhs017/event-management-backend/internal/event"
)

// Store is the persistence boundary the registry and the reconciliation
// engine operate through. Lookup methods return (nil, nil) when the record
// does not exist; an error always means a store failure.
type Store interface {
	// FindEvent loads an event by ID.
	FindEvent(ctx context.Context, id uint) (*event.Event, error)

	// FindEventForUpdate loads an event and, inside a transaction, takes a
	// row lock on it. Register and Reconcile use it to serialize the
	// count-check-then-insert sequence against concurrent writers.
	FindEventForUpdate(ctx context.Context, id uint) (*event.Event, error)

	// CountAttendees returns the number of attendees registered for an event.
	CountAttendees(ctx context.Context, eventID uint) (int64, error)

	// FindByEmail matches an attendee of the event by email,
	// case-insensitively.
	FindByEmail(ctx context.Context, eventID uint, email string) (*Attendee, error)

	// FindByEmailOrPhone matches an attendee of the event whose email equals
	// email (case-insensitively) or whose phone number equals phone exactly.
	// An empty phone never matches by phone.
	FindByEmailOrPhone(ctx context.Context, eventID uint, email, phone string) (*Attendee, error)

	// FindByID loads an attendee by ID scoped to the event.
	FindByID(ctx context.Context, eventID, attendeeID uint) (*Attendee, error)

	// List returns the event's attendees in insertion order, optionally
	// filtered by check-in status.
	List(ctx context.Context, eventID uint, checkedIn *bool) ([]Attendee, error)

	// Insert persists a new attendee and assigns its identifier.
	Insert(ctx context.Context, a *Attendee) error

	// Update persists changes to an existing attendee.
	Update(ctx context.Context, a *Attendee) error

	// InTransaction runs fn against a Store bound to one transaction.
	// fn returning an error rolls the transaction back.
	InTransaction(ctx context.Context, fn func(tx Store) error) error
}
