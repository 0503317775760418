package event

import "context"

// Store is the persistence boundary the event service reads and writes
// through. Lookup methods return (nil, nil) when the record does not exist;
// an error always means a store failure.
type Store interface {
	// CreateEvent persists a new event and assigns its identifier.
	CreateEvent(ctx context.Context, e *Event) error

	// GetEventByID loads an event by ID.
	GetEventByID(ctx context.Context, id uint) (*Event, error)

	// ListEvents returns all events ordered by start time.
	ListEvents(ctx context.Context) ([]Event, error)

	// UpdateEvent persists changes to an existing event.
	UpdateEvent(ctx context.Context, e *Event) error

	// UpdateStatus writes only the status column. The read paths use it to
	// persist lifecycle transitions they compute.
	UpdateStatus(ctx context.Context, id uint, status Status) error
}
