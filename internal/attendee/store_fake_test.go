package attendee

import (
	"context"
	"errors"
	"strings"

	"github.com/anirudhs017/event-management-backend/internal/event"
)

// fakeStore is an in-memory Store used by the registry and reconciliation
// tests. InTransaction snapshots state and restores it when fn fails, which
// mirrors the rollback behavior the gorm repository gets for free.
type fakeStore struct {
	events    map[uint]event.Event
	attendees []Attendee
	nextID    uint

	insertCalls  int
	failInsertAt int // 1-based insert call that fails; 0 disables
	failUpdate   bool
}

var errStoreDown = errors.New("store unavailable")

func newFakeStore(events ...event.Event) *fakeStore {
	f := &fakeStore{
		events: make(map[uint]event.Event),
		nextID: 1,
	}
	for _, e := range events {
		f.events[e.ID] = e
	}
	return f
}

func (f *fakeStore) FindEvent(_ context.Context, id uint) (*event.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (f *fakeStore) FindEventForUpdate(ctx context.Context, id uint) (*event.Event, error) {
	return f.FindEvent(ctx, id)
}

func (f *fakeStore) CountAttendees(_ context.Context, eventID uint) (int64, error) {
	var count int64
	for _, a := range f.attendees {
		if a.EventID == eventID {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) FindByEmail(_ context.Context, eventID uint, email string) (*Attendee, error) {
	for i := range f.attendees {
		a := f.attendees[i]
		if a.EventID == eventID && strings.EqualFold(a.Email, email) {
			return &a, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) FindByEmailOrPhone(_ context.Context, eventID uint, email, phone string) (*Attendee, error) {
	for i := range f.attendees {
		a := f.attendees[i]
		if a.EventID != eventID {
			continue
		}
		if strings.EqualFold(a.Email, email) {
			return &a, nil
		}
		if phone != "" && a.PhoneNumber == phone {
			return &a, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) FindByID(_ context.Context, eventID, attendeeID uint) (*Attendee, error) {
	for i := range f.attendees {
		a := f.attendees[i]
		if a.EventID == eventID && a.ID == attendeeID {
			return &a, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) List(_ context.Context, eventID uint, checkedIn *bool) ([]Attendee, error) {
	var out []Attendee
	for _, a := range f.attendees {
		if a.EventID != eventID {
			continue
		}
		if checkedIn != nil && a.CheckInStatus != *checkedIn {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeStore) Insert(_ context.Context, a *Attendee) error {
	f.insertCalls++
	if f.failInsertAt > 0 && f.insertCalls >= f.failInsertAt {
		return errStoreDown
	}
	a.ID = f.nextID
	f.nextID++
	f.attendees = append(f.attendees, *a)
	return nil
}

func (f *fakeStore) Update(_ context.Context, a *Attendee) error {
	if f.failUpdate {
		return errStoreDown
	}
	for i := range f.attendees {
		if f.attendees[i].ID == a.ID {
			f.attendees[i] = *a
			return nil
		}
	}
	return errors.New("update of unknown attendee")
}

func (f *fakeStore) InTransaction(_ context.Context, fn func(tx Store) error) error {
	snapshot := make([]Attendee, len(f.attendees))
	copy(snapshot, f.attendees)
	nextID := f.nextID

	if err := fn(f); err != nil {
		f.attendees = snapshot
		f.nextID = nextID
		return err
	}
	return nil
}
