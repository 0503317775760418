package attendee

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anirudhs017/event-management-backend/internal/apperror"
	"github.com/anirudhs017/event-management-backend/internal/event"
)

func testEvent(capacity int) event.Event {
	start := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	return event.Event{
		ID:           1,
		Name:         "Go Conference",
		StartTime:    start,
		EndTime:      start.Add(8 * time.Hour),
		Location:     "Convention Center",
		MaxAttendees: capacity,
		Status:       event.StatusScheduled,
	}
}

func registerReq(first, email string) *RegisterRequest {
	return &RegisterRequest{
		FirstName: first,
		LastName:  "Tester",
		Email:     email,
	}
}

func TestRegister_Success(t *testing.T) {
	store := newFakeStore(testEvent(10))
	svc := NewService(store, nil)

	a, err := svc.Register(context.Background(), 1, registerReq("Ada", "  Ada@Example.COM "), "127.0.0.1")
	require.NoError(t, err)

	assert.NotZero(t, a.ID)
	assert.Equal(t, "ada@example.com", a.Email, "email is normalized before storage")
	assert.Equal(t, uint(1), a.EventID)
	assert.False(t, a.CheckInStatus, "registration never checks in")
}

func TestRegister_EventNotFound(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, nil)

	_, err := svc.Register(context.Background(), 42, registerReq("Ada", "ada@example.com"), "")
	assert.True(t, apperror.IsNotFound(err))
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	store := newFakeStore(testEvent(10))
	svc := NewService(store, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, 1, registerReq("Ada", "ada@example.com"), "")
	require.NoError(t, err)

	// Same address in different case is still a duplicate.
	_, err = svc.Register(ctx, 1, registerReq("Ada", "ADA@example.com"), "")
	assert.True(t, apperror.IsConflict(err))
	assert.EqualError(t, err, "attendee already registered")

	count, _ := store.CountAttendees(ctx, 1)
	assert.Equal(t, int64(1), count)
}

func TestRegister_CapacityEnforced(t *testing.T) {
	store := newFakeStore(testEvent(2))
	svc := NewService(store, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, 1, registerReq("Ada", "a@x.com"), "")
	require.NoError(t, err)
	_, err = svc.Register(ctx, 1, registerReq("Bob", "b@x.com"), "")
	require.NoError(t, err)

	_, err = svc.Register(ctx, 1, registerReq("Cam", "c@x.com"), "")
	assert.True(t, apperror.IsConflict(err))
	assert.EqualError(t, err, "max attendees reached")

	count, _ := store.CountAttendees(ctx, 1)
	assert.Equal(t, int64(2), count)
}

func TestCheckIn_Success(t *testing.T) {
	store := newFakeStore(testEvent(10))
	svc := NewService(store, nil)
	ctx := context.Background()

	a, err := svc.Register(ctx, 1, registerReq("Ada", "ada@example.com"), "")
	require.NoError(t, err)

	checked, err := svc.CheckIn(ctx, 1, a.ID, "")
	require.NoError(t, err)
	assert.True(t, checked.CheckInStatus)

	stored, _ := store.FindByID(ctx, 1, a.ID)
	assert.True(t, stored.CheckInStatus)
}

func TestCheckIn_AlreadyCheckedInConflicts(t *testing.T) {
	store := newFakeStore(testEvent(10))
	svc := NewService(store, nil)
	ctx := context.Background()

	a, err := svc.Register(ctx, 1, registerReq("Ada", "ada@example.com"), "")
	require.NoError(t, err)
	_, err = svc.CheckIn(ctx, 1, a.ID, "")
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx, 1, a.ID, "")
	assert.True(t, apperror.IsConflict(err))

	stored, _ := store.FindByID(ctx, 1, a.ID)
	assert.True(t, stored.CheckInStatus, "state unchanged by the rejected call")
}

func TestCheckIn_NotFound(t *testing.T) {
	store := newFakeStore(testEvent(10))
	svc := NewService(store, nil)
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, 99, 1, "")
	assert.True(t, apperror.IsNotFound(err), "unknown event")

	_, err = svc.CheckIn(ctx, 1, 99, "")
	assert.True(t, apperror.IsNotFound(err), "unknown attendee")
}

func TestList_FilterByCheckInStatus(t *testing.T) {
	store := newFakeStore(testEvent(10))
	svc := NewService(store, nil)
	ctx := context.Background()

	a, err := svc.Register(ctx, 1, registerReq("Ada", "a@x.com"), "")
	require.NoError(t, err)
	_, err = svc.Register(ctx, 1, registerReq("Bob", "b@x.com"), "")
	require.NoError(t, err)
	_, err = svc.CheckIn(ctx, 1, a.ID, "")
	require.NoError(t, err)

	all, err := svc.List(ctx, 1, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	checkedIn := true
	in, err := svc.List(ctx, 1, &checkedIn)
	require.NoError(t, err)
	require.Len(t, in, 1)
	assert.Equal(t, "a@x.com", in[0].Email)

	checkedIn = false
	out, err := svc.List(ctx, 1, &checkedIn)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "b@x.com", out[0].Email)
}

func TestList_EventNotFound(t *testing.T) {
	svc := NewService(newFakeStore(), nil)

	_, err := svc.List(context.Background(), 7, nil)
	assert.True(t, apperror.IsNotFound(err))
}
