package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func makeEvent(status Status, endOffset time.Duration, now time.Time) Event {
	return Event{
		ID:           1,
		Name:         "Tech Meetup",
		StartTime:    now.Add(endOffset - 2*time.Hour),
		EndTime:      now.Add(endOffset),
		Location:     "Hall A",
		MaxAttendees: 100,
		Status:       status,
	}
}

func TestAdvanceLifecycle_OngoingPastEndCompletes(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	e := makeEvent(StatusOngoing, -time.Hour, now)

	advanced, changed := AdvanceLifecycle(e, now)

	assert.True(t, changed)
	assert.Equal(t, StatusCompleted, advanced.Status)
}

func TestAdvanceLifecycle_OngoingBeforeEndUnchanged(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	e := makeEvent(StatusOngoing, time.Hour, now)

	advanced, changed := AdvanceLifecycle(e, now)

	assert.False(t, changed)
	assert.Equal(t, StatusOngoing, advanced.Status)
}

func TestAdvanceLifecycle_EndExactlyNowUnchanged(t *testing.T) {
	// The rule is end_time < now, so the boundary instant does not complete.
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	e := makeEvent(StatusOngoing, 0, now)

	_, changed := AdvanceLifecycle(e, now)

	assert.False(t, changed)
}

func TestAdvanceLifecycle_ScheduledNeverAutoStarts(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	e := makeEvent(StatusScheduled, -time.Hour, now)

	advanced, changed := AdvanceLifecycle(e, now)

	assert.False(t, changed)
	assert.Equal(t, StatusScheduled, advanced.Status)
}

func TestAdvanceLifecycle_TerminalStatusesStay(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	for _, status := range []Status{StatusCompleted, StatusCanceled} {
		e := makeEvent(status, -48*time.Hour, now)
		advanced, changed := AdvanceLifecycle(e, now)

		assert.False(t, changed, "status %s must be terminal", status)
		assert.Equal(t, status, advanced.Status)
	}
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusScheduled.Valid())
	assert.True(t, StatusCanceled.Valid())
	assert.False(t, Status("archived").Valid())
	assert.False(t, Status("").Valid())
}
