package event

import (
	"time"
)

// AdvanceLifecycle applies the time-based completion rule to e and returns
// the event with its effective status, plus whether the status changed and
// needs to be persisted.
//
// The only automatic transition is ongoing -> completed, taken once the
// event's end time has passed. scheduled events wait for an explicit
// administrative move to ongoing, and completed/canceled events are terminal
// regardless of their time window.
func AdvanceLifecycle(e Event, now time.Time) (Event, bool) {
	if e.Status == StatusOngoing && e.EndTime.Before(now) {
		e.Status = StatusCompleted
		return e, true
	}
	return e, false
}
