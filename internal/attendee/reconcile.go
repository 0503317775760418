package attendee

import (
	"context"
	"strings"

	"github.com/anirudhs017/event-management-backend/internal/apperror"
	"github.com/anirudhs017/event-management-backend/utils"
)

// MatchStrategy decides which existing attendee, if any, a roster row refers
// to. It receives the row already normalized.
type MatchStrategy func(ctx context.Context, store Store, eventID uint, row Row) (*Attendee, error)

// MatchByEmailOrPhone matches on email (case-insensitive) OR phone number
// (exact, non-empty). Either field alone is enough, which favors check-in
// convenience over strict identity: a reused phone number can merge two
// different people onto one record.
func MatchByEmailOrPhone(ctx context.Context, store Store, eventID uint, row Row) (*Attendee, error) {
	return store.FindByEmailOrPhone(ctx, eventID, row.Email, row.PhoneNumber)
}

func normalizeRow(row Row) Row {
	return Row{
		FirstName:   strings.TrimSpace(row.FirstName),
		LastName:    strings.TrimSpace(row.LastName),
		Email:       normalizeEmail(row.Email),
		PhoneNumber: strings.TrimSpace(row.PhoneNumber),
	}
}

// ===========================
// Reconcile
//
// Reconcile processes one bulk check-in batch against the event's attendee
// records. Each row is handled independently, in input order: a matched
// attendee gets its check-in flag set (idempotently) and is reported as
// "checked_in" with the stored fields; an unmatched row becomes a new
// attendee created already checked in, reported as "added_and_checked_in"
// with the row's fields. Rows within one batch are not deduplicated against
// each other, but a row can match an attendee inserted by an earlier row of
// the same batch, since matching always reads current store state.
//
// Capacity is deliberately not enforced here: walk-ins at the door are
// admitted even past max_attendees, as an intentional exception to the
// registration-time cap.
//
// The batch commits as a unit. Any store failure rolls back every row and
// surfaces as a persistence error; there is no partial success.
func (s *Service) Reconcile(ctx context.Context, eventID uint, rows []Row, ip string) (*BatchResult, error) {
	match := s.Match
	if match == nil {
		match = MatchByEmailOrPhone
	}

	var processed []ProcessedRow
	err := s.Store.InTransaction(ctx, func(tx Store) error {
		processed = processed[:0]

		// The event row lock serializes concurrent batches and single
		// registrations against this event.
		ev, err := tx.FindEventForUpdate(ctx, eventID)
		if err != nil {
			return apperror.Persistence(err)
		}
		if ev == nil {
			return apperror.NotFound("event not found")
		}

		for _, raw := range rows {
			row := normalizeRow(raw)

			existing, err := match(ctx, tx, eventID, row)
			if err != nil {
				return apperror.Persistence(err)
			}

			if existing != nil {
				if !existing.CheckInStatus {
					existing.CheckInStatus = true
					if err := tx.Update(ctx, existing); err != nil {
						return apperror.Persistence(err)
					}
				}
				// Matched rows never overwrite stored name or contact
				// fields; only the flag changes.
				processed = append(processed, ProcessedRow{
					FirstName:   existing.FirstName,
					LastName:    existing.LastName,
					Email:       existing.Email,
					PhoneNumber: existing.PhoneNumber,
					Outcome:     OutcomeCheckedIn,
				})
				continue
			}

			a := &Attendee{
				FirstName:     row.FirstName,
				LastName:      row.LastName,
				Email:         row.Email,
				PhoneNumber:   row.PhoneNumber,
				EventID:       eventID,
				CheckInStatus: true,
			}
			if err := tx.Insert(ctx, a); err != nil {
				return apperror.Persistence(err)
			}
			processed = append(processed, ProcessedRow{
				FirstName:   row.FirstName,
				LastName:    row.LastName,
				Email:       row.Email,
				PhoneNumber: row.PhoneNumber,
				Outcome:     OutcomeAddedAndCheckedIn,
			})
		}

		return nil
	})
	if err != nil {
		s.audit(ctx, &eventID, "BULK_CHECKIN", map[string]interface{}{
			"rows": len(rows), "error": err.Error(),
		}, ip, "failure")
		return nil, err
	}

	checkedIn, added := 0, 0
	for _, p := range processed {
		if p.Outcome == OutcomeCheckedIn {
			checkedIn++
		} else {
			added++
		}
	}

	s.audit(ctx, &eventID, "BULK_CHECKIN", map[string]interface{}{
		"rows": len(rows), "checked_in": checkedIn, "added": added,
	}, ip, "success")
	utils.PublishActivity("attendee.bulk_checkin", map[string]interface{}{
		"event_id":   eventID,
		"rows":       len(rows),
		"checked_in": checkedIn,
		"added":      added,
	})

	return &BatchResult{Processed: processed}, nil
}
