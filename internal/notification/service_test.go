package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/gorm"

	"github.com/anirudhs017/event-management-backend/internal/apperror"
)

type fakeNotifRepo struct {
	stored []InAppNotification
}

func (r *fakeNotifRepo) Create(ctx context.Context, n *InAppNotification) error {
	n.ID = uint(len(r.stored) + 1)
	r.stored = append(r.stored, *n)
	return nil
}

func (r *fakeNotifRepo) List(ctx context.Context, limit int) ([]InAppNotification, error) {
	return r.stored, nil
}

func (r *fakeNotifRepo) MarkAsRead(ctx context.Context, id uint) error {
	for i := range r.stored {
		if r.stored[i].ID == id {
			r.stored[i].IsRead = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func TestCreateFromActivityRegistration(t *testing.T) {
	repo := &fakeNotifRepo{}
	svc := NewService(repo)

	err := svc.CreateFromActivity(context.Background(), map[string]interface{}{
		"type":     "attendee.registered",
		"event_id": float64(7),
		"email":    "ada@example.com",
	})
	require.NoError(t, err)
	require.Len(t, repo.stored, 1)

	n := repo.stored[0]
	assert.Equal(t, "registration", n.Category)
	require.NotNil(t, n.EventID)
	assert.Equal(t, uint(7), *n.EventID)
	assert.Contains(t, n.Message, "ada@example.com")
	assert.False(t, n.IsRead)
}

func TestCreateFromActivityBulkCheckin(t *testing.T) {
	repo := &fakeNotifRepo{}
	svc := NewService(repo)

	err := svc.CreateFromActivity(context.Background(), map[string]interface{}{
		"type":     "attendee.bulk_checkin",
		"event_id": float64(3),
		"rows":     float64(42),
	})
	require.NoError(t, err)
	require.Len(t, repo.stored, 1)

	n := repo.stored[0]
	assert.Equal(t, "bulk_checkin", n.Category)
	assert.Contains(t, n.Message, "42")
}

func TestMarkAsReadMissing(t *testing.T) {
	svc := NewService(&fakeNotifRepo{})

	err := svc.MarkAsRead(context.Background(), 99)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.HTTPStatus(err))
}

func TestCreateFromActivityUnknownType(t *testing.T) {
	repo := &fakeNotifRepo{}
	svc := NewService(repo)

	err := svc.CreateFromActivity(context.Background(), map[string]interface{}{
		"type": "something.else",
	})
	require.NoError(t, err)
	require.Len(t, repo.stored, 1)
	assert.Equal(t, "system", repo.stored[0].Category)
}
