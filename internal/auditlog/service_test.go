package auditlog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuditRepo struct {
	entries []AuditLog
	total   int64
}

func (r *fakeAuditRepo) Create(ctx context.Context, entry *AuditLog) error {
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeAuditRepo) GetByFilter(ctx context.Context, filter AuditLogFilter) ([]AuditLog, int64, error) {
	return r.entries, r.total, nil
}

func TestLogActionStoresDetails(t *testing.T) {
	repo := &fakeAuditRepo{}
	svc := NewService(repo)

	eventID := uint(3)
	err := svc.LogAction(context.Background(), nil, &eventID, "ATTENDEE_REGISTERED",
		map[string]interface{}{"email": "ada@example.com"}, "10.0.0.1", "success")
	require.NoError(t, err)
	require.Len(t, repo.entries, 1)

	entry := repo.entries[0]
	assert.Equal(t, "ATTENDEE_REGISTERED", entry.Action)
	assert.Equal(t, "10.0.0.1", entry.IPAddress)
	assert.Contains(t, string(entry.Details), "ada@example.com")
}

func TestGetAuditLogsPagination(t *testing.T) {
	repo := &fakeAuditRepo{total: 45}
	svc := NewService(repo)

	result, err := svc.GetAuditLogs(context.Background(), AuditLogFilter{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(45), result.Total)
	assert.Equal(t, 3, result.TotalPages)
}

func TestGetAuditLogsZeroLimit(t *testing.T) {
	repo := &fakeAuditRepo{total: 45}
	svc := NewService(repo)

	// A non-numeric limit query leaves Limit at zero; page math must not
	// divide by it.
	result, err := svc.GetAuditLogs(context.Background(), AuditLogFilter{Page: 1, Limit: 0})
	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalPages)
}
