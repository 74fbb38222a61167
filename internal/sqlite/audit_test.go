package sqlite

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/staffbook/pkg/types"
)

func TestHistoryRecordsMutations(t *testing.T) {
	s := setupStore(t)

	require.NoError(t, s.Insert(types.Employee{ID: 1, Name: "Alice", Salary: 50000}))
	require.NoError(t, s.Update(types.Employee{ID: 1, Name: "Alice B", Salary: 55000}))
	require.NoError(t, s.Delete(1))

	events, err := s.History()
	require.NoError(t, err)
	require.Len(t, events, 3)

	assert.Equal(t, types.OpAdd, events[0].Op)
	assert.Equal(t, types.OpUpdate, events[1].Op)
	assert.Equal(t, types.OpDelete, events[2].Op)

	for _, ev := range events {
		assert.Equal(t, 1, ev.EmployeeID)
		assert.False(t, ev.OccurredAt.IsZero())
		_, err := uuid.Parse(ev.EventID)
		assert.NoError(t, err, "event ID %q is not a UUID", ev.EventID)
	}

	// The delete event captures the values the record had when removed.
	assert.Equal(t, "Alice B", events[2].Name)
	assert.Equal(t, 55000, events[2].Salary)
}

func TestHistoryFailedMutationsLeaveNoEvents(t *testing.T) {
	s := setupStore(t)

	require.NoError(t, s.Insert(types.Employee{ID: 1, Name: "Alice", Salary: 50000}))

	require.ErrorIs(t, s.Insert(types.Employee{ID: 1, Name: "Dup", Salary: 1}), types.ErrDuplicateID)
	require.ErrorIs(t, s.Update(types.Employee{ID: 2, Name: "Ghost", Salary: 1}), types.ErrNotFound)
	require.ErrorIs(t, s.Delete(2), types.ErrNotFound)

	events, err := s.History()
	require.NoError(t, err)
	assert.Len(t, events, 1, "only the successful insert should be recorded")
}

func TestHistoryOrdersByTimestampNotEventID(t *testing.T) {
	s := setupStore(t)

	// Event IDs whose lexical order is the reverse of the timestamps, as
	// when ID generation falls back from UUID v7 to random v4.
	rows := []struct {
		eventID    string
		occurredAt string
	}{
		{"ffffffff-0000-4000-8000-000000000000", "2026-08-30T10:00:00Z"},
		{"88888888-0000-4000-8000-000000000000", "2026-08-30T11:00:00Z"},
		{"00000000-0000-4000-8000-000000000000", "2026-08-30T12:00:00Z"},
	}
	for i, r := range rows {
		_, err := s.db.Exec(
			"INSERT INTO audit_log (event_id, op, employee_id, name, salary, occurred_at) VALUES (?, ?, ?, ?, ?, ?)",
			r.eventID, types.OpAdd, i+1, "Alice", 50000, r.occurredAt,
		)
		require.NoError(t, err)
	}

	events, err := s.History()
	require.NoError(t, err)
	require.Len(t, events, 3)
	for i := 1; i < len(events); i++ {
		assert.True(t, events[i-1].OccurredAt.Before(events[i].OccurredAt),
			"event %d (%s) should precede event %d (%s)",
			i-1, events[i-1].OccurredAt, i, events[i].OccurredAt)
	}
}

func TestHistoryEmpty(t *testing.T) {
	s := setupStore(t)

	events, err := s.History()
	require.NoError(t, err)
	assert.Empty(t, events)
}
