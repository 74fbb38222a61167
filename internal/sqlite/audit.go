package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/staffbook/pkg/types"
)

// recordEvent appends one audit-log row inside the caller's transaction so
// the event commits or rolls back together with the mutation it describes.
func recordEvent(tx *sql.Tx, op string, e types.Employee) error {
	_, err := tx.Exec(
		"INSERT INTO audit_log (event_id, op, employee_id, name, salary, occurred_at) VALUES (?, ?, ?, ?, ?, ?)",
		generateUUID(), op, e.ID, e.Name, e.Salary, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording %s event for employee %d: %w", op, e.ID, err)
	}
	return nil
}

// History returns all audit events in chronological order. Timestamps are
// stored as UTC RFC 3339 text, so they sort chronologically; event_id
// breaks ties between events recorded in the same instant.
func (s *Store) History() ([]types.Event, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		"SELECT event_id, op, employee_id, name, salary, occurred_at FROM audit_log ORDER BY occurred_at, event_id",
	)
	if err != nil {
		return nil, fmt.Errorf("listing audit events: %w", err)
	}
	defer rows.Close()

	var events []types.Event
	for rows.Next() {
		var (
			ev         types.Event
			occurredAt string
		)
		if err := rows.Scan(&ev.EventID, &ev.Op, &ev.EmployeeID, &ev.Name, &ev.Salary, &occurredAt); err != nil {
			return nil, fmt.Errorf("scanning audit row: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, occurredAt)
		if err != nil {
			return nil, fmt.Errorf("parsing audit timestamp %q: %w", occurredAt, err)
		}
		ev.OccurredAt = ts
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing audit events: %w", err)
	}
	return events, nil
}

// generateUUID generates a new UUID v7 for event IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
