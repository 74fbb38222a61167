package types

import "time"

// Audit event operations. Every successful mutation records one event.
const (
	OpAdd    = "add"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Event is one audit-log entry describing a successful mutation.
// EventID is a UUID v7, so lexical order is chronological order.
// Name and Salary hold the values written by the mutation; for a delete
// they hold the values the record had when it was removed.
type Event struct {
	EventID    string    `json:"event_id"`
	Op         string    `json:"op"`
	EmployeeID int       `json:"employee_id"`
	Name       string    `json:"name"`
	Salary     int       `json:"salary"`
	OccurredAt time.Time `json:"occurred_at"`
}
