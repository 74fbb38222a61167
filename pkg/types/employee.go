package types

// Employee represents one employee record, keyed by integer ID.
// The ID is immutable once created; changing an ID requires delete and
// re-add. Name must be non-empty. Salary is an unconstrained integer.
type Employee struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Salary int    `json:"salary"`
}
