package types

import "errors"

// Repository provides the CRUD operations for employee records. The store is
// the sole source of truth; callers re-read the listing after every mutation
// instead of maintaining a client-side cache.
type Repository interface {
	// Insert creates a new record. Returns ErrDuplicateID if a record with
	// the same ID already exists; no row is modified in that case.
	Insert(e Employee) error

	// Update overwrites Name and Salary of the record with e.ID. The ID
	// itself is never altered. Returns ErrNotFound if no such record
	// exists; no write occurs in that case.
	Update(e Employee) error

	// Delete removes the record with the given ID.
	// Returns ErrNotFound if no record matched.
	Delete(id int) error

	// Get retrieves the record with the given ID.
	// Returns ErrNotFound if no record exists with that ID.
	Get(id int) (Employee, error)

	// ListAll returns every record ordered by ID ascending.
	ListAll() ([]Employee, error)
}

// Store extends Repository with backend lifecycle and the audit history.
// Callers open the store once at startup and close it exactly once at
// shutdown.
type Store interface {
	Repository

	// Open connects the store to the backend described by config, creating
	// the data directory and schema if absent. Idempotent schema setup: a
	// schema that already exists is not an error. Returns ErrAlreadyOpen
	// if called while already open. If schema setup itself fails, the
	// returned error wraps ErrSchemaSetup and the store remains open so
	// callers may report the failure and continue.
	Open(config Config) error

	// Close releases backend resources. Idempotent: multiple calls
	// succeed. After Close, operations return ErrStoreClosed.
	Close() error

	// History returns all audit events in chronological order.
	History() ([]Event, error)
}

// Store lifecycle errors.
var (
	ErrStoreClosed = errors.New("store is closed")
	ErrAlreadyOpen = errors.New("store is already open")
	ErrSchemaSetup = errors.New("schema setup failed")
)

// Record operation errors.
var (
	ErrNotFound     = errors.New("employee not found")
	ErrDuplicateID  = errors.New("employee ID already exists")
	ErrInvalidInput = errors.New("invalid input")
)
