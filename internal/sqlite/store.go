package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/staffbook/pkg/types"
)

// dbFileName is the database file created inside the data directory.
const dbFileName = "staffbook.db"

// Compile-time interface check: Store must implement types.Store.
var _ types.Store = (*Store)(nil)

// Store implements the Store interface on an embedded SQLite database file.
// All operations are safe for concurrent use, though the application drives
// the store from a single interactive loop.
type Store struct {
	mu     sync.RWMutex
	open   bool
	config types.Config
	db     *sql.DB
}

// NewStore creates a new SQLite store instance.
// The store is not open; call Open with a Config to initialize.
func NewStore() *Store {
	return &Store{}
}

// Open connects to the database file under config.DataDir, creating the
// directory if needed, and ensures the schema. Returns ErrAlreadyOpen if
// called while already open. A schema-setup failure leaves the store open
// and returns an error wrapping ErrSchemaSetup, so callers can report it
// and keep running against whatever state the file is in.
func (s *Store) Open(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		return types.ErrAlreadyOpen
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	s.db = db
	s.config = config
	s.open = true

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("%w: %v", types.ErrSchemaSetup, err)
		}
	}

	return nil
}

// Close releases the database handle. Idempotent: closing a closed store
// succeeds. After Close, all operations return ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return fmt.Errorf("close database: %w", err)
		}
		s.db = nil
	}

	s.open = false
	return nil
}

// handle returns the database handle, or ErrStoreClosed when the store is
// not open. Callers hold no lock; the handle itself is safe for concurrent
// use.
func (s *Store) handle() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, types.ErrStoreClosed
	}
	return s.db, nil
}
