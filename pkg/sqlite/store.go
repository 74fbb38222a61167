// Package sqlite provides the public API for the SQLite staffbook store.
// This package exposes the factory function for creating SQLite stores
// while keeping implementation details internal.
package sqlite

import (
	"github.com/mesh-intelligence/staffbook/internal/sqlite"
	"github.com/mesh-intelligence/staffbook/pkg/types"
)

// NewStore creates a new SQLite store instance.
// The store is not open; call Open with a Config to initialize.
//
// Example:
//
//	store := sqlite.NewStore()
//	err := store.Open(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".staffbook-db",
//	})
//	defer store.Close()
func NewStore() types.Store {
	return sqlite.NewStore()
}
