// Package sqlite provides the public API for the SQLite board backend.
// This package exposes the factory function for creating SQLite backends
// while keeping implementation details internal.
package sqlite

import (
	"github.com/mesh-intelligence/pinboard/internal/sqlite"
	"github.com/mesh-intelligence/pinboard/pkg/types"
)

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	board := sqlite.NewBackend()
//	err := board.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".pinboard-db",
//	})
//	defer board.Detach()
func NewBackend() types.Board {
	return sqlite.NewBackend()
}
