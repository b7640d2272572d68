// Package integration provides end-to-end tests over the SQLite backend and
// the board service.
package integration

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/pinboard/internal/board"
	"github.com/mesh-intelligence/pinboard/internal/sqlite"
	"github.com/mesh-intelligence/pinboard/pkg/types"
)

// newAttachedBackend creates a SQLite backend attached to a temp data dir.
func newAttachedBackend(t *testing.T) *sqlite.Backend {
	t.Helper()

	backend := sqlite.NewBackend()
	err := backend.Attach(types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { backend.Detach() })
	return backend
}

// newBoardService creates a service over a fresh attached backend.
func newBoardService(t *testing.T) (*board.Service, *sqlite.Backend) {
	t.Helper()

	backend := newAttachedBackend(t)
	return board.NewService(backend), backend
}

// columnTitles returns the titles in one column, in position order.
func columnTitles(t *testing.T, svc *board.Service, category types.Category) []string {
	t.Helper()

	tasks, err := svc.ListTasks(category)
	require.NoError(t, err)

	titles := make([]string, len(tasks))
	for i, task := range tasks {
		require.Equal(t, i, task.Position, "column %s must be dense", category)
		titles[i] = task.Title
	}
	return titles
}
