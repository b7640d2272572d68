package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/pinboard/pkg/types"
)

// Compile-time interface check: Backend must implement Board.
var _ types.Board = (*Backend)(nil)

// DBFileName is the SQLite database file created inside DataDir.
const DBFileName = "board.db"

// busyRetries is the number of extra attempts for a transaction that fails
// because the database is busy or locked. Each attempt recomputes its reads
// from current state, so retrying with the same inputs is safe.
const busyRetries = 2

// Backend implements the Board interface using SQLite as the record store.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	tasks    *tasksTable

	// writeMu serializes mutating transactions. SQLite allows one writer at
	// a time anyway; taking the lock up front keeps concurrent in-process
	// writers from burning busy retries against each other.
	writeMu sync.Mutex
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Tasks returns the task table accessor.
// Returns ErrBoardDetached if the backend is not attached.
func (b *Backend) Tasks() (types.TaskTable, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrBoardDetached
	}
	return b.tasks, nil
}

// Attach initializes the backend with the given configuration.
// Creates DataDir if it does not exist, opens the database, and applies the
// schema. Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	dbPath := filepath.Join(dataDir, DBFileName)
	db, err := sql.Open("sqlite", "file:"+dbPath+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("applying schema: %w", err)
		}
	}

	b.db = db
	b.config = config
	b.tasks = &tasksTable{backend: b}
	b.attached = true

	return nil
}

// Detach releases all resources held by the backend. After Detach, all
// operations return ErrBoardDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil // idempotent
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.attached = false
	b.tasks = nil

	return nil
}

// handle returns the open database handle, or ErrBoardDetached.
func (b *Backend) handle() (*sql.DB, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrBoardDetached
	}
	return b.db, nil
}

// runTx executes fn inside a single transaction, committing on success and
// rolling back on error. A transaction that fails because the database is
// busy or locked is retried up to busyRetries extra times.
func (b *Backend) runTx(fn func(tx *sql.Tx) error) error {
	b.writeMu.Lock()
	defer b.writeMu.Unlock()

	var err error
	for attempt := 0; attempt <= busyRetries; attempt++ {
		err = b.tryTx(fn)
		if err == nil || !isBusy(err) {
			return err
		}
	}
	return err
}

// tryTx runs fn in one transaction attempt.
func (b *Backend) tryTx(fn func(tx *sql.Tx) error) error {
	db, err := b.handle()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// isBusy reports whether err is a SQLite busy/locked condition.
func isBusy(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "SQLITE_BUSY") ||
		strings.Contains(msg, "database table is locked")
}

// generateUUID generates a new UUID v7 for task IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
