// Package sqlite implements the SQLite storage backend for Pinboard.
// The tasks table is the single source of truth; every ordering operation
// runs inside one transaction so the per-category position sequence stays
// dense at all observable points.
package sqlite

// Schema DDL for the tasks table.
const createTasks = `CREATE TABLE IF NOT EXISTS tasks (
    task_id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT,
    category TEXT NOT NULL,
    position INTEGER NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

// Index for the "all tasks in category X ordered by position" access path.
// Deliberately non-unique: multi-row shift UPDATEs pass through states that
// a unique constraint would reject mid-statement.
const idxTasksCategoryPosition = `CREATE INDEX IF NOT EXISTS idx_tasks_category_position
    ON tasks(category, position);`

// schemaDDL lists all DDL statements in execution order.
var schemaDDL = []string{
	createTasks,
	idxTasksCategoryPosition,
}
