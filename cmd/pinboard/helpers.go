// Shared helpers for pinboard CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/pinboard/internal/board"
	"github.com/mesh-intelligence/pinboard/internal/sqlite"
	"github.com/mesh-intelligence/pinboard/pkg/types"
)

// attachBackend resolves the data directory, creates a SQLite backend, and
// attaches it. The caller must defer backend.Detach().
func attachBackend() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	backend := sqlite.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}

	return backend, nil
}

// attachService attaches a backend and wraps it in the board service.
func attachService() (*board.Service, *sqlite.Backend, error) {
	backend, err := attachBackend()
	if err != nil {
		return nil, nil, err
	}
	return board.NewService(backend), backend, nil
}

// isUserError reports whether err should exit with a user-error code rather
// than a system-error code.
func isUserError(err error) bool {
	return errors.Is(err, types.ErrNotFound) ||
		errors.Is(err, types.ErrInvalidID) ||
		errors.Is(err, types.ErrInvalidTitle) ||
		errors.Is(err, types.ErrInvalidCategory) ||
		errors.Is(err, types.ErrInvalidPosition) ||
		errors.Is(err, types.ErrEmptyUpdate)
}

// fail prints err to stderr and exits with the appropriate code.
func fail(context string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", context, err)
	if isUserError(err) {
		os.Exit(exitUserError)
	}
	os.Exit(exitSysError)
}

// printTask writes a task as JSON or a one-line summary.
func printTask(task *types.Task) error {
	if flagJSON {
		output, err := json.MarshalIndent(task, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal task: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}
	fmt.Printf("%s  [%s@%d]  %s\n", task.TaskID, task.Category, task.Position, task.Title)
	return nil
}

// printTasks writes a task list as JSON or one line per task.
func printTasks(tasks []*types.Task) error {
	if flagJSON {
		output, err := json.MarshalIndent(tasks, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal tasks: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}
	for _, task := range tasks {
		if err := printTask(task); err != nil {
			return err
		}
	}
	return nil
}

// parseCategoryFlag parses a --category flag value, mapping the empty string
// to an unset Category.
func parseCategoryFlag(value string) (types.Category, error) {
	if value == "" {
		return "", nil
	}
	category, err := types.ParseCategory(value)
	if err != nil {
		return "", fmt.Errorf("invalid category %q (valid: todo, in_progress, done)", value)
	}
	return category, nil
}
