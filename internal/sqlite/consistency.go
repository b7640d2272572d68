// Consistency checker for the position engine. Used by the randomized tests
// and the `pinboard check` command.
package sqlite

import (
	"fmt"

	"github.com/mesh-intelligence/pinboard/pkg/types"
)

// CheckConsistency verifies the density invariant for every category: the
// positions held by the n tasks of a category are exactly 0..n-1. It also
// rejects rows whose category is not in the closed set. Returns nil when the
// board is consistent, or an error describing the first violation found.
func (b *Backend) CheckConsistency() error {
	db, err := b.handle()
	if err != nil {
		return err
	}

	rows, err := db.Query("SELECT DISTINCT category FROM tasks")
	if err != nil {
		return fmt.Errorf("reading categories: %w", err)
	}
	defer rows.Close()

	var stored []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return fmt.Errorf("scanning category: %w", err)
		}
		stored = append(stored, c)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating categories: %w", err)
	}

	for _, c := range stored {
		if !types.Category(c).Valid() {
			return fmt.Errorf("category %q: not in the category set", c)
		}
	}

	for _, c := range types.Categories() {
		if err := b.checkCategory(c); err != nil {
			return err
		}
	}
	return nil
}

// checkCategory verifies positions in one category form 0..n-1.
func (b *Backend) checkCategory(category types.Category) error {
	db, err := b.handle()
	if err != nil {
		return err
	}

	rows, err := db.Query(
		"SELECT position FROM tasks WHERE category = ? ORDER BY position ASC",
		category.String(),
	)
	if err != nil {
		return fmt.Errorf("reading positions for %s: %w", category, err)
	}
	defer rows.Close()

	want := 0
	for rows.Next() {
		var got int
		if err := rows.Scan(&got); err != nil {
			return fmt.Errorf("scanning position: %w", err)
		}
		if got != want {
			return fmt.Errorf("category %s: position %d where %d expected (gap or duplicate)", category, got, want)
		}
		want++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating positions for %s: %w", category, err)
	}
	return nil
}
