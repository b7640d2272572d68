package types

// Category is the board column a task belongs to. The set of categories is
// closed; every task is in exactly one, and tasks within a category are
// ordered by their Position.
type Category string

// Board categories in fixed board order.
const (
	CategoryTodo       Category = "todo"
	CategoryInProgress Category = "in_progress"
	CategoryDone       Category = "done"
)

// categoryOrder lists the categories in the order they appear on the board.
var categoryOrder = []Category{
	CategoryTodo,
	CategoryInProgress,
	CategoryDone,
}

// Categories returns all categories in fixed board order. The returned slice
// is a copy; callers may modify it.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Valid reports whether c is one of the recognized categories.
func (c Category) Valid() bool {
	return c.Ordinal() >= 0
}

// Ordinal returns the board-order index of the category (0 for todo),
// or -1 for an unrecognized value.
func (c Category) Ordinal() int {
	for i, v := range categoryOrder {
		if c == v {
			return i
		}
	}
	return -1
}

// String returns the stored wire value of the category.
func (c Category) String() string {
	return string(c)
}

// ParseCategory converts a raw string into a Category.
// Returns ErrInvalidCategory if the value is not recognized.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}
