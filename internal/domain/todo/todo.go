// Package todo defines the todo record entity.
package todo

// Todo is a persisted todo record. ID is assigned by storage on creation and
// immutable thereafter. Content is free-form text; the empty string is valid.
type Todo struct {
	ID        int64
	Content   string
	Completed bool
}
