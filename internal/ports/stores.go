package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-api/internal/domain/todo"
)

// TodoStore defines the storage port for todo record persistence.
// Implemented by the storage adapter; called by the application layer.
// Every mutation runs inside its own transaction, committed before the
// method returns; reads run as standalone queries. No session outlives a
// single call.
type TodoStore interface {
	// List returns todos ordered by ID ascending with the given window.
	// The values pass through to the storage engine untouched; callers
	// are responsible for defaulting.
	List(ctx context.Context, offset, limit int64) ([]todo.Todo, error)

	// Get returns a single todo by primary key.
	// Returns domain.ErrNotFound if no row matches.
	Get(ctx context.Context, id int64) (*todo.Todo, error)

	// Create inserts a new row and returns the entity with the
	// storage-assigned ID.
	Create(ctx context.Context, t *todo.Todo) (*todo.Todo, error)

	// Update overwrites content and completed for the given ID and returns
	// the row as committed.
	// Returns domain.ErrNotFound if no row matches.
	Update(ctx context.Context, id int64, t *todo.Todo) (*todo.Todo, error)

	// Delete removes the row with the given ID.
	// Returns domain.ErrNotFound if no row matches.
	Delete(ctx context.Context, id int64) error
}
