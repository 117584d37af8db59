package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-api/internal/domain/todo"
)

// TodoService defines the service port for todo record operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type TodoService interface {
	// ListTodos returns todos ordered by ID ascending, skipping offset
	// records and returning at most limit. Out-of-range values are not an
	// error: an exhausted window yields an empty slice. Callers that want
	// the standard page size use app.DefaultListOffset/DefaultListLimit.
	ListTodos(ctx context.Context, offset, limit int64) ([]todo.Todo, error)

	// GetTodo returns a single todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	GetTodo(ctx context.Context, id int64) (*todo.Todo, error)

	// CreateTodo persists a new todo and returns the created entity with
	// its storage-assigned ID.
	CreateTodo(ctx context.Context, t *todo.Todo) (*todo.Todo, error)

	// UpdateTodo replaces the content and completed fields of an existing
	// todo in full and returns the updated entity. Fields the caller did
	// not set are written with their zero values, not preserved.
	// Returns domain.ErrNotFound if the todo does not exist.
	UpdateTodo(ctx context.Context, id int64, t *todo.Todo) (*todo.Todo, error)

	// DeleteTodo permanently removes a todo.
	// Returns domain.ErrNotFound if the todo does not exist.
	DeleteTodo(ctx context.Context, id int64) error
}
