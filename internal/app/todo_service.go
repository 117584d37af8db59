// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/todo-api/internal/domain/todo"
	"github.com/jsamuelsen11/todo-api/internal/ports"
)

// Default list window, shared with the HTTP layer's query-parameter binding.
const (
	DefaultListOffset int64 = 0
	DefaultListLimit  int64 = 100
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// TodoService implements ports.TodoService over the TodoStore port. It adds
// structured logging around each operation. Input validation happens at the
// HTTP boundary and transactional atomicity inside the store, so the service
// carries no business rules of its own.
type TodoService struct {
	store  ports.TodoStore
	logger *slog.Logger
}

// NewTodoService creates a TodoService backed by the given store.
func NewTodoService(store ports.TodoStore, logger *slog.Logger) *TodoService {
	return &TodoService{
		store:  store,
		logger: logger,
	}
}

// ListTodos returns a window of todos ordered by ID ascending.
func (s *TodoService) ListTodos(ctx context.Context, offset, limit int64) ([]todo.Todo, error) {
	s.logger.InfoContext(ctx, "listing todos",
		slog.Int64("offset", offset),
		slog.Int64("limit", limit),
	)

	todos, err := s.store.List(ctx, offset, limit)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list todos",
			slog.String("operation", "ListTodos"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return todos, nil
}

// GetTodo returns a single todo by ID.
func (s *TodoService) GetTodo(ctx context.Context, id int64) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "fetching todo", slog.Int64("id", id))

	t, err := s.store.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch todo",
			slog.String("operation", "GetTodo"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return t, nil
}

// CreateTodo persists a new todo, returning the entity with its assigned ID.
func (s *TodoService) CreateTodo(ctx context.Context, t *todo.Todo) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "creating todo")

	created, err := s.store.Create(ctx, t)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create todo",
			slog.String("operation", "CreateTodo"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return created, nil
}

// UpdateTodo overwrites the mutable fields of an existing todo in full.
// Fields absent from the caller's input arrive here already zeroed, so an
// update that omits completed writes false.
func (s *TodoService) UpdateTodo(ctx context.Context, id int64, t *todo.Todo) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "updating todo", slog.Int64("id", id))

	updated, err := s.store.Update(ctx, id, t)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update todo",
			slog.String("operation", "UpdateTodo"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return updated, nil
}

// DeleteTodo permanently removes a todo.
func (s *TodoService) DeleteTodo(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting todo", slog.Int64("id", id))

	if err := s.store.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete todo",
			slog.String("operation", "DeleteTodo"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}
