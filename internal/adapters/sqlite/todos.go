package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/todo-api/internal/domain"
	"github.com/jsamuelsen11/todo-api/internal/domain/todo"
	"github.com/jsamuelsen11/todo-api/internal/ports"
)

// Compile-time check that Store satisfies the store port.
var _ ports.TodoStore = (*Store)(nil)

// List returns todos ordered by ID ascending with the given window.
// Offset and limit pass through to SQLite untouched; a negative limit
// selects all remaining rows.
func (s *Store) List(ctx context.Context, offset, limit int64) ([]todo.Todo, error) {
	todos := make([]todo.Todo, 0)

	err := s.execute(ctx, opList, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, `
			SELECT todo_id, content, completed
			FROM todos
			ORDER BY todo_id
			LIMIT ? OFFSET ?
		`, limit, offset)
		if err != nil {
			return fmt.Errorf("listing todos: %v: %w", err, domain.ErrStorage)
		}
		defer rows.Close()

		for rows.Next() {
			var t todo.Todo
			if err := rows.Scan(&t.ID, &t.Content, &t.Completed); err != nil {
				return fmt.Errorf("scanning todo row: %v: %w", err, domain.ErrStorage)
			}
			todos = append(todos, t)
		}

		if err := rows.Err(); err != nil {
			return fmt.Errorf("reading todo rows: %v: %w", err, domain.ErrStorage)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return todos, nil
}

// Get returns a single todo by ID, or domain.ErrNotFound when no row matches.
func (s *Store) Get(ctx context.Context, id int64) (*todo.Todo, error) {
	var t todo.Todo

	err := s.execute(ctx, opGet, func(ctx context.Context) error {
		row := s.db.QueryRowContext(ctx, `
			SELECT todo_id, content, completed
			FROM todos
			WHERE todo_id = ?
		`, id)

		if err := row.Scan(&t.ID, &t.Content, &t.Completed); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("todo %d: %w", id, domain.ErrNotFound)
			}
			return fmt.Errorf("reading todo %d: %v: %w", id, err, domain.ErrStorage)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// Create inserts a new row and returns the record with its assigned ID.
func (s *Store) Create(ctx context.Context, t *todo.Todo) (*todo.Todo, error) {
	var created todo.Todo

	err := s.execute(ctx, opCreate, func(ctx context.Context) error {
		return s.withTx(ctx, func(tx *sql.Tx) error {
			res, err := tx.ExecContext(ctx, `
				INSERT INTO todos (content, completed)
				VALUES (?, ?)
			`, t.Content, t.Completed)
			if err != nil {
				return fmt.Errorf("inserting todo: %v: %w", err, domain.ErrStorage)
			}

			id, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("reading inserted todo id: %v: %w", err, domain.ErrStorage)
			}

			created = todo.Todo{ID: id, Content: t.Content, Completed: t.Completed}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// Update overwrites content and completed for the given ID and returns the
// row as committed, or domain.ErrNotFound when no row matches.
func (s *Store) Update(ctx context.Context, id int64, t *todo.Todo) (*todo.Todo, error) {
	var updated todo.Todo

	err := s.execute(ctx, opUpdate, func(ctx context.Context) error {
		return s.withTx(ctx, func(tx *sql.Tx) error {
			res, err := tx.ExecContext(ctx, `
				UPDATE todos
				SET content = ?, completed = ?
				WHERE todo_id = ?
			`, t.Content, t.Completed, id)
			if err != nil {
				return fmt.Errorf("updating todo %d: %v: %w", id, err, domain.ErrStorage)
			}

			affected, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("reading affected rows: %v: %w", err, domain.ErrStorage)
			}
			if affected == 0 {
				return fmt.Errorf("todo %d: %w", id, domain.ErrNotFound)
			}

			// Re-read inside the transaction so the caller gets the row
			// exactly as committed.
			row := tx.QueryRowContext(ctx, `
				SELECT todo_id, content, completed
				FROM todos
				WHERE todo_id = ?
			`, id)
			if err := row.Scan(&updated.ID, &updated.Content, &updated.Completed); err != nil {
				return fmt.Errorf("reading updated todo %d: %v: %w", id, err, domain.ErrStorage)
			}

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// Delete removes the row with the given ID, or returns domain.ErrNotFound
// when no row matches.
func (s *Store) Delete(ctx context.Context, id int64) error {
	return s.execute(ctx, opDelete, func(ctx context.Context) error {
		return s.withTx(ctx, func(tx *sql.Tx) error {
			res, err := tx.ExecContext(ctx, `
				DELETE FROM todos
				WHERE todo_id = ?
			`, id)
			if err != nil {
				return fmt.Errorf("deleting todo %d: %v: %w", id, err, domain.ErrStorage)
			}

			affected, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("reading affected rows: %v: %w", err, domain.ErrStorage)
			}
			if affected == 0 {
				return fmt.Errorf("todo %d: %w", id, domain.ErrNotFound)
			}

			return nil
		})
	})
}
