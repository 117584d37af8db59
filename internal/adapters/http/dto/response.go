// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/todo-api/internal/domain/todo"
)

// TodoResponse represents a single todo record in HTTP responses.
type TodoResponse struct {
	ID        int64  `json:"todo_id"`
	Content   string `json:"content"`
	Completed bool   `json:"completed"`
}

// ToTodoResponse converts a domain todo entity to an HTTP response DTO.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	return TodoResponse{
		ID:        t.ID,
		Content:   t.Content,
		Completed: t.Completed,
	}
}

// ToTodoListResponse converts a slice of todo entities to the list response
// body. List responses are a bare JSON array; an empty result encodes as []
// rather than null.
func ToTodoListResponse(todos []todo.Todo) []TodoResponse {
	items := make([]TodoResponse, len(todos))
	for i := range todos {
		items[i] = ToTodoResponse(&todos[i])
	}
	return items
}

// MessageResponse carries a human-readable confirmation message, used by
// delete responses.
type MessageResponse struct {
	Message string `json:"message"`
}
