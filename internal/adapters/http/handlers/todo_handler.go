package handlers

import (
	"errors"
	"net/http"

	"github.com/jsamuelsen11/todo-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-api/internal/domain"
	"github.com/jsamuelsen11/todo-api/internal/ports"
)

const (
	// msgTodoNotFound is the detail string carried by 404 problem documents.
	msgTodoNotFound = "Todo not found"

	// msgTodoDeleted is the confirmation message returned by successful deletes.
	msgTodoDeleted = "Todo deleted successfully"
)

// TodoHandler handles HTTP requests for todo CRUD operations.
type TodoHandler struct {
	service ports.TodoService
}

// NewTodoHandler creates a new TodoHandler with the given service port.
func NewTodoHandler(service ports.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

// ListTodos handles GET /todos.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := parseListWindow(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	todos, err := h.service.ListTodos(r.Context(), offset, limit)
	if err != nil {
		writeTodoError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoListResponse(todos))
}

// CreateTodo handles POST /todos.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	t := decodeTodoBody(w, r)
	if t == nil {
		return
	}

	created, err := h.service.CreateTodo(r.Context(), t)
	if err != nil {
		writeTodoError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTodoResponse(created))
}

// GetTodo handles GET /todos/{id}.
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	t, err := h.service.GetTodo(r.Context(), id)
	if err != nil {
		writeTodoError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoResponse(t))
}

// UpdateTodo handles PUT /todos/{id}. The body is validated before the
// record's existence is checked, so a bad body on a missing id reports 422.
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	t := decodeTodoBody(w, r)
	if t == nil {
		return
	}

	updated, err := h.service.UpdateTodo(r.Context(), id, t)
	if err != nil {
		writeTodoError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoResponse(updated))
}

// DeleteTodo handles DELETE /todos/{id}.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.service.DeleteTodo(r.Context(), id); err != nil {
		writeTodoError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: msgTodoDeleted})
}

// writeTodoError renders service errors, giving missing records their
// conventional detail string.
func writeTodoError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		dto.WriteProblem(w, r, http.StatusNotFound, msgTodoNotFound)
		return
	}
	dto.WriteErrorResponse(w, r, err)
}
