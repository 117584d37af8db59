package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-api/internal/app"
	"github.com/jsamuelsen11/todo-api/internal/domain"
	"github.com/jsamuelsen11/todo-api/internal/domain/todo"
)

// parseID extracts an int64 path parameter from the chi URL params.
// Non-integer values are validation failures.
func parseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &domain.ValidationError{
			Fields: map[string]string{"path." + param: "must be an integer"},
		}
	}
	return id, nil
}

// parseListWindow extracts the skip and limit query parameters, applying
// the application defaults when absent. Non-integer values are validation
// failures; out-of-range integers pass through to storage untouched.
func parseListWindow(r *http.Request) (int64, int64, error) {
	offset := app.DefaultListOffset
	limit := app.DefaultListLimit

	fields := make(map[string]string)

	if raw := r.URL.Query().Get("skip"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			fields["query.skip"] = "must be an integer"
		} else {
			offset = v
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			fields["query.limit"] = "must be an integer"
		} else {
			limit = v
		}
	}

	if len(fields) > 0 {
		return 0, 0, &domain.ValidationError{Fields: fields}
	}
	return offset, limit, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeTodoBody reads and validates a todo request body, returning the
// mapped domain entity. The body is limited to maxJSONBodyBytes to prevent
// resource exhaustion. Returns nil after writing an error response on failure.
func decodeTodoBody(w http.ResponseWriter, r *http.Request) *todo.Todo {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)

	req, err := dto.DecodeTodoRequest(r.Body)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return nil
	}

	return req.ToTodo()
}
