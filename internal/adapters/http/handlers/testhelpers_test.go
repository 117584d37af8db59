package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-api/internal/domain/todo"
	"github.com/jsamuelsen11/todo-api/internal/ports"
)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validTodo() todo.Todo {
	return todo.Todo{
		ID:        1,
		Content:   "buy milk",
		Completed: false,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

// fakeService implements ports.TodoService with overridable behavior per
// method.
type fakeService struct {
	listFn   func(ctx context.Context, offset, limit int64) ([]todo.Todo, error)
	getFn    func(ctx context.Context, id int64) (*todo.Todo, error)
	createFn func(ctx context.Context, t *todo.Todo) (*todo.Todo, error)
	updateFn func(ctx context.Context, id int64, t *todo.Todo) (*todo.Todo, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (f *fakeService) ListTodos(ctx context.Context, offset, limit int64) ([]todo.Todo, error) {
	return f.listFn(ctx, offset, limit)
}

func (f *fakeService) GetTodo(ctx context.Context, id int64) (*todo.Todo, error) {
	return f.getFn(ctx, id)
}

func (f *fakeService) CreateTodo(ctx context.Context, t *todo.Todo) (*todo.Todo, error) {
	return f.createFn(ctx, t)
}

func (f *fakeService) UpdateTodo(ctx context.Context, id int64, t *todo.Todo) (*todo.Todo, error) {
	return f.updateFn(ctx, id, t)
}

func (f *fakeService) DeleteTodo(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

// fakeRegistry implements ports.HealthRegistry over a fixed result set.
type fakeRegistry struct {
	results map[string]error
}

func (f *fakeRegistry) Register(_ ports.HealthChecker) {}

func (f *fakeRegistry) CheckAll(_ context.Context) map[string]error {
	return f.results
}
