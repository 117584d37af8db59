package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/todo-api/internal/adapters/http/handlers"
)

func TestLiveness_AlwaysOK(t *testing.T) {
	t.Parallel()

	h := handlers.NewHealthHandler(&fakeRegistry{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	h.Liveness(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[map[string]string](t, rec)
	if resp["status"] != "ok" {
		t.Errorf("status = %q, want %q", resp["status"], "ok")
	}
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	breakerOpen := "sqlite: failing (circuit breaker open)"

	tests := []struct {
		name       string
		results    map[string]error
		wantStatus int
		wantState  string
		wantChecks map[string]string
	}{
		{
			name:       "store healthy",
			results:    map[string]error{"sqlite": nil},
			wantStatus: http.StatusOK,
			wantState:  "ready",
			wantChecks: map[string]string{"sqlite": "ok"},
		},
		{
			name:       "store failing",
			results:    map[string]error{"sqlite": errors.New(breakerOpen)},
			wantStatus: http.StatusServiceUnavailable,
			wantState:  "not_ready",
			wantChecks: map[string]string{"sqlite": breakerOpen},
		},
		{
			name:       "no checkers registered",
			results:    map[string]error{},
			wantStatus: http.StatusOK,
			wantState:  "ready",
			wantChecks: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := handlers.NewHealthHandler(&fakeRegistry{results: tt.results})

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
			h.Readiness(rec, req)

			requireStatus(t, rec, tt.wantStatus)

			resp := decodeJSON[map[string]any](t, rec)
			if resp["status"] != tt.wantState {
				t.Errorf("status = %q, want %q", resp["status"], tt.wantState)
			}

			checks, ok := resp["checks"].(map[string]any)
			if !ok {
				t.Fatal("checks field not a map")
			}
			if len(checks) != len(tt.wantChecks) {
				t.Fatalf("len(checks) = %d, want %d", len(checks), len(tt.wantChecks))
			}
			for name, want := range tt.wantChecks {
				if checks[name] != want {
					t.Errorf("%s check = %v, want %q", name, checks[name], want)
				}
			}
		})
	}
}
