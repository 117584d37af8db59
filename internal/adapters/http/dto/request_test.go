package dto_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jsamuelsen11/todo-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-api/internal/domain"
)

func TestDecodeTodoRequest_Valid(t *testing.T) {
	t.Parallel()

	body := strings.NewReader(`{"content": "buy milk", "completed": true}`)

	got, err := dto.DecodeTodoRequest(body)
	if err != nil {
		t.Fatalf("DecodeTodoRequest() error = %v", err)
	}

	if got.Content != "buy milk" {
		t.Errorf("Content = %q, want %q", got.Content, "buy milk")
	}
	if !got.Completed {
		t.Error("Completed = false, want true")
	}
}

func TestDecodeTodoRequest_OmittedCompletedDefaultsFalse(t *testing.T) {
	t.Parallel()

	body := strings.NewReader(`{"content": "buy milk"}`)

	got, err := dto.DecodeTodoRequest(body)
	if err != nil {
		t.Fatalf("DecodeTodoRequest() error = %v", err)
	}

	if got.Completed {
		t.Error("Completed = true, want false for omitted field")
	}
}

func TestDecodeTodoRequest_EmptyContentAllowed(t *testing.T) {
	t.Parallel()

	body := strings.NewReader(`{"content": ""}`)

	got, err := dto.DecodeTodoRequest(body)
	if err != nil {
		t.Fatalf("DecodeTodoRequest() error = %v", err)
	}

	if got.Content != "" {
		t.Errorf("Content = %q, want empty string", got.Content)
	}
}

func TestDecodeTodoRequest_UnknownFieldsIgnored(t *testing.T) {
	t.Parallel()

	body := strings.NewReader(`{"content": "buy milk", "priority": "high"}`)

	got, err := dto.DecodeTodoRequest(body)
	if err != nil {
		t.Fatalf("DecodeTodoRequest() error = %v", err)
	}

	if got.Content != "buy milk" {
		t.Errorf("Content = %q, want %q", got.Content, "buy milk")
	}
}

func TestDecodeTodoRequest_MissingContent(t *testing.T) {
	t.Parallel()

	body := strings.NewReader(`{"completed": true}`)

	_, err := dto.DecodeTodoRequest(body)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("DecodeTodoRequest() error = %v, want ErrValidation", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error is not a *domain.ValidationError: %v", err)
	}
	if msg, ok := verr.Fields["body"]; !ok || msg == "" {
		t.Errorf("Fields = %v, want non-empty message under %q", verr.Fields, "body")
	}
}

func TestDecodeTodoRequest_WrongTypes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name:      "numeric content",
			body:      `{"content": 123}`,
			wantField: "body.content",
		},
		{
			name:      "string completed",
			body:      `{"content": "x", "completed": "yes"}`,
			wantField: "body.completed",
		},
		{
			name:      "non-object body",
			body:      `"just a string"`,
			wantField: "body",
		},
		{
			name:      "null body",
			body:      `null`,
			wantField: "body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := dto.DecodeTodoRequest(strings.NewReader(tt.body))
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("DecodeTodoRequest(%s) error = %v, want ErrValidation", tt.body, err)
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error is not a *domain.ValidationError: %v", err)
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Errorf("Fields = %v, want entry for %q", verr.Fields, tt.wantField)
			}
		})
	}
}

func TestDecodeTodoRequest_MalformedJSON(t *testing.T) {
	t.Parallel()

	body := strings.NewReader(`{"content": "unterminated`)

	_, err := dto.DecodeTodoRequest(body)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("DecodeTodoRequest() error = %v, want ErrValidation", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error is not a *domain.ValidationError: %v", err)
	}
	if got, want := verr.Fields["body"], "invalid JSON"; got != want {
		t.Errorf("Fields[body] = %q, want %q", got, want)
	}
}

func TestTodoRequest_ToTodo(t *testing.T) {
	t.Parallel()

	req := &dto.TodoRequest{Content: "buy milk", Completed: true}

	got := req.ToTodo()

	if got.ID != 0 {
		t.Errorf("ID = %d, want 0 before storage assigns one", got.ID)
	}
	if got.Content != "buy milk" {
		t.Errorf("Content = %q, want %q", got.Content, "buy milk")
	}
	if !got.Completed {
		t.Error("Completed = false, want true")
	}
}
