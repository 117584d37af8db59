package dto

import (
	_ "embed"
	"encoding/json"
	"errors"
	"io"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/jsamuelsen11/todo-api/internal/domain"
	"github.com/jsamuelsen11/todo-api/internal/domain/todo"
)

//go:embed todo_schema.json
var todoSchemaJSON string

// todoSchema validates todo bodies: required string content, optional
// boolean completed. Compiled once at package init.
var todoSchema = jsonschema.MustCompileString("todo_schema.json", todoSchemaJSON)

// TodoRequest represents the JSON body for creating or replacing a todo.
// Replace semantics are full overwrite: an omitted completed field decodes
// as false. Unknown body fields are ignored.
type TodoRequest struct {
	Content   string `json:"content"`
	Completed bool   `json:"completed"`
}

// DecodeTodoRequest reads and validates a todo body. The raw JSON is checked
// against the embedded schema before decoding, so the returned request is
// always well-formed. Failures are *domain.ValidationError with the
// violation locations in Fields.
func DecodeTodoRequest(body io.Reader) (*TodoRequest, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"body": "unreadable request body",
		}}
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"body": "invalid JSON",
		}}
	}

	if err := todoSchema.Validate(doc); err != nil {
		return nil, schemaErrorToValidationError(err)
	}

	var req TodoRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"body": "invalid JSON",
		}}
	}

	return &req, nil
}

// ToTodo converts the request to a domain entity. The ID is left zero;
// storage assigns it on create and handlers carry it separately on replace.
func (r *TodoRequest) ToTodo() *todo.Todo {
	return &todo.Todo{
		Content:   r.Content,
		Completed: r.Completed,
	}
}

// schemaErrorToValidationError flattens a jsonschema validation error tree
// into a *domain.ValidationError keyed by violation location.
func schemaErrorToValidationError(err error) error {
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return &domain.ValidationError{Fields: map[string]string{
			"body": err.Error(),
		}}
	}

	fields := make(map[string]string)
	collectCauses(verr, fields)

	return &domain.ValidationError{Fields: fields}
}

// collectCauses walks the cause tree and records each leaf violation under
// its instance location.
func collectCauses(verr *jsonschema.ValidationError, fields map[string]string) {
	if len(verr.Causes) == 0 {
		fields[fieldFromLocation(verr.InstanceLocation)] = verr.Message
		return
	}
	for _, cause := range verr.Causes {
		collectCauses(cause, fields)
	}
}

// fieldFromLocation converts a JSON pointer instance location to a dotted
// body path ("/content" -> "body.content"); the document root maps to "body".
func fieldFromLocation(loc string) string {
	trimmed := strings.Trim(loc, "/")
	if trimmed == "" {
		return "body"
	}
	return "body." + strings.ReplaceAll(trimmed, "/", ".")
}
