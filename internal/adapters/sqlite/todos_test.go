package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-api/internal/domain"
	"github.com/jsamuelsen11/todo-api/internal/domain/todo"
)

func TestCreate_AssignsUniqueIDs(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)

	first := mustCreate(t, s, "first", false)
	second := mustCreate(t, s, "second", true)

	assert.NotZero(t, first.ID)
	assert.NotZero(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "second", second.Content)
	assert.True(t, second.Completed)
}

func TestCreate_EmptyContent(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)

	created := mustCreate(t, s, "", false)

	got, err := s.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "", got.Content)
}

func TestGet_ReturnsCreatedRecord(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	created := mustCreate(t, s, "buy milk", false)

	got, err := s.Get(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "buy milk", got.Content)
	assert.False(t, got.Completed)
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)

	_, err := s.Get(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_OrderedByID(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	for _, content := range []string{"a", "b", "c"} {
		mustCreate(t, s, content, false)
	}

	todos, err := s.List(context.Background(), 0, 100)
	require.NoError(t, err)
	require.Len(t, todos, 3)

	for i := 1; i < len(todos); i++ {
		if todos[i-1].ID >= todos[i].ID {
			t.Errorf("todos[%d].ID = %d, want less than todos[%d].ID = %d",
				i-1, todos[i-1].ID, i, todos[i].ID)
		}
	}
}

func TestList_Window(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	for _, content := range []string{"a", "b", "c", "d", "e"} {
		mustCreate(t, s, content, false)
	}

	todos, err := s.List(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, todos, 2)

	assert.Equal(t, "b", todos[0].Content)
	assert.Equal(t, "c", todos[1].Content)
}

func TestList_EmptyDatabase(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)

	todos, err := s.List(context.Background(), 0, 100)
	require.NoError(t, err)

	// Non-nil so the HTTP layer encodes [] rather than null.
	assert.NotNil(t, todos)
	assert.Empty(t, todos)
}

func TestList_OffsetBeyondEnd(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	mustCreate(t, s, "only", false)

	todos, err := s.List(context.Background(), 10, 100)
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestList_NegativeLimitReturnsAllRows(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	for _, content := range []string{"a", "b", "c"} {
		mustCreate(t, s, content, false)
	}

	todos, err := s.List(context.Background(), 0, -1)
	require.NoError(t, err)
	assert.Len(t, todos, 3)
}

func TestUpdate_OverwritesBothFields(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	created := mustCreate(t, s, "draft", true)

	updated, err := s.Update(context.Background(), created.ID, &todo.Todo{
		Content:   "final",
		Completed: false,
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "final", updated.Content)
	assert.False(t, updated.Completed, "completed should be overwritten, not merged")

	got, err := s.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUpdate_NotFound(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)

	_, err := s.Update(context.Background(), 42, &todo.Todo{Content: "ghost"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_RemovesRow(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	created := mustCreate(t, s, "to remove", false)
	keep := mustCreate(t, s, "to keep", false)

	require.NoError(t, s.Delete(context.Background(), created.ID))

	_, err := s.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	remaining, err := s.List(context.Background(), 0, 100)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, keep.ID, remaining[0].ID)
}

func TestDelete_NotFound(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)

	err := s.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_Twice(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	created := mustCreate(t, s, "once", false)

	require.NoError(t, s.Delete(context.Background(), created.ID))

	err := s.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
