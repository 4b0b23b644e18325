package model

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "todos.json")

	content := `{
  "next_id": 4,
  "todos": [
    {"id": 1, "title": "Buy groceries", "completed": true},
    {"id": 3, "title": "Walk dog", "completed": false}
  ]
}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	f, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 4, f.NextID)
	require.Len(t, f.Todos, 2)
	assert.Equal(t, Todo{ID: 1, Title: "Buy groceries", Completed: true}, f.Todos[0])
	assert.Equal(t, Todo{ID: 3, Title: "Walk dog", Completed: false}, f.Todos[1])
}

func TestLoadFile_FileNotFound(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestDecodeFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "this is not json"},
		{name: "truncated", content: `{"next_id": 2, "todos": [`},
		{name: "empty", content: ""},
		{name: "top-level array", content: `[{"id": 1, "title": "x", "completed": false}]`},
		{name: "null", content: "null"},
		{name: "missing next_id", content: `{"todos": []}`},
		{name: "missing todos", content: `{"next_id": 1}`},
		{name: "next_id is a string", content: `{"next_id": "1", "todos": []}`},
		{name: "next_id is zero", content: `{"next_id": 0, "todos": []}`},
		{name: "next_id is fractional", content: `{"next_id": 1.5, "todos": []}`},
		{name: "todos is an object", content: `{"next_id": 1, "todos": {}}`},
		{name: "id is a string", content: `{"next_id": 2, "todos": [{"id": "1", "title": "x", "completed": false}]}`},
		{name: "id is negative", content: `{"next_id": 2, "todos": [{"id": -1, "title": "x", "completed": false}]}`},
		{name: "completed is a string", content: `{"next_id": 2, "todos": [{"id": 1, "title": "x", "completed": "no"}]}`},
		{name: "missing title", content: `{"next_id": 2, "todos": [{"id": 1, "completed": false}]}`},
		{name: "empty title", content: `{"next_id": 2, "todos": [{"id": 1, "title": "", "completed": false}]}`},
		{name: "whitespace title", content: `{"next_id": 2, "todos": [{"id": 1, "title": "   ", "completed": false}]}`},
		{name: "duplicate ids", content: `{"next_id": 3, "todos": [{"id": 1, "title": "a", "completed": false}, {"id": 1, "title": "b", "completed": false}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeFile([]byte(tt.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidFile), "got %v", err)
		})
	}
}

func TestDecodeFile_IDOverflow(t *testing.T) {
	t.Run("largest id leaves no room for the counter", func(t *testing.T) {
		content := fmt.Sprintf(`{"next_id": 1, "todos": [{"id": %d, "title": "x", "completed": false}]}`, math.MaxInt)

		_, err := DecodeFile([]byte(content))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidFile), "got %v", err)
	})

	t.Run("id beyond int range", func(t *testing.T) {
		content := `{"next_id": 1, "todos": [{"id": 99999999999999999999, "title": "x", "completed": false}]}`

		_, err := DecodeFile([]byte(content))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidFile), "got %v", err)
	})

	t.Run("one below the limit is accepted", func(t *testing.T) {
		content := fmt.Sprintf(`{"next_id": 1, "todos": [{"id": %d, "title": "x", "completed": false}]}`, math.MaxInt-1)

		f, err := DecodeFile([]byte(content))
		require.NoError(t, err)
		assert.Equal(t, math.MaxInt, f.NextID)
	})
}

func TestDecodeFile_RaisesStaleNextID(t *testing.T) {
	content := `{"next_id": 2, "todos": [{"id": 5, "title": "x", "completed": false}]}`

	f, err := DecodeFile([]byte(content))
	require.NoError(t, err)
	assert.Equal(t, 6, f.NextID)
}

func TestDecodeFile_EmptyTodos(t *testing.T) {
	f, err := DecodeFile([]byte(`{"next_id": 9, "todos": []}`))
	require.NoError(t, err)
	assert.Equal(t, 9, f.NextID)
	assert.NotNil(t, f.Todos)
	assert.Empty(t, f.Todos)
}

func TestSaveFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "todos.json")

	original := &TodoFile{
		NextID: 5,
		Todos: []Todo{
			{ID: 2, Title: "Walk dog", Completed: false},
			{ID: 4, Title: "Read  a   book", Completed: true},
		},
	}

	require.NoError(t, SaveFile(path, original))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestSaveFile_Format(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "todos.json")

	require.NoError(t, SaveFile(path, &TodoFile{
		NextID: 2,
		Todos:  []Todo{{ID: 1, Title: "Buy milk"}},
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	expected := `{
  "next_id": 2,
  "todos": [
    {
      "id": 1,
      "title": "Buy milk",
      "completed": false
    }
  ]
}
`
	assert.Equal(t, expected, string(data))
}

func TestSaveFile_EmptyTodosWrittenAsArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")

	require.NoError(t, SaveFile(path, &TodoFile{NextID: 3}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"todos": []`)

	// The result must still be loadable.
	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, f.NextID)
}

func TestSaveFile_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "todos.json")

	require.NoError(t, SaveFile(path, NewTodoFile()))

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestSaveFile_OverwritesAndLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "todos.json")

	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0644))
	require.NoError(t, SaveFile(path, NewTodoFile()))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, f.NextID)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "leftover temp file %s", e.Name())
	}
}
