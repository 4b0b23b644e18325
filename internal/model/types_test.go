package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatch_Apply(t *testing.T) {
	t.Run("empty patch leaves todo unchanged", func(t *testing.T) {
		todo := Todo{ID: 1, Title: "Buy milk"}
		p := Patch{}
		assert.True(t, p.IsEmpty())

		p.Apply(&todo)
		assert.Equal(t, Todo{ID: 1, Title: "Buy milk"}, todo)
	})

	t.Run("title only", func(t *testing.T) {
		todo := Todo{ID: 1, Title: "Buy milk", Completed: true}
		SetTitle("Buy bread").Apply(&todo)
		assert.Equal(t, "Buy bread", todo.Title)
		assert.True(t, todo.Completed)
	})

	t.Run("completed false is distinct from absent", func(t *testing.T) {
		todo := Todo{ID: 1, Title: "Buy milk", Completed: true}
		p := SetCompleted(false)
		assert.False(t, p.IsEmpty())

		p.Apply(&todo)
		assert.False(t, todo.Completed)
		assert.Equal(t, "Buy milk", todo.Title)
	})

	t.Run("both fields", func(t *testing.T) {
		title := "Walk dog"
		done := true
		todo := Todo{ID: 3, Title: "x"}
		Patch{Title: &title, Completed: &done}.Apply(&todo)
		assert.Equal(t, Todo{ID: 3, Title: "Walk dog", Completed: true}, todo)
	})
}

func TestTodo_Status(t *testing.T) {
	assert.Equal(t, "incomplete", (&Todo{}).Status())
	assert.Equal(t, "complete", (&Todo{Completed: true}).Status())
}

func TestSortTodos(t *testing.T) {
	todos := []Todo{{ID: 5}, {ID: 1}, {ID: 3}}
	SortTodos(todos)
	assert.Equal(t, []Todo{{ID: 1}, {ID: 3}, {ID: 5}}, todos)
}

func TestNewTodoFile(t *testing.T) {
	f := NewTodoFile()
	assert.Equal(t, 1, f.NextID)
	assert.NotNil(t, f.Todos)
	assert.Empty(t, f.Todos)
}
