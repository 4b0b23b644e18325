// Package model defines the core data structures for todo.
package model

import "sort"

// Todo is a single tracked task.
type Todo struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Status returns the display status of the todo.
func (t *Todo) Status() string {
	if t.Completed {
		return "complete"
	}
	return "incomplete"
}

// Patch describes a partial update to a todo.
// A nil field is left unchanged.
type Patch struct {
	Title     *string
	Completed *bool
}

// Apply copies the supplied fields of p onto t.
func (p Patch) Apply(t *Todo) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Completed == nil
}

// SetTitle returns a patch that only changes the title.
func SetTitle(title string) Patch {
	return Patch{Title: &title}
}

// SetCompleted returns a patch that only changes the completed flag.
func SetCompleted(completed bool) Patch {
	return Patch{Completed: &completed}
}

// TodoFile is the persisted container: the id counter and every current todo.
type TodoFile struct {
	NextID int    `json:"next_id"`
	Todos  []Todo `json:"todos"`
}

// NewTodoFile returns an empty container whose first id is 1.
func NewTodoFile() *TodoFile {
	return &TodoFile{NextID: 1, Todos: []Todo{}}
}

// SortTodos sorts todos by ascending ID.
func SortTodos(todos []Todo) {
	sort.Slice(todos, func(i, j int) bool {
		return todos[i].ID < todos[j].ID
	})
}
