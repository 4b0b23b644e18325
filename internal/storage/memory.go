package storage

import (
	"math"

	"github.com/jacksmith/todo/internal/model"
	"github.com/jacksmith/todo/internal/ops"
)

var _ ops.Store = (*MemoryStore)(nil)

// MemoryStore keeps todos for the lifetime of the process only.
type MemoryStore struct {
	todos  map[int]*model.Todo
	order  []int // insertion order
	nextID int
}

// NewMemoryStore returns an empty store whose first ID is 1.
func NewMemoryStore() *MemoryStore {
	return newMemoryStoreFrom(model.NewTodoFile())
}

// newMemoryStoreFrom builds a store holding the contents of f.
// f must already be validated: unique IDs and NextID above every ID.
func newMemoryStoreFrom(f *model.TodoFile) *MemoryStore {
	m := &MemoryStore{
		todos:  make(map[int]*model.Todo, len(f.Todos)),
		nextID: f.NextID,
	}
	for _, t := range f.Todos {
		t := t
		m.todos[t.ID] = &t
		m.order = append(m.order, t.ID)
	}
	return m
}

// Create stores a new incomplete todo under the next ID.
// The counter never wraps: once it reaches math.MaxInt, Create fails.
func (m *MemoryStore) Create(title string) (*model.Todo, error) {
	if m.nextID <= 0 || m.nextID == math.MaxInt {
		return nil, &model.StorageError{Op: "assign id", Err: model.ErrIDsExhausted}
	}
	t := &model.Todo{ID: m.nextID, Title: title}
	m.todos[t.ID] = t
	m.order = append(m.order, t.ID)
	m.nextID++

	out := *t
	return &out, nil
}

// Get returns a copy of the todo with the given ID.
func (m *MemoryStore) Get(id int) (*model.Todo, error) {
	t, ok := m.todos[id]
	if !ok {
		return nil, &model.NotFoundError{ID: id}
	}
	out := *t
	return &out, nil
}

// List returns copies of all todos sorted by ID.
func (m *MemoryStore) List() ([]model.Todo, error) {
	todos := make([]model.Todo, 0, len(m.todos))
	for _, t := range m.todos {
		todos = append(todos, *t)
	}
	model.SortTodos(todos)
	return todos, nil
}

// Update applies p to the todo with the given ID.
func (m *MemoryStore) Update(id int, p model.Patch) (*model.Todo, error) {
	t, ok := m.todos[id]
	if !ok {
		return nil, &model.NotFoundError{ID: id}
	}
	p.Apply(t)

	out := *t
	return &out, nil
}

// Delete removes the todo with the given ID.
func (m *MemoryStore) Delete(id int) error {
	if _, ok := m.todos[id]; !ok {
		return &model.NotFoundError{ID: id}
	}
	delete(m.todos, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// NextID returns the ID the next Create will assign.
func (m *MemoryStore) NextID() (int, error) {
	return m.nextID, nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}

// snapshot returns the full state in insertion order.
func (m *MemoryStore) snapshot() *model.TodoFile {
	f := &model.TodoFile{
		NextID: m.nextID,
		Todos:  make([]model.Todo, 0, len(m.order)),
	}
	for _, id := range m.order {
		f.Todos = append(f.Todos, *m.todos[id])
	}
	return f
}

// restore replaces the state with f.
func (m *MemoryStore) restore(f *model.TodoFile) {
	*m = *newMemoryStoreFrom(f)
}
