package storage

import (
	"errors"
	"log/slog"
	"os"

	"github.com/jacksmith/todo/internal/model"
	"github.com/jacksmith/todo/internal/ops"
)

var _ ops.Store = (*FileStore)(nil)

// FileStore keeps todos in memory and rewrites a JSON file after every
// successful mutation.
type FileStore struct {
	mem  *MemoryStore
	path string
}

// OpenFileStore loads the todo file at path.
// A missing, unreadable or malformed file is treated as absent and the store
// starts empty; opening never fails.
func OpenFileStore(path string) *FileStore {
	s := &FileStore{path: path}

	f, err := model.LoadFile(path)
	switch {
	case err == nil:
		slog.Debug("loaded todo file", "path", path, "todos", len(f.Todos), "next_id", f.NextID)
	case errors.Is(err, os.ErrNotExist):
		f = model.NewTodoFile()
	default:
		slog.Warn("ignoring unreadable todo file, starting empty", "path", path, "error", err)
		f = model.NewTodoFile()
	}

	s.mem = newMemoryStoreFrom(f)
	return s
}

// Create stores a new todo and rewrites the file.
func (s *FileStore) Create(title string) (*model.Todo, error) {
	var created *model.Todo
	err := s.mutate(func() error {
		t, err := s.mem.Create(title)
		created = t
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Get returns the todo with the given ID.
func (s *FileStore) Get(id int) (*model.Todo, error) {
	return s.mem.Get(id)
}

// List returns all todos sorted by ID.
func (s *FileStore) List() ([]model.Todo, error) {
	return s.mem.List()
}

// Update applies p to a todo and rewrites the file.
// An empty patch only checks that the todo exists.
func (s *FileStore) Update(id int, p model.Patch) (*model.Todo, error) {
	if p.IsEmpty() {
		return s.mem.Get(id)
	}

	var updated *model.Todo
	err := s.mutate(func() error {
		t, err := s.mem.Update(id, p)
		updated = t
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a todo and rewrites the file.
func (s *FileStore) Delete(id int) error {
	return s.mutate(func() error {
		return s.mem.Delete(id)
	})
}

// NextID returns the ID the next Create will assign.
func (s *FileStore) NextID() (int, error) {
	return s.mem.NextID()
}

// Close is a no-op; every mutation is already on disk.
func (s *FileStore) Close() error {
	return nil
}

// mutate runs fn against the in-memory state and persists the result.
// If the write fails the in-memory state is rolled back to the last
// successful write and a *model.StorageError is returned.
func (s *FileStore) mutate(fn func() error) error {
	before := s.mem.snapshot()

	if err := fn(); err != nil {
		return err
	}

	if err := model.SaveFile(s.path, s.mem.snapshot()); err != nil {
		s.mem.restore(before)
		return &model.StorageError{Op: "save", Path: s.path, Err: err}
	}

	slog.Debug("saved todo file", "path", s.path)
	return nil
}
