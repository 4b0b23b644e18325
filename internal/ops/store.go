package ops

import "github.com/jacksmith/todo/internal/model"

// Store defines the persistence interface required by business logic operations.
// Implementations live in the storage package (memory, JSON file, SQLite) and
// are selected when the store is opened; all of them share this contract.
type Store interface {
	// Create assigns the next ID to a new, incomplete todo and stores it.
	Create(title string) (*model.Todo, error)
	// Get returns the todo with the given ID or a *model.NotFoundError.
	Get(id int) (*model.Todo, error)
	// List returns every todo in ascending ID order.
	List() ([]model.Todo, error)
	// Update applies p to the todo with the given ID.
	Update(id int, p model.Patch) (*model.Todo, error)
	// Delete removes the todo with the given ID. Its ID is never reused.
	Delete(id int) error
	// NextID returns the ID the next Create will assign.
	NextID() (int, error)
	// Close releases any resources held by the store.
	Close() error
}
