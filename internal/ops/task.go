// Package ops implements the business rules for todos on top of a Store.
package ops

import (
	"log/slog"
	"strings"

	"github.com/jacksmith/todo/internal/model"
)

// msgEmptyTitle is the message reported for empty or whitespace-only titles.
const msgEmptyTitle = "Title cannot be empty"

// ValidateTitle checks that a todo title is not empty or whitespace-only.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return &model.ValidationError{Field: "title", Message: msgEmptyTitle}
	}
	return nil
}

// normalizeTitle trims surrounding whitespace and replaces invalid UTF-8 so
// the stored title reads back identically from every backend.
func normalizeTitle(title string) string {
	return strings.ToValidUTF8(strings.TrimSpace(title), "\uFFFD")
}

// Service applies validation and lookup rules before delegating to a Store.
type Service struct {
	store Store
}

// NewService returns a Service backed by s.
func NewService(s Store) *Service {
	return &Service{store: s}
}

// AddTodo creates a todo with the normalized title.
func (svc *Service) AddTodo(title string) (*model.Todo, error) {
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}

	todo, err := svc.store.Create(normalizeTitle(title))
	if err != nil {
		return nil, err
	}

	slog.Debug("added todo", "id", todo.ID)
	return todo, nil
}

// ListTodos returns every todo in ascending ID order.
func (svc *Service) ListTodos() ([]model.Todo, error) {
	return svc.store.List()
}

// CompleteTodo marks a todo as complete.
// Completing an already complete todo returns it without writing to the store.
func (svc *Service) CompleteTodo(id int) (*model.Todo, error) {
	todo, err := svc.store.Get(id)
	if err != nil {
		return nil, err
	}
	if todo.Completed {
		slog.Debug("todo already complete", "id", id)
		return todo, nil
	}

	return svc.store.Update(id, model.SetCompleted(true))
}

// UpdateTodo replaces the title of a todo.
// The title is validated before the todo is looked up, so an empty title is
// reported as a validation error even when the ID does not exist.
func (svc *Service) UpdateTodo(id int, title string) (*model.Todo, error) {
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}
	if _, err := svc.store.Get(id); err != nil {
		return nil, err
	}

	return svc.store.Update(id, model.SetTitle(normalizeTitle(title)))
}

// DeleteTodo permanently removes a todo.
func (svc *Service) DeleteTodo(id int) (bool, error) {
	if err := svc.store.Delete(id); err != nil {
		return false, err
	}

	slog.Debug("deleted todo", "id", id)
	return true, nil
}
