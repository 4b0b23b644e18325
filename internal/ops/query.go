package ops

import "github.com/jacksmith/todo/internal/model"

// TodoFilter specifies filtering criteria for listing todos.
// The zero value matches every todo.
type TodoFilter struct {
	Completed *bool // Only todos with this completed flag. Nil = any.
}

// Matches reports whether t passes the filter.
func (f TodoFilter) Matches(t *model.Todo) bool {
	if f.Completed != nil && t.Completed != *f.Completed {
		return false
	}
	return true
}

// ListTodosFiltered returns the todos matching filter in ascending ID order.
func (svc *Service) ListTodosFiltered(filter TodoFilter) ([]model.Todo, error) {
	todos, err := svc.store.List()
	if err != nil {
		return nil, err
	}

	results := make([]model.Todo, 0, len(todos))
	for i := range todos {
		if filter.Matches(&todos[i]) {
			results = append(results, todos[i])
		}
	}
	return results, nil
}

// Summary counts todos by status.
type Summary struct {
	Total     int
	Completed int
	Pending   int
	NextID    int
}

// Summarize returns counts for the store's todos.
func (svc *Service) Summarize() (*Summary, error) {
	todos, err := svc.store.List()
	if err != nil {
		return nil, err
	}
	next, err := svc.store.NextID()
	if err != nil {
		return nil, err
	}

	sum := &Summary{Total: len(todos), NextID: next}
	for _, t := range todos {
		if t.Completed {
			sum.Completed++
		} else {
			sum.Pending++
		}
	}
	return sum, nil
}
