// Package storage provides the Store implementations for todos: in memory,
// a JSON file, and a SQLite database.
package storage

import (
	"fmt"

	"github.com/jacksmith/todo/internal/ops"
)

// Open returns the Store selected by cfg.
// The caller owns the store and must Close it.
func Open(cfg *Config) (ops.Store, error) {
	switch cfg.Backend {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendFile:
		return OpenFileStore(cfg.Path), nil
	case BackendSQLite:
		s, err := OpenSQLiteStore(cfg.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
