package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jacksmith/todo/internal/model"
	"github.com/jacksmith/todo/internal/ops"
	_ "modernc.org/sqlite"
)

var _ ops.Store = (*SQLiteStore)(nil)

// SQLiteStore keeps todos in a SQLite database file.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// OpenSQLiteStore opens (creating if needed) the database at path.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, &model.StorageError{Op: "create directory", Path: dir, Err: err}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &model.StorageError{Op: "open database", Path: path, Err: err}
	}

	// A single connection keeps every statement on the same database handle.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		closeDB(db)
		return nil, &model.StorageError{Op: "open database", Path: path, Err: err}
	}

	if err := runMigrations(db); err != nil {
		closeDB(db)
		return nil, &model.StorageError{Op: "migrate database", Path: path, Err: err}
	}

	slog.Debug("opened todo database", "path", path)
	return &SQLiteStore{db: db, path: path}, nil
}

// runMigrations creates the schema if it does not exist yet.
func runMigrations(db *sql.DB) error {
	// AUTOINCREMENT keeps ids strictly increasing and never reuses deleted ones.
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS todos (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0
		)
	`)
	return err
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}

// Create inserts a new incomplete todo.
func (s *SQLiteStore) Create(title string) (*model.Todo, error) {
	res, err := s.db.Exec("INSERT INTO todos (title, completed) VALUES (?, 0)", title)
	if err != nil {
		return nil, s.storageErr("insert todo", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, s.storageErr("insert todo", err)
	}
	return &model.Todo{ID: int(id), Title: title}, nil
}

// Get returns the todo with the given ID.
func (s *SQLiteStore) Get(id int) (*model.Todo, error) {
	return getTodo(s.db.QueryRow("SELECT id, title, completed FROM todos WHERE id = ?", id), id, s)
}

// List returns all todos sorted by ID.
func (s *SQLiteStore) List() ([]model.Todo, error) {
	rows, err := s.db.Query("SELECT id, title, completed FROM todos ORDER BY id")
	if err != nil {
		return nil, s.storageErr("list todos", err)
	}
	defer rows.Close()

	todos := []model.Todo{}
	for rows.Next() {
		var t model.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed); err != nil {
			return nil, s.storageErr("list todos", err)
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, s.storageErr("list todos", err)
	}
	return todos, nil
}

// Update applies p to the todo with the given ID.
func (s *SQLiteStore) Update(id int, p model.Patch) (*model.Todo, error) {
	if p.IsEmpty() {
		return s.Get(id)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, s.storageErr("update todo", err)
	}
	defer tx.Rollback()

	t, err := getTodo(tx.QueryRow("SELECT id, title, completed FROM todos WHERE id = ?", id), id, s)
	if err != nil {
		return nil, err
	}
	p.Apply(t)

	if _, err := tx.Exec("UPDATE todos SET title = ?, completed = ? WHERE id = ?", t.Title, t.Completed, id); err != nil {
		return nil, s.storageErr("update todo", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, s.storageErr("update todo", err)
	}
	return t, nil
}

// Delete removes the todo with the given ID.
func (s *SQLiteStore) Delete(id int) error {
	res, err := s.db.Exec("DELETE FROM todos WHERE id = ?", id)
	if err != nil {
		return s.storageErr("delete todo", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return s.storageErr("delete todo", err)
	}
	if n == 0 {
		return &model.NotFoundError{ID: id}
	}
	return nil
}

// NextID returns the ID the next Create will assign.
func (s *SQLiteStore) NextID() (int, error) {
	var seq int
	err := s.db.QueryRow("SELECT seq FROM sqlite_sequence WHERE name = 'todos'").Scan(&seq)
	if errors.Is(err, sql.ErrNoRows) {
		return 1, nil
	}
	if err != nil {
		return 0, s.storageErr("read id sequence", err)
	}
	return seq + 1, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return s.storageErr("close database", err)
	}
	return nil
}

func (s *SQLiteStore) storageErr(op string, err error) error {
	return &model.StorageError{Op: op, Path: s.path, Err: err}
}

func getTodo(row *sql.Row, id int, s *SQLiteStore) (*model.Todo, error) {
	var t model.Todo
	if err := row.Scan(&t.ID, &t.Title, &t.Completed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &model.NotFoundError{ID: id}
		}
		return nil, s.storageErr(fmt.Sprintf("read todo #%d", id), err)
	}
	return &t, nil
}
