package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrInvalidFile is returned when a todo file does not have the expected structure.
var ErrInvalidFile = errors.New("invalid todo file")

// todoFileSchema describes the persisted container.
const todoFileSchema = `{
  "type": "object",
  "required": ["next_id", "todos"],
  "properties": {
    "next_id": {"type": "integer", "minimum": 1},
    "todos": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "title", "completed"],
        "properties": {
          "id": {"type": "integer", "minimum": 1},
          "title": {"type": "string", "minLength": 1},
          "completed": {"type": "boolean"}
        }
      }
    }
  }
}`

var fileSchema = jsonschema.MustCompileString("todos.schema.json", todoFileSchema)

// LoadFile reads and decodes the todo file at path.
// A missing file is reported with an error wrapping os.ErrNotExist.
func LoadFile(path string) (*TodoFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read todo file %s: %w", path, err)
	}

	f, err := DecodeFile(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse todo file %s: %w", path, err)
	}
	return f, nil
}

// DecodeFile decodes a persisted container and checks its structure.
// Any mismatch is reported as ErrInvalidFile.
func DecodeFile(data []byte) (*TodoFile, error) {
	var doc interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	if err := fileSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}

	var f TodoFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	if f.Todos == nil {
		f.Todos = []Todo{}
	}

	seen := make(map[int]bool, len(f.Todos))
	maxID := 0
	for _, t := range f.Todos {
		if seen[t.ID] {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidFile, t.ID)
		}
		seen[t.ID] = true
		if strings.TrimSpace(t.Title) == "" {
			return nil, fmt.Errorf("%w: todo #%d has an empty title", ErrInvalidFile, t.ID)
		}
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	if maxID == math.MaxInt {
		return nil, fmt.Errorf("%w: todo #%d leaves no room for new ids", ErrInvalidFile, maxID)
	}

	// next_id must stay ahead of every stored id or ids would be reused.
	if f.NextID <= maxID {
		f.NextID = maxID + 1
	}

	return &f, nil
}

// EncodeFile encodes f with 2-space indentation and a trailing newline.
func EncodeFile(f *TodoFile) ([]byte, error) {
	out := *f
	if out.Todos == nil {
		out.Todos = []Todo{}
	}
	data, err := json.MarshalIndent(&out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode todo file: %w", err)
	}
	return append(data, '\n'), nil
}

// SaveFile writes f to path, replacing any previous content.
// The data is written to a temporary file in the same directory and renamed
// into place. Missing parent directories are created.
func SaveFile(path string, f *TodoFile) error {
	data, err := EncodeFile(f)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write todo file %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write todo file %s: %w", path, err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write todo file %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace todo file %s: %w", path, err)
	}

	return nil
}
