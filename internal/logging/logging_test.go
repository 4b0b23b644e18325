package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	t.Run("default level hides debug", func(t *testing.T) {
		var buf bytes.Buffer
		Init(&buf, false)

		slog.Debug("hidden")
		slog.Warn("shown", "path", "todos.json")

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "level=WARN")
		assert.Contains(t, out, "path=todos.json")
	})

	t.Run("verbose shows debug", func(t *testing.T) {
		var buf bytes.Buffer
		logger := Init(&buf, true)

		slog.Debug("visible", "id", 3)
		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "id=3")
		assert.Same(t, logger, slog.Default())
	})
}
