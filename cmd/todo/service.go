package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/jacksmith/todo/internal/model"
	"github.com/jacksmith/todo/internal/ops"
	"github.com/jacksmith/todo/internal/storage"
	"github.com/spf13/cobra"
)

// openService loads configuration for the current directory, applies the
// global flags, and opens the selected store. The returned close function
// must be called when the command is done.
func openService() (*ops.Service, func(), error) {
	cfg, err := storage.LoadConfig(".", storage.Overrides{
		Backend: flagBackend,
		Path:    flagFile,
		NoColor: flagNoColor,
	})
	if errors.Is(err, storage.ErrInvalidConfig) {
		return nil, nil, &cli.UsageError{Message: err.Error()}
	}
	if err != nil {
		return nil, nil, err
	}

	cli.SetColorMode(cfg.Color, os.Stdout)

	s, err := storage.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	slog.Debug("opened store", "backend", cfg.Backend, "path", cfg.Path)

	closeFn := func() {
		if err := s.Close(); err != nil {
			slog.Error("error closing store", "error", err)
		}
	}
	return ops.NewService(s), closeFn, nil
}

// parseIDs parses every argument as a todo ID.
func parseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := model.ParseID(arg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// joinTitle joins the title arguments so unquoted multi-word titles work.
func joinTitle(args []string) string {
	return strings.Join(args, " ")
}

// minArgs is cobra.MinimumNArgs reporting a usage error.
func minArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return &cli.UsageError{Message: fmt.Sprintf("%s requires at least %d arg(s), only received %d", cmd.CommandPath(), n, len(args))}
		}
		return nil
	}
}

// exactArgs is cobra.ExactArgs reporting a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return &cli.UsageError{Message: fmt.Sprintf("%s accepts %d arg(s), received %d", cmd.CommandPath(), n, len(args))}
		}
		return nil
	}
}
