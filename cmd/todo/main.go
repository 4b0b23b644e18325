// Package main is the entry point for the todo CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/jacksmith/todo/internal/logging"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(cli.ExitCode(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "todo - manage your tasks from the command line",
	Long: `todo is a small task tracker. Each todo has a stable numeric ID,
a title, and a complete/incomplete status.

Todos are kept in todos.json in the current directory unless
.todoconfig.yaml, TODO_FILE/TODO_BACKEND, or --file/--backend say otherwise.
Backends: file (JSON, default), sqlite, memory (nothing is kept between runs).`,
	Version:       Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(os.Stderr, flagVerbose)
	},
	// Show help when no subcommand is provided
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var (
	flagFile    string
	flagBackend string
	flagVerbose bool
	flagNoColor bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFile, "file", "", "data file (overrides TODO_FILE and .todoconfig.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "storage backend: file, sqlite or memory")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log debug output to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")

	rootCmd.RegisterFlagCompletionFunc("backend", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"file", "sqlite", "memory"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &cli.UsageError{Message: err.Error()}
	})

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("todo version {{.Version}}\n")
}
