package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:     "complete <id>...",
	Aliases: []string{"done"},
	Short:   "Mark todo(s) as complete",
	Long: `Mark one or more todos as complete.

Completing a todo that is already complete changes nothing.

Multiple todos can be specified (batch mode). Todos that can be completed
are completed, and errors are reported for the rest.

Examples:
  todo complete 1
  todo complete 1 2 3`,
	Args:              minArgs(1),
	RunE:              runComplete,
	ValidArgsFunction: completeOpenTodoIDs,
}

func init() {
	rootCmd.AddCommand(completeCmd)
}

func runComplete(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	// A single id reports its error directly so the exit code reflects it.
	if len(ids) == 1 {
		todo, err := svc.CompleteTodo(ids[0])
		if err != nil {
			return err
		}
		fmt.Printf("Marked todo #%d as complete: %q\n", todo.ID, todo.Title)
		return nil
	}

	var firstErr error
	var failed []string
	for _, id := range ids {
		todo, err := svc.CompleteTodo(id)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			failed = append(failed, err.Error())
			continue
		}
		fmt.Printf("Marked todo #%d as complete: %q\n", todo.ID, todo.Title)
	}

	if len(failed) > 0 {
		fmt.Println()
		for _, e := range failed {
			fmt.Printf("error: %s\n", e)
		}
		// Return error if all failed
		if len(failed) == len(ids) {
			return fmt.Errorf("failed to complete any todos: %w", firstErr)
		}
	}

	return nil
}
