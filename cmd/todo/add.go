package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new todo",
	Long: `Add a new todo. Surrounding whitespace is trimmed from the title.

Multiple arguments are joined with single spaces, so quoting is optional.

Examples:
  todo add "Buy groceries"
  todo add Walk the dog`,
	Args: minArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	todo, err := svc.AddTodo(joinTitle(args))
	if err != nil {
		return err
	}

	fmt.Printf("Added todo #%d: %q\n", todo.ID, todo.Title)
	return nil
}
