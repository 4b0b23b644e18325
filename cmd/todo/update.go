package main

import (
	"fmt"

	"github.com/jacksmith/todo/internal/model"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update <id> <title>",
	Short: "Change a todo's title",
	Long: `Replace the title of a todo. The completion status is unchanged.

Examples:
  todo update 2 "Walk the dog twice"
  todo update 2 Walk the dog twice`,
	Args:              minArgs(2),
	RunE:              runUpdate,
	ValidArgsFunction: completeFirstTodoID,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, err := model.ParseID(args[0])
	if err != nil {
		return err
	}

	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	todo, err := svc.UpdateTodo(id, joinTitle(args[1:]))
	if err != nil {
		return err
	}

	fmt.Printf("Updated todo #%d: %q\n", todo.ID, todo.Title)
	return nil
}
