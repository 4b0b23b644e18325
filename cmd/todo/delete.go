package main

import (
	"fmt"

	"github.com/jacksmith/todo/internal/model"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a todo",
	Long: `Delete a todo permanently. Its ID is never given to another todo.

Examples:
  todo delete 3`,
	Args:              exactArgs(1),
	RunE:              runDelete,
	ValidArgsFunction: completeFirstTodoID,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := model.ParseID(args[0])
	if err != nil {
		return err
	}

	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	if _, err := svc.DeleteTodo(id); err != nil {
		return err
	}

	fmt.Printf("Deleted todo #%d\n", id)
	return nil
}
