package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/jacksmith/todo/internal/ops"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List todos",
	Long: `List todos sorted by ID.

Filter flags:
  --pending     Show only incomplete todos
  --completed   Show only completed todos`,
	Args: exactArgs(0),
	RunE: runList,
}

var (
	listPending   bool
	listCompleted bool
)

func init() {
	listCmd.Flags().BoolVar(&listPending, "pending", false, "show only incomplete todos")
	listCmd.Flags().BoolVar(&listCompleted, "completed", false, "show only completed todos")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if listPending && listCompleted {
		return &cli.UsageError{Message: "conflicting filters: --pending, --completed (use only one at a time)"}
	}

	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	filter := ops.TodoFilter{}
	switch {
	case listPending:
		completed := false
		filter.Completed = &completed
	case listCompleted:
		completed := true
		filter.Completed = &completed
	}

	todos, err := svc.ListTodosFiltered(filter)
	if err != nil {
		return err
	}

	if len(todos) == 0 {
		if filter.Completed != nil {
			fmt.Println("No matching todos.")
			return nil
		}
		fmt.Println(`No todos found. Add one with: todo add "Your task"`)
		return nil
	}

	cli.RenderTodos(os.Stdout, todos)
	return nil
}
