package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show todo counts",
	Long:  `Show how many todos are complete and pending, and the next ID to be assigned.`,
	Args:  exactArgs(0),
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	sum, err := svc.Summarize()
	if err != nil {
		return err
	}

	fmt.Printf("Todos:     %d\n", sum.Total)
	fmt.Printf("Pending:   %d\n", sum.Pending)
	fmt.Printf("Completed: %d\n", sum.Completed)
	fmt.Printf("Next ID:   #%d\n", sum.NextID)
	return nil
}
