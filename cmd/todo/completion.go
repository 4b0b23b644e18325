package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for todo.

To load completions:

Bash:
  $ source <(todo completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ todo completion bash > /etc/bash_completion.d/todo
  # macOS:
  $ todo completion bash > $(brew --prefix)/etc/bash_completion.d/todo

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  # To load completions for each session, execute once:
  $ todo completion zsh > "${fpath[1]}/_todo"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ todo completion fish | source
  # To load completions for each session, execute once:
  $ todo completion fish > ~/.config/fish/completions/todo.fish
`,
}

var completionBashCmd = &cobra.Command{
	Use:   "bash",
	Short: "Generate bash completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenBashCompletionV2(os.Stdout, true)
	},
}

var completionZshCmd = &cobra.Command{
	Use:   "zsh",
	Short: "Generate zsh completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenZshCompletion(os.Stdout)
	},
}

var completionFishCmd = &cobra.Command{
	Use:   "fish",
	Short: "Generate fish completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenFishCompletion(os.Stdout, true)
	},
}

func init() {
	completionCmd.AddCommand(completionBashCmd)
	completionCmd.AddCommand(completionZshCmd)
	completionCmd.AddCommand(completionFishCmd)
	rootCmd.AddCommand(completionCmd)
}

// completeOpenTodoIDs completes IDs of incomplete todos, skipping ones
// already named on the command line.
func completeOpenTodoIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeIDs(args, toComplete, true), cobra.ShellCompDirectiveNoFileComp
}

// completeFirstTodoID completes any todo ID for the first argument only.
func completeFirstTodoID(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return completeIDs(nil, toComplete, false), cobra.ShellCompDirectiveNoFileComp
}

func completeIDs(args []string, toComplete string, openOnly bool) []string {
	svc, closeFn, err := openService()
	if err != nil {
		return nil
	}
	defer closeFn()

	todos, err := svc.ListTodos()
	if err != nil {
		return nil
	}

	used := make(map[string]bool, len(args))
	for _, a := range args {
		used[strings.TrimPrefix(a, "#")] = true
	}
	prefix := strings.TrimPrefix(toComplete, "#")

	var completions []string
	for _, t := range todos {
		if openOnly && t.Completed {
			continue
		}
		id := strconv.Itoa(t.ID)
		if used[id] || !strings.HasPrefix(id, prefix) {
			continue
		}
		completions = append(completions, id+"\t"+t.Status()+": "+cli.Truncate(t.Title, 40))
	}
	return completions
}
