package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the taskodosctl command tree
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "taskodosctl",
		Short: "Command line client for the taskodos API",
		Long:  "Manage goals, todos and calendar events against a running taskodos server.\nSet TASKODOS_API_URL to point at a non-default server.",
	}

	cmd.AddCommand(NewGoalCmd())
	cmd.AddCommand(NewTodoCmd())
	cmd.AddCommand(NewCalendarCmd())
	cmd.AddCommand(NewStatsCmd())

	return cmd
}
