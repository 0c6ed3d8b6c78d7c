package commands

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/taskodos/taskodos/internal/api"
)

// NewStatsCmd creates the stats command
func NewStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate counts across goals, todos and calendar events",
		Run: func(cmd *cobra.Command, args []string) {
			stats, err := api.NewClient().GetStats()
			if err != nil {
				log.Fatalf("Failed to fetch stats from API: %v", err)
			}

			fmt.Println("📊 Taskodos overview")
			fmt.Printf("Goals:  %d total, %d active, %d completed\n",
				stats.Goals.Total, stats.Goals.Active, stats.Goals.Completed)
			fmt.Printf("Todos:  %d total, %d completed, %d pending\n",
				stats.Todos.Total, stats.Todos.Completed, stats.Todos.Pending)
			fmt.Printf("Events: %d on the calendar\n", stats.CalendarEvents)
		},
	}
}
