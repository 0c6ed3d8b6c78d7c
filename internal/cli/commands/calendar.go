package commands

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/taskodos/taskodos/internal/api"
)

// NewCalendarCmd creates the calendar command
func NewCalendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Calendar commands",
	}

	cmd.AddCommand(newCalendarListCmd())

	return cmd
}

// calendar list
func newCalendarListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List calendar events, optionally within a date window",
		Aliases: []string{"ls"},
		Run: func(cmd *cobra.Command, args []string) {
			from, _ := cmd.Flags().GetString("from")
			to, _ := cmd.Flags().GetString("to")

			events, err := api.NewClient().ListEvents(from, to)
			if err != nil {
				log.Fatalf("Failed to fetch calendar events from API: %v", err)
			}

			if len(events) == 0 {
				fmt.Println("No calendar events found")
				return
			}

			fmt.Printf("%-5s %-12s %-40s %-8s\n", "ID", "DATE", "TITLE", "SOURCE")
			for _, event := range events {
				source := "manual"
				switch {
				case event.TodoID != nil:
					source = "todo"
				case event.GoalID != nil:
					source = "goal"
				}
				fmt.Printf("%-5d %-12s %-40s %-8s\n",
					event.ID,
					event.EventDate.Format("2006-01-02"),
					truncateString(event.Title, 40),
					source)
			}
		},
	}

	cmd.Flags().String("from", "", "Inclusive start date (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "Inclusive end date (YYYY-MM-DD)")
	return cmd
}
