package commands

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/taskodos/taskodos/internal/api"
	"github.com/taskodos/taskodos/pkg/models"
)

// NewGoalCmd creates the goal command with all subcommands
func NewGoalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Goal management commands",
		Long:  "Create, list, update, and manage goals",
	}

	cmd.AddCommand(newGoalListCmd())
	cmd.AddCommand(newGoalAddCmd())
	cmd.AddCommand(newGoalDoneCmd())
	cmd.AddCommand(newGoalDeleteCmd())

	return cmd
}

// goal list
func newGoalListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List goals from the API",
		Aliases: []string{"ls"},
		Run: func(cmd *cobra.Command, args []string) {
			goals, err := api.NewClient().ListGoals()
			if err != nil {
				log.Fatalf("Failed to fetch goals from API: %v", err)
			}

			if len(goals) == 0 {
				fmt.Println("No goals found")
				return
			}

			fmt.Printf("%-5s %-40s %-12s %-10s\n", "ID", "TITLE", "TARGET", "STATUS")
			for _, goal := range goals {
				fmt.Printf("%-5d %-40s %-12s %-10s\n",
					goal.ID,
					truncateString(goal.Title, 40),
					formatDate(goal.TargetDate),
					goal.Status)
			}
		},
	}
}

// goal add
func newGoalAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add [title]",
		Short:   "Create a new goal via API",
		Aliases: []string{"create"},
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 1 {
				fmt.Println("❌ Title is required.")
				fmt.Println("💡 Use 'taskodosctl goal add \"Learn Go\" --date 2026-12-31'")
				return
			}
			title := strings.Join(args, " ")
			description, _ := cmd.Flags().GetString("description")
			date, _ := cmd.Flags().GetString("date")

			targetDate, err := parseDateFlag(date)
			if err != nil {
				log.Fatalf("Failed to create goal: %v", err)
			}

			payload := api.GoalPayload{Title: stringPtr(title), TargetDate: targetDate}
			if description != "" {
				payload.Description = stringPtr(description)
			}

			goal, err := api.NewClient().CreateGoal(payload)
			if err != nil {
				log.Fatalf("Failed to create goal: %v", err)
			}

			fmt.Printf("✅ Goal created: [%d] %s\n", goal.ID, goal.Title)
			if goal.TargetDate != nil {
				fmt.Printf("📅 Calendar event scheduled for %s\n", formatDate(goal.TargetDate))
			}
		},
	}

	cmd.Flags().StringP("description", "d", "", "Goal description")
	cmd.Flags().String("date", "", "Target date (YYYY-MM-DD)")
	return cmd
}

// goal done
func newGoalDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done [id]",
		Short: "Mark a goal as completed",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 1 {
				fmt.Println("❌ Goal id is required.")
				return
			}
			id, err := parseEntityID(args[0])
			if err != nil {
				log.Fatalf("Failed to complete goal: %v", err)
			}

			payload := api.GoalPayload{Status: stringPtr(models.GoalStatusCompleted)}
			goal, err := api.NewClient().UpdateGoal(id, payload)
			if err != nil {
				log.Fatalf("Failed to complete goal: %v", err)
			}

			fmt.Printf("✅ Goal completed: [%d] %s\n", goal.ID, goal.Title)
		},
	}
}

// goal delete
func newGoalDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete [id]",
		Short:   "Delete a goal and its todos",
		Aliases: []string{"rm"},
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 1 {
				fmt.Println("❌ Goal id is required.")
				return
			}
			id, err := parseEntityID(args[0])
			if err != nil {
				log.Fatalf("Failed to delete goal: %v", err)
			}

			if err := api.NewClient().DeleteGoal(id); err != nil {
				log.Fatalf("Failed to delete goal: %v", err)
			}

			fmt.Printf("🗑️  Goal %d deleted\n", id)
		},
	}
}
