package commands

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/taskodos/taskodos/internal/api"
)

// NewTodoCmd creates the todo command with all subcommands
func NewTodoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Todo management commands",
		Long:  "Create, list, update, and manage todos",
	}

	cmd.AddCommand(newTodoListCmd())
	cmd.AddCommand(newTodoAddCmd())
	cmd.AddCommand(newTodoDoneCmd())
	cmd.AddCommand(newTodoDeleteCmd())

	return cmd
}

// todo list
func newTodoListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List todos from the API",
		Aliases: []string{"ls"},
		Run: func(cmd *cobra.Command, args []string) {
			todos, err := api.NewClient().ListTodos()
			if err != nil {
				log.Fatalf("Failed to fetch todos from API: %v", err)
			}

			if len(todos) == 0 {
				fmt.Println("No todos found")
				return
			}

			fmt.Printf("%-5s %-3s %-40s %-12s %-20s\n", "ID", "", "TITLE", "DUE", "GOAL")
			for _, todo := range todos {
				mark := " "
				if todo.Completed {
					mark = "x"
				}
				goalTitle := "-"
				if todo.Goal != nil {
					goalTitle = truncateString(todo.Goal.Title, 20)
				}
				fmt.Printf("%-5d [%s] %-40s %-12s %-20s\n",
					todo.ID,
					mark,
					truncateString(todo.Title, 40),
					formatDate(todo.DueDate),
					goalTitle)
			}
		},
	}
}

// todo add
func newTodoAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add [title]",
		Short:   "Create a new todo via API",
		Aliases: []string{"create"},
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 1 {
				fmt.Println("❌ Title is required.")
				fmt.Println("💡 Use 'taskodosctl todo add \"Write tests\" --due 2026-09-15 --goal 3'")
				return
			}
			title := strings.Join(args, " ")
			description, _ := cmd.Flags().GetString("description")
			due, _ := cmd.Flags().GetString("due")
			goalID, _ := cmd.Flags().GetUint("goal")

			dueDate, err := parseDateFlag(due)
			if err != nil {
				log.Fatalf("Failed to create todo: %v", err)
			}

			payload := api.TodoPayload{Title: stringPtr(title), DueDate: dueDate}
			if description != "" {
				payload.Description = stringPtr(description)
			}
			if goalID != 0 {
				payload.GoalID = &goalID
			}

			todo, err := api.NewClient().CreateTodo(payload)
			if err != nil {
				log.Fatalf("Failed to create todo: %v", err)
			}

			fmt.Printf("✅ Todo created: [%d] %s\n", todo.ID, todo.Title)
			if todo.DueDate != nil {
				fmt.Printf("📅 Calendar event scheduled for %s\n", formatDate(todo.DueDate))
			}
		},
	}

	cmd.Flags().StringP("description", "d", "", "Todo description")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().Uint("goal", 0, "Goal id to attach the todo to")
	return cmd
}

// todo done
func newTodoDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done [id]",
		Short: "Mark a todo as completed",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 1 {
				fmt.Println("❌ Todo id is required.")
				return
			}
			id, err := parseEntityID(args[0])
			if err != nil {
				log.Fatalf("Failed to complete todo: %v", err)
			}

			todo, err := api.NewClient().UpdateTodo(id, api.TodoPayload{Completed: boolPtr(true)})
			if err != nil {
				log.Fatalf("Failed to complete todo: %v", err)
			}

			fmt.Printf("✅ Todo completed: [%d] %s\n", todo.ID, todo.Title)
		},
	}
}

// todo delete
func newTodoDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete [id]",
		Short:   "Delete a todo",
		Aliases: []string{"rm"},
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 1 {
				fmt.Println("❌ Todo id is required.")
				return
			}
			id, err := parseEntityID(args[0])
			if err != nil {
				log.Fatalf("Failed to delete todo: %v", err)
			}

			if err := api.NewClient().DeleteTodo(id); err != nil {
				log.Fatalf("Failed to delete todo: %v", err)
			}

			fmt.Printf("🗑️  Todo %d deleted\n", id)
		},
	}
}
