package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/richard-gotts/task-manager/internal/dates"
	"github.com/richard-gotts/task-manager/internal/tasks"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tasks",
	RunE:  runList,
}

var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List the tasks assigned to you",
	RunE:  runMine,
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := openAuthenticated()
	if err != nil {
		return err
	}

	if s.tasks.Len() == 0 {
		fmt.Println("\nThere are no tasks currently.")
		return nil
	}

	for pos, task := range s.tasks.All() {
		printTask(pos, task)
	}
	return nil
}

func runMine(cmd *cobra.Command, args []string) error {
	s, err := openAuthenticated()
	if err != nil {
		return err
	}

	mine := 0
	// Positions are global file positions so they line up with the
	// numbers accepted by complete and edit.
	for pos, task := range s.tasks.All() {
		if task.Username != s.user {
			continue
		}
		printTask(pos, task)
		mine++
	}

	if mine == 0 {
		fmt.Println("\nYou have no tasks assigned.")
	}
	return nil
}

// printTask renders the task block shown in listings, headed by the
// task's position number.
func printTask(pos int, t tasks.Task) {
	var b strings.Builder
	fmt.Fprintf(&b, "Task: \t\t %s\n", t.Title)
	fmt.Fprintf(&b, "Assigned to: \t %s\n", t.Username)
	fmt.Fprintf(&b, "Date Assigned: \t %s\n", dates.Format(t.AssignedDate))
	fmt.Fprintf(&b, "Due Date: \t %s\n", dates.Format(t.DueDate))
	completed := "No"
	if t.Completed {
		completed = "Yes"
	}
	fmt.Fprintf(&b, "Completed: \t %s\n", completed)
	fmt.Fprintf(&b, "Task Description: \n %s", t.Description)

	fmt.Println(strings.Repeat("_ ", 50))
	fmt.Printf("\nTask ID: %d\n%s\n", pos, b.String())
	fmt.Println(strings.Repeat("_ ", 50))
}
