package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/richard-gotts/task-manager/internal/dates"
)

var (
	editAssignee string
	editDue      string
)

var editCmd = &cobra.Command{
	Use:   "edit <task-number>",
	Short: "Reassign one of your tasks or change its due date",
	Long: `Edits an uncompleted task: --assignee moves it to another registered
user, --due reschedules it. Completed tasks are closed for editing.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editAssignee, "assignee", "", "New username for the task")
	editCmd.Flags().StringVar(&editDue, "due", "", "New due date (YYYY-MM-DD)")
}

func runEdit(cmd *cobra.Command, args []string) error {
	if editAssignee == "" && editDue == "" {
		return errors.New("nothing to edit: pass --assignee and/or --due")
	}

	// Validate the new due date up front so a bad date cannot abort the
	// command between a reassignment and its persistence.
	var due time.Time
	if editDue != "" {
		var err error
		due, err = dates.Parse(editDue)
		if err != nil {
			return err
		}
	}

	s, err := openAuthenticated()
	if err != nil {
		return err
	}

	task, err := s.selectOwnTask(args[0])
	if err != nil {
		return err
	}

	if editAssignee != "" {
		if err := s.tasks.Reassign(s.users, task.ID, editAssignee); err != nil {
			return err
		}
		fmt.Printf("Task reassigned to %s.\n", editAssignee)
	}

	if editDue != "" {
		if err := s.tasks.Reschedule(task.ID, due); err != nil {
			return err
		}
		fmt.Println("Due date successfully updated.")
	}

	return s.tasks.Save()
}
