package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/richard-gotts/task-manager/internal/tasks"
)

var completeCmd = &cobra.Command{
	Use:   "complete <task-number>",
	Short: "Mark one of your tasks as complete",
	Args:  cobra.ExactArgs(1),
	RunE:  runComplete,
}

func runComplete(cmd *cobra.Command, args []string) error {
	s, err := openAuthenticated()
	if err != nil {
		return err
	}

	task, err := s.selectOwnTask(args[0])
	if err != nil {
		return err
	}

	if err := s.tasks.Complete(task.ID); err != nil {
		return err
	}
	if err := s.tasks.Save(); err != nil {
		return err
	}

	fmt.Println("Task marked as complete.")
	return nil
}

// selectOwnTask resolves a listing number to one of the acting user's
// tasks. Numbers are display glue only; the core is addressed by ID.
func (s *session) selectOwnTask(arg string) (tasks.Task, error) {
	pos, err := strconv.Atoi(arg)
	if err != nil {
		return tasks.Task{}, fmt.Errorf("invalid task number %q", arg)
	}
	task, ok := s.tasks.At(pos)
	if !ok {
		return tasks.Task{}, fmt.Errorf("no task with number %d", pos)
	}
	if task.Username != s.user {
		return tasks.Task{}, fmt.Errorf("task %d is not assigned to you", pos)
	}
	return task, nil
}
