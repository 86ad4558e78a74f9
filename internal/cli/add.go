package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/richard-gotts/task-manager/internal/dates"
)

var (
	addOwner       string
	addTitle       string
	addDescription string
	addDue         string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Assign a new task to a user",
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addOwner, "owner", "", "Username the task is assigned to")
	addCmd.Flags().StringVar(&addTitle, "title", "", "Title of the task")
	addCmd.Flags().StringVar(&addDescription, "description", "", "Description of the task")
	addCmd.Flags().StringVar(&addDue, "due", "", "Due date (YYYY-MM-DD)")
	addCmd.MarkFlagRequired("owner")
	addCmd.MarkFlagRequired("title")
	addCmd.MarkFlagRequired("due")
}

func runAdd(cmd *cobra.Command, args []string) error {
	s, err := openAuthenticated()
	if err != nil {
		return err
	}

	due, err := dates.Parse(addDue)
	if err != nil {
		return err
	}

	if _, err := s.tasks.Assign(s.users, addOwner, addTitle, addDescription, due, dates.Today()); err != nil {
		return err
	}
	if err := s.tasks.Save(); err != nil {
		return err
	}

	fmt.Println("Task successfully added.")
	return nil
}
