package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/richard-gotts/task-manager/internal/users"
)

var registerCmd = &cobra.Command{
	Use:   "register <username> <password>",
	Short: "Register a new user",
	Args:  cobra.ExactArgs(2),
	RunE:  runRegister,
}

func runRegister(cmd *cobra.Command, args []string) error {
	s, err := openAuthenticated()
	if err != nil {
		return err
	}

	newUser, newPassword := args[0], args[1]
	if newUser == "" {
		return errors.New("username must not be empty")
	}

	if err := s.users.Register(newUser, newPassword); err != nil {
		if errors.Is(err, users.ErrExists) {
			return fmt.Errorf("already in use - please choose a different username: %q", newUser)
		}
		return err
	}

	fmt.Println("New user added.")
	return nil
}
