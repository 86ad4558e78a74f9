// Package cli implements the command surface of the task manager. It
// is a thin dispatcher: each subcommand resolves credentials, calls
// into the core stores, persists, and turns core errors into
// corrective messages. Authorization (the admin-only stats view) lives
// here, not in the core.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	userFlag     string
	passwordFlag string
	verbose      bool
	rootCmd      *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "taskman",
		Short: "taskman - flat-file task tracking",
		Long: `taskman tracks tasks assigned to named accounts, backed by flat
semicolon-delimited text files (user.txt and tasks.txt).

Most commands need credentials; pass them with --user and --password.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "Username to act as")
	rootCmd.PersistentFlags().StringVarP(&passwordFlag, "password", "p", "", "Password for --user")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// Execute runs the root command
func Execute(version string) error {
	// Add subcommands here to ensure proper initialization order
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(mineCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)

	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
