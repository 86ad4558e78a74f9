package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/richard-gotts/task-manager/internal/config"
	"github.com/richard-gotts/task-manager/internal/tasks"
	"github.com/richard-gotts/task-manager/internal/users"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file and backing stores in this directory",
	Long: `Writes a commented taskman.yaml starter config (unless one exists),
seeds the user file with the bootstrap credential, and creates an empty
task file.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	path := config.ProjectConfigPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := config.WriteDefault(path); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		fmt.Println("  Created", path)
	} else {
		fmt.Println("  Config already exists, leaving it alone")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := users.EnsureFile(cfg.Storage.UserFile, cfg.Bootstrap.Username, cfg.Bootstrap.Password); err != nil {
		return err
	}
	fmt.Println("  Ensured", cfg.Storage.UserFile)

	if err := tasks.EnsureFile(cfg.Storage.TaskFile); err != nil {
		return err
	}
	fmt.Println("  Ensured", cfg.Storage.TaskFile)

	fmt.Printf("\nReady. Log in with --user %s --password %s\n",
		cfg.Bootstrap.Username, cfg.Bootstrap.Password)
	return nil
}
