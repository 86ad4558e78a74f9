package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/richard-gotts/task-manager/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage taskman configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show merged configuration",
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file paths",
	Run:   runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	out, err := renderConfig(cfg)
	if err != nil {
		return err
	}

	fmt.Println("# Merged configuration (global + working directory)")
	fmt.Println(out)
	return nil
}

func renderConfig(cfg *config.Config) (string, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(data), nil
}

func runConfigPath(cmd *cobra.Command, args []string) {
	home, err := os.UserHomeDir()
	if err == nil {
		fmt.Printf("Global:  %s\n", config.GlobalConfigPath(home))
	}
	fmt.Printf("Working: %s\n", config.ProjectConfigPath())
}
