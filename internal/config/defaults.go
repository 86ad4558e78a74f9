package config

import (
	"os"
)

// DefaultConfig returns the default configuration. The default file
// names match the original flat-file layout so an existing data
// directory keeps working without any configuration at all.
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Storage: StorageConfig{
			UserFile: "user.txt",
			TaskFile: "tasks.txt",
		},
		Reports: ReportsConfig{
			TaskOverview: "task_overview.txt",
			UserOverview: "user_overview.txt",
		},
		Bootstrap: BootstrapConfig{
			Username: "admin",
			Password: "password",
		},
		Web: WebConfig{
			Addr: ":8080",
		},
	}
}

// WriteDefault writes a commented starter configuration to a file
func WriteDefault(path string) error {
	content := `# Task manager configuration
version: "1"

# Backing files (flat semicolon-delimited text)
storage:
  user_file: user.txt
  task_file: tasks.txt

# Generated report artifacts
reports:
  task_overview: task_overview.txt
  user_overview: user_overview.txt

# Credential pair seeded into a brand-new user file.
# The bootstrap username is also the administrative account.
bootstrap:
  username: admin
  password: password

# Read-only HTTP reporting surface (taskman serve)
web:
  addr: ":8080"
`
	return os.WriteFile(path, []byte(content), 0644)
}
