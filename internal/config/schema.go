// Package config loads the task manager configuration: where the
// backing files and generated reports live, the bootstrap credential,
// and the web listen address.
package config

// Config represents the full task manager configuration
type Config struct {
	Version string `yaml:"version" mapstructure:"version"`

	// Storage locations for the two backing files
	Storage StorageConfig `yaml:"storage" mapstructure:"storage"`

	// Report output locations
	Reports ReportsConfig `yaml:"reports" mapstructure:"reports"`

	// Bootstrap credential written into a brand-new user file; the
	// bootstrap username is also the administrative account
	Bootstrap BootstrapConfig `yaml:"bootstrap" mapstructure:"bootstrap"`

	// Web reporting surface
	Web WebConfig `yaml:"web" mapstructure:"web"`
}

// StorageConfig locates the flat backing files
type StorageConfig struct {
	UserFile string `yaml:"user_file" mapstructure:"user_file"`
	TaskFile string `yaml:"task_file" mapstructure:"task_file"`
}

// ReportsConfig locates the generated report artifacts
type ReportsConfig struct {
	TaskOverview string `yaml:"task_overview" mapstructure:"task_overview"`
	UserOverview string `yaml:"user_overview" mapstructure:"user_overview"`
}

// BootstrapConfig holds the default credential pair for a fresh store
type BootstrapConfig struct {
	Username string `yaml:"username" mapstructure:"username"`
	Password string `yaml:"password" mapstructure:"password"`
}

// WebConfig configures the read-only HTTP reporting server
type WebConfig struct {
	Addr string `yaml:"addr" mapstructure:"addr"`
}
