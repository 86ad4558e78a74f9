package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const configName = "taskman.yaml"

// Load loads and merges configuration from global and working-directory
// sources. Missing files are not an error; defaults apply.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, nil // Return defaults if no home dir
	}

	cwd, err := os.Getwd()
	if err != nil {
		return cfg, nil // Return defaults if no cwd
	}

	// Global config first
	if err := loadFile(GlobalConfigPath(home), cfg); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	// Working-directory config overrides global
	if err := loadFile(filepath.Join(cwd, configName), cfg); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(cfg)
}

// GlobalConfigPath returns the path to the global config file
func GlobalConfigPath(home string) string {
	return filepath.Join(home, ".taskman", configName)
}

// ProjectConfigPath returns the path to the working-directory config file
func ProjectConfigPath() string {
	cwd, _ := os.Getwd()
	return filepath.Join(cwd, configName)
}
