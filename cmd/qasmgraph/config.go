package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFileName is searched from the working directory upward, so a
// repository can pin its preferred settings at its root.
const configFileName = ".qasmgraph.yaml"

// Environment variables consulted for unset flags.
const (
	envFormat   = "QASMGRAPH_FORMAT"
	envLogLevel = "QASMGRAPH_LOG_LEVEL"
)

// cliConfig are the settings a config file may carry. Explicit flags and
// environment variables both override it.
type cliConfig struct {
	Format   string `yaml:"format"`
	LogLevel string `yaml:"log_level"`
}

// findConfigFile walks up from startDir looking for configFileName.
// Returns the file's path, or "" if no directory up to the root has one.
func findConfigFile(startDir string) string {
	dir := startDir
	for {
		path := filepath.Join(dir, configFileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root without finding a config file.
			return ""
		}
		dir = parent
	}
}

// loadConfigFile reads the nearest config file. Having none is fine; a
// malformed one is an error.
func loadConfigFile() (cliConfig, error) {
	var cfg cliConfig

	cwd, err := os.Getwd()
	if err != nil {
		return cfg, fmt.Errorf("getting cwd: %w", err)
	}
	path := findConfigFile(cwd)
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// applyConfigDefaults fills unset flags from the environment, then from the
// nearest config file. Flags given on the command line always win.
func applyConfigDefaults() error {
	cfg, err := loadConfigFile()
	if err != nil {
		return err
	}
	applySetting("format", &flagFormat, os.Getenv(envFormat), cfg.Format)
	applySetting("log-level", &flagLogLevel, os.Getenv(envLogLevel), cfg.LogLevel)
	return nil
}

// applySetting resolves one setting: explicit flag beats environment beats
// config file beats the flag's built-in default.
func applySetting(flagName string, target *string, envValue, fileValue string) {
	if rootCmd.PersistentFlags().Changed(flagName) {
		return
	}
	if envValue != "" {
		*target = envValue
		return
	}
	if fileValue != "" {
		*target = fileValue
	}
}
