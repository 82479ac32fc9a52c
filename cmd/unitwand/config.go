// Config loading for the unitwand CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/unitwand/internal/paths"
)

// errConfig marks configuration problems so main can map them to the system
// exit code.
var errConfig = errors.New("configuration error")

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyDefaultParser = "default_parser"
	cfgKeyDefaultForm   = "default_form"
	cfgKeyStandardUnits = "standard_units"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Unitwand CLI configuration

# Library used to parse quantity strings (gonum is the only parser-capable form)
default_parser: gonum

# Form returned when --to is not given: string, gonum, k8s.resource, martinlindhe
default_form: gonum

# Standard units used by the standardize command, one per dimension
# standard_units:
#   - nm
#   - ps
#   - kJ
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on first
// run. A missing config.yaml is not an error.
func loadConfig(configDirFlag string) (*viper.Viper, error) {
	configDir, err := paths.ResolveConfigDir(configDirFlag)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve config dir: %w", errConfig, err)
	}

	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("%w: ensure config dir: %w", errConfig, err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("%w: ensure default config: %w", errConfig, err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyDefaultParser, "gonum")
	v.SetDefault(cfgKeyDefaultForm, "gonum")
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Missing config.yaml is not an error.
			return v, nil
		}
		return nil, fmt.Errorf("%w: read config: %w", errConfig, err)
	}

	return v, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
