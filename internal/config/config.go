// Package config loads the optional sshcopy configuration file.
//
// The config carries defaults that CLI flags override: a default identity
// path for -i, a default port for -p, and the transport binary name.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lukehall/sshcopy/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the per-directory config file name.
	ConfigFileName = ".sshcopy.yaml"
	// GlobalConfigDir is the directory for global config, under $HOME.
	GlobalConfigDir = ".config/sshcopy"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// Config represents the sshcopy configuration file.
type Config struct {
	// Identity is the default identity file path, used when -i is omitted.
	// Supports a leading ~ for the home directory.
	Identity string `yaml:"identity" mapstructure:"identity"`

	// Port is the default transport port. Zero means the transport's own
	// default (22 for ssh).
	Port int `yaml:"port" mapstructure:"port"`

	// SSHCommand is the transport binary to spawn. Defaults to "ssh".
	SSHCommand string `yaml:"ssh_command" mapstructure:"ssh_command"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		SSHCommand: "ssh",
	}
}

// Load reads config from the specified path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found: "+path,
				"Run 'sshcopy init' to create one, or check the --config path")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file: "+path,
			"Check the file is valid YAML")
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Find locates the config file using the search order:
//  1. Explicit path (from --config flag)
//  2. .sshcopy.yaml in the current directory
//  3. ~/.config/sshcopy/config.yaml
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, ConfigFileName)
		if _, err := os.Stat(local); err == nil {
			return local, nil
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(global); err == nil {
			return global, nil
		}
	}

	return "", nil
}

// LoadOrDefault loads config from the found path, or returns defaults if
// no config file exists.
func LoadOrDefault(explicit string) (*Config, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}

	if path == "" {
		return DefaultConfig(), nil
	}

	return Load(path)
}

// Validate checks config values for obvious mistakes.
func Validate(cfg *Config) error {
	if cfg.Port < 0 || cfg.Port > 65535 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Invalid port: %d", cfg.Port),
			"Ports must be between 1 and 65535 (or 0 for the transport default)")
	}
	if cfg.SSHCommand == "" {
		return errors.New(errors.ErrConfig,
			"ssh_command cannot be empty",
			"Remove the setting to use the default (ssh)")
	}
	return nil
}
