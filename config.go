package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = ".verprompt.yaml"

// Config holds the defaults that can be set in a config file.
// Command-line flags and environment variables take precedence.
type Config struct {
	Format   string `yaml:"format,omitempty"`
	LogLevel string `yaml:"logLevel,omitempty"`
}

// LoadConfig reads and parses a config file from the given path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(string(data))
}

// ParseConfig parses YAML config content.
func ParseConfig(content string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal([]byte(content), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Format != "" {
		if _, err := parseOutputFormat(c.Format); err != nil {
			return err
		}
	}
	if c.LogLevel != "" {
		if _, err := parseLogLevel(c.LogLevel); err != nil {
			return err
		}
	}
	return nil
}

// resolveConfig merges the config file with the command's flags. An explicit
// --config path must exist; the default file is optional.
func resolveConfig(cmd *cli.Command) (Config, error) {
	path := cmd.String("config")
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	file, err := LoadConfig(path)
	if err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
		file = &Config{}
	}

	cfg := Config{
		Format:   cmd.String("format"),
		LogLevel: cmd.String("log-level"),
	}
	if !cmd.IsSet("format") && file.Format != "" {
		cfg.Format = file.Format
	}
	if !cmd.IsSet("log-level") && file.LogLevel != "" {
		cfg.LogLevel = file.LogLevel
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
