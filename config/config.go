// Package config holds the settings of the jackfront tool.
// A configuration file is optional, every field has a default.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format represents the configuration file format
type Format int

const (
	// FormatAuto detects the format from the file extension
	FormatAuto Format = iota
	FormatTOML
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	}
	return "unknown"
}

// DetectFormat derives the format from the extension of path.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return FormatAuto, fmt.Errorf("unsupported config file extension %q, use .toml, .yaml or .yml", filepath.Ext(path))
}

// Config holds the complete tool configuration
type Config struct {
	Output  OutputConfig  `toml:"output" yaml:"output"`
	Batch   BatchConfig   `toml:"batch" yaml:"batch"`
	Log     LogConfig     `toml:"log" yaml:"log"`
	Console ConsoleConfig `toml:"console" yaml:"console"`
}

// OutputConfig controls where and how the markup is written
type OutputConfig struct {
	// Dir receives all output files, empty means next to each source file
	Dir       string `toml:"dir" yaml:"dir"`
	Extension string `toml:"extension" yaml:"extension"`
	Indent    string `toml:"indent" yaml:"indent"`
	PadLeaves bool   `toml:"pad_leaves" yaml:"pad_leaves"`
	// Tokens additionally writes the token dump <Name>T.xml
	Tokens bool `toml:"tokens" yaml:"tokens"`
}

// BatchConfig controls how multiple source files are processed
type BatchConfig struct {
	Workers         int  `toml:"workers" yaml:"workers"`
	ContinueOnError bool `toml:"continue_on_error" yaml:"continue_on_error"`
}

// LogConfig holds the structured logging settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// ConsoleConfig holds the settings for user facing status lines
type ConsoleConfig struct {
	Color bool `toml:"color" yaml:"color"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Extension: ".xml",
			Indent:    "  ",
			PadLeaves: true,
		},
		Batch: BatchConfig{
			Workers:         1,
			ContinueOnError: true,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Console: ConsoleConfig{
			Color: true,
		},
	}
}

// Load loads the configuration from a TOML or YAML file.
// Fields missing from the file keep their default value.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data, format)
}

// Parse decodes data in the given format on top of the defaults.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := Default()

	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("cannot parse config of format %s", format)
	}

	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Batch.Workers < 1 {
		return fmt.Errorf("batch.workers must be at least 1, got %d", c.Batch.Workers)
	}
	if !strings.HasPrefix(c.Output.Extension, ".") {
		return fmt.Errorf("output.extension must start with '.', got %q", c.Output.Extension)
	}
	if strings.Trim(c.Output.Indent, " \t") != "" {
		return fmt.Errorf("output.indent may only contain spaces and tabs, got %q", c.Output.Indent)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

func (c *Config) expandEnvVars() {
	c.Output.Dir = os.ExpandEnv(c.Output.Dir)
}
