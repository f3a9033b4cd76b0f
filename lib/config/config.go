// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the variable [Load] reads the config
// path from.
const EnvironmentVariable = "NBT_CONFIG"

// Config is the configuration for the nbt command.
type Config struct {
	// Output controls how decoded trees are written.
	Output OutputConfig `yaml:"output"`

	// Encode controls how documents are turned back into NBT files.
	Encode EncodeConfig `yaml:"encode"`

	// Input limits what the command will read.
	Input InputConfig `yaml:"input"`

	// Log configures diagnostic logging.
	Log LogConfig `yaml:"log"`
}

// OutputConfig controls decode and dump output.
type OutputConfig struct {
	// Format is the document format: json, yaml, or cbor.
	// Default: json
	Format string `yaml:"format"`

	// Compact emits single-line JSON.
	Compact bool `yaml:"compact"`

	// Color controls styling of dump output: auto, always, or never.
	// Default: auto (color only when stdout is a terminal)
	Color string `yaml:"color"`
}

// EncodeConfig controls encode output.
type EncodeConfig struct {
	// Compression wraps encoded output: none, gzip, zlib, zstd, or lz4.
	// Default: gzip
	Compression string `yaml:"compression"`
}

// InputConfig limits input handling.
type InputConfig struct {
	// MaxDecompressedSize caps the size of a decompressed input in
	// bytes. Default: 1 GiB
	MaxDecompressedSize int64 `yaml:"max_decompressed_size"`

	// AllowTrailing accepts bytes after the root tag instead of
	// reporting them as an error.
	AllowTrailing bool `yaml:"allow_trailing"`
}

// LogConfig configures diagnostic logging.
type LogConfig struct {
	// Level is the minimum level: debug, info, warn, or error.
	// Default: warn
	Level string `yaml:"level"`

	// Format is text, json, or auto (text on a terminal).
	// Default: auto
	Format string `yaml:"format"`

	// File receives log output instead of stderr when set.
	File string `yaml:"file"`
}

// Default returns the default configuration. Loaded files are merged
// over it.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "json",
			Color:  "auto",
		},
		Encode: EncodeConfig{
			Compression: "gzip",
		},
		Input: InputConfig{
			MaxDecompressedSize: 1 << 30,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "auto",
		},
	}
}

// Load loads configuration from the file named by NBT_CONFIG. It
// fails when the variable is not set.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your nbt.yaml config file, or use --config flag", EnvironmentVariable)
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path. Unknown
// keys are rejected so that typos do not silently fall back to
// defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	cfg.expandVariables()
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil {
		// An empty file decodes to io.EOF and leaves the defaults.
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}
	c.Log.File = expandVars(c.Log.File, vars)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} patterns.
func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Provided vars first, then the environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

var (
	outputFormats = []string{"json", "yaml", "yml", "cbor"}
	colorModes    = []string{"auto", "always", "never"}
	compressions  = []string{"none", "gzip", "zlib", "zstd", "lz4"}
	logLevels     = []string{"debug", "info", "warn", "error"}
	logFormats    = []string{"auto", "text", "json"}
)

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains(outputFormats, c.Output.Format) {
		errs = append(errs, fmt.Errorf("output.format %q must be one of: %v", c.Output.Format, outputFormats))
	}
	if !slices.Contains(colorModes, c.Output.Color) {
		errs = append(errs, fmt.Errorf("output.color %q must be one of: %v", c.Output.Color, colorModes))
	}
	if !slices.Contains(compressions, c.Encode.Compression) {
		errs = append(errs, fmt.Errorf("encode.compression %q must be one of: %v", c.Encode.Compression, compressions))
	}
	if c.Input.MaxDecompressedSize <= 0 {
		errs = append(errs, fmt.Errorf("input.max_decompressed_size must be positive, got %d", c.Input.MaxDecompressedSize))
	}
	if !slices.Contains(logLevels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level %q must be one of: %v", c.Log.Level, logLevels))
	}
	if !slices.Contains(logFormats, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format %q must be one of: %v", c.Log.Format, logFormats))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// EnsurePaths creates the directory holding the log file, if one is
// configured.
func (c *Config) EnsurePaths() error {
	if c.Log.File == "" {
		return nil
	}
	directory := filepath.Dir(c.Log.File)
	if err := os.MkdirAll(directory, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", directory, err)
	}
	return nil
}
