package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Sharkmare/SCP-DOC/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidMode     = errors.New("invalid header mode")
)

// Config holds default rendering options. Flags override config values.
type Config struct {
	Style string `yaml:"style"` // Embedded style name (empty = default style)
	Mode  string `yaml:"mode"`  // Header mode override: "classic" or "acs" (empty = record decides)
	CSS   string `yaml:"css"`   // Path to an extra CSS file (empty = none)
}

// DefaultConfig returns a neutral configuration: the record decides the
// header mode and the default style applies.
func DefaultConfig() *Config {
	return &Config{}
}

// resolveConfig loads the config file when requested and applies flag
// overrides on top.
func resolveConfig(flags *cliFlags) (*Config, error) {
	cfg := DefaultConfig()
	if flags.config != "" {
		loaded, err := LoadConfig(flags.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flags.style != "" {
		cfg.Style = flags.style
	}
	if flags.mode != "" {
		cfg.Mode = flags.mode
	}
	if flags.cssPath != "" {
		cfg.CSS = flags.cssPath
	}

	switch cfg.Mode {
	case "", "classic", "acs":
	default:
		return nil, fmt.Errorf("%w: %q (must be classic or acs)", ErrInvalidMode, cfg.Mode)
	}

	return cfg, nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, then the user config dir
// under scpdoc/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "scpdoc", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists reports whether path exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
