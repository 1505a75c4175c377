package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings tailview reads from its TOML file.
type Config struct {
	APIBind string
	DiagLog string // empty disables the diagnostic log
	Verbose bool
}

const (
	defaultConfigPath = "~/.config/tailview/config.toml"
	defaultDiagLog    = "~/.local/state/tailview/tailview.log"
	defaultAPIBind    = "127.0.0.1:21932"

	// diagDisabled turns the diagnostic log off when used as diag_log.
	diagDisabled = "-"
)

// Load locates and parses the tailview config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{APIBind: defaultAPIBind, DiagLog: mustExpand(defaultDiagLog)}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBind string `toml:"api_bind"`
		DiagLog string `toml:"diag_log"`
		Verbose bool   `toml:"verbose"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if bind := strings.TrimSpace(raw.APIBind); bind != "" {
		cfg.APIBind = bind
	}

	switch diagLog := strings.TrimSpace(raw.DiagLog); diagLog {
	case "":
	case diagDisabled:
		cfg.DiagLog = ""
	default:
		cfg.DiagLog = mustExpand(diagLog)
	}

	cfg.Verbose = raw.Verbose
	return cfg, nil
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return defaultConfigPath
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
