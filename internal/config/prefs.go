package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds UI preferences that tailview writes back on change.
type Prefs struct {
	Theme string `toml:"theme"`
	// Follow pins the log view to the newest entry.
	Follow bool `toml:"follow"`
}

const (
	defaultPrefsPath = "~/.config/tailview/prefs.toml"
	defaultTheme     = "Dracula"
)

// DefaultPrefsPath returns the default preferences file location.
func DefaultPrefsPath() string {
	return defaultPrefsPath
}

// DefaultPrefs returns the preferences used when none are stored.
func DefaultPrefs() Prefs {
	return Prefs{Theme: defaultTheme, Follow: true}
}

// LoadPrefs reads preferences from path. Any problem degrades to defaults.
func LoadPrefs(path string) Prefs {
	resolved, err := resolvePrefsPath(path)
	if err != nil {
		return DefaultPrefs()
	}

	bytes, err := os.ReadFile(resolved)
	if err != nil {
		return DefaultPrefs()
	}

	prefs := DefaultPrefs()
	if err := toml.Unmarshal(bytes, &prefs); err != nil {
		return DefaultPrefs()
	}
	if strings.TrimSpace(prefs.Theme) == "" {
		prefs.Theme = defaultTheme
	}
	return prefs
}

// SavePrefs writes preferences to path, creating directories as needed.
func SavePrefs(path string, p Prefs) error {
	resolved, err := resolvePrefsPath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePrefsPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}
