package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const configFileName = "config.json"

// GlobalConfig holds user preferences persisted next to the data file.
type GlobalConfig struct {
	// ArchivedDescendants decides whether the active workspace view prunes
	// the whole subtree under an archived workspace ("hide", the default)
	// or keeps the non-archived descendants visible ("show").
	ArchivedDescendants string `json:"archivedDescendants,omitempty"`

	// TUI holds optional preferences for the interactive TUI.
	TUI *TUIConfig `json:"tui,omitempty"`
}

type TUIConfig struct {
	// Glyphs selects the status glyph set ("unicode", "ascii").
	Glyphs string `json:"glyphs,omitempty"`
}

// ArchivedPolicy maps the config value onto a traversal policy.
func (c *GlobalConfig) ArchivedPolicy() ArchivedPolicy {
	if c != nil && strings.EqualFold(strings.TrimSpace(c.ArchivedDescendants), "show") {
		return ArchivedShowDescendants
	}
	return ArchivedHideSubtree
}

// ConfigDir returns the directory holding the data and config files.
func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.burrow).
	settings, err := LoadSettings()
	if err == nil && strings.TrimSpace(settings.ConfigDir) != "" {
		return settings.ConfigDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".burrow"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

func LoadConfig() (*GlobalConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &GlobalConfig{}, nil
		}
		return nil, err
	}
	var cfg GlobalConfig
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func SaveConfig(cfg *GlobalConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return atomicWriteFile(dir, "config-*.json.tmp", path, b, 0o644)
}
