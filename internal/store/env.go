package store

import "github.com/kelseyhightower/envconfig"

// Settings are environment overrides, decoded from BURROW_* variables.
type Settings struct {
	// ConfigDir overrides the default ~/.burrow location (BURROW_CONFIG_DIR).
	ConfigDir string `envconfig:"CONFIG_DIR"`
	// DebugLog, when set, enables the TUI debug log at the given path
	// (BURROW_DEBUG_LOG).
	DebugLog string `envconfig:"DEBUG_LOG"`
}

func LoadSettings() (Settings, error) {
	var s Settings
	if err := envconfig.Process("burrow", &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}
