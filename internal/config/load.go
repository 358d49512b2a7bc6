package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

// DefaultPath resolves the config file location: the VOICELAB_CONFIG env var
// when set, otherwise voicelab.toml under the user config directory.
func DefaultPath() (string, error) {
	if p := os.Getenv("VOICELAB_CONFIG"); p != "" {
		return p, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}

	dir := filepath.Join(configDir, "voicelab")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(dir, "voicelab.toml"), nil
}

// Load reads the config at path. A missing file is not an error: the server
// boots headless on defaults, with the API key taken from the environment.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logrus.Infof("config: no file at %s, using defaults", path)
		return DefaultConfig(), nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat config file %s: %w", path, err)
	}

	logrus.Infof("config: loading configuration from %s", path)

	// Decode over the defaults so omitted keys keep their tuned values.
	config := DefaultConfig()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if config.Providers == nil {
		config.Providers = make(map[string]ProviderConfig)
	}

	return config, nil
}
