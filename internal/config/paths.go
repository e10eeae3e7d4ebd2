package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LocalConfigPath is the default per-project config location.
const LocalConfigPath = ".protoforge/config.json"

// GlobalConfigPath returns the user-wide config location,
// ~/.protoforge/config.json.
func GlobalConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(homeDir, ".protoforge", "config.json"), nil
}

// WriteDefault writes a config file populated with the defaults, creating
// parent directories as needed. It refuses to overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(GetDefaults(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling defaults: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
