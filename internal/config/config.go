package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the protoforge CLI and dashboard configuration.
// It is loaded here and handed to the pipeline as explicit options; the
// generation core never reads configuration on its own.
type Configuration struct {
	OutputDir            string `koanf:"output_dir" validate:"required"`
	StateDir             string `koanf:"state_dir" validate:"required"`
	Provider             string `koanf:"provider" validate:"required,oneof=openai gemini"`
	Model                string `koanf:"model"`
	MaxRetries           int    `koanf:"max_retries" validate:"min=1,max=10"`
	Timeout              int    `koanf:"timeout" validate:"omitempty,min=1,max=3600"` // seconds per provider attempt
	ShowProgress         bool   `koanf:"show_progress"`          // Show spinners during provider calls
	SkipConfirmations    bool   `koanf:"skip_confirmations"`     // Skip overwrite prompts (also PROTOFORGE_YES env var)
	ArchiveAfterGenerate bool   `koanf:"archive_after_generate"` // Zip every generated project automatically
	ServeAddr            string `koanf:"serve_addr" validate:"required"` // Dashboard listen address
}

// Load loads configuration from global, local, and environment sources
// Priority: Environment variables > Local config > Global config > Defaults
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	// Apply defaults first
	defaults := GetDefaults()
	for key, value := range defaults {
		k.Set(key, value)
	}

	// Load global config if it exists
	if globalPath, err := GlobalConfigPath(); err == nil {
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	// Load local config if it exists
	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	// Override with environment variables (highest priority)
	k.Load(env.Provider("PROTOFORGE_", ".", envTransform), nil)

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Expand home directory in paths
	cfg.OutputDir = expandHomePath(cfg.OutputDir)
	cfg.StateDir = expandHomePath(cfg.StateDir)

	// Handle PROTOFORGE_YES as an alias for skip_confirmations
	if os.Getenv("PROTOFORGE_YES") != "" {
		cfg.SkipConfirmations = true
	}

	return &cfg, nil
}

// envTransform converts environment variable names to config keys
// Example: PROTOFORGE_MAX_RETRIES -> max_retries
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "PROTOFORGE_"))
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
