// Package config loads and saves .nanomarketer/config.json, the single
// source of truth for user settings: the Gemini credential, the detected
// model, and the design-text language.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"nanomarketer/internal/types"
)

// Config holds all user configuration from .nanomarketer/config.json.
type Config struct {
	// GeminiAPIKey is the credential for the Generative Language API.
	GeminiAPIKey string `json:"gemini_api_key,omitempty"`

	// Model is the working model identifier paired with the key, set by
	// auto-detection or chosen from the supported list. Cleared whenever
	// the key changes; a new key requires re-probing.
	Model string `json:"model,omitempty"`

	// Language is the preferred language for on-image design text
	// ("ar" or "en"). Defaults to Arabic, matching the product.
	Language types.Language `json:"language,omitempty"`

	// Logging controls for internal/logging.
	DebugMode bool   `json:"debug_mode,omitempty"`
	Level     string `json:"level,omitempty"`
}

// DefaultPath returns the config path inside the given workspace.
func DefaultPath(workspace string) string {
	return filepath.Join(workspace, ".nanomarketer", "config.json")
}

// Load reads the config file. A missing file yields zero-value config
// without error; the env fallback still applies.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnv()
			cfg.applyDefaults()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if c.GeminiAPIKey == "" {
		c.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
}

func (c *Config) applyDefaults() {
	if c.Language == "" {
		c.Language = types.LanguageArabic
	}
}

// Save writes the config file, creating the directory if needed. The
// file is user-private because it carries the credential.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// SetAPIKey updates the credential. A changed key invalidates the cached
// model identifier so the next use re-probes.
func (c *Config) SetAPIKey(key string) {
	if key != c.GeminiAPIKey {
		c.Model = ""
	}
	c.GeminiAPIKey = key
}
