// Package config loads application configuration from environment
// variables with an optional YAML file overlay.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied when neither the environment nor a config file says
// otherwise.
const (
	DefaultImageModel      = "gemini-2.5-flash-image"
	DefaultTextModel       = "gemini-2.5-flash"
	DefaultOutputDir       = "./toybox_images"
	DefaultHistorySize     = 10
	DefaultEnhanceCacheTTL = 30 * time.Minute
)

// Config holds the configuration for the toybox application.
type Config struct {
	// Required
	APIKey string `yaml:"api_key"`

	// Optional with defaults
	ImageModel      string        `yaml:"image_model"`
	TextModel       string        `yaml:"text_model"`
	OutputDir       string        `yaml:"output_dir"`
	HistorySize     int           `yaml:"history_size"`
	EnhanceCacheTTL time.Duration `yaml:"enhance_cache_ttl"`
	Debug           bool          `yaml:"debug"`
}

// Load reads configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		APIKey:          os.Getenv("GEMINI_API_KEY"),
		ImageModel:      getEnv("TOYBOX_IMAGE_MODEL", DefaultImageModel),
		TextModel:       getEnv("TOYBOX_TEXT_MODEL", DefaultTextModel),
		OutputDir:       getEnv("TOYBOX_OUTPUT_DIR", DefaultOutputDir),
		HistorySize:     DefaultHistorySize,
		EnhanceCacheTTL: DefaultEnhanceCacheTTL,
	}

	if size := os.Getenv("TOYBOX_HISTORY_SIZE"); size != "" {
		if val, err := strconv.Atoi(size); err == nil {
			cfg.HistorySize = val
		}
	}

	if debug := os.Getenv("TOYBOX_DEBUG"); debug != "" {
		if val, err := strconv.ParseBool(debug); err == nil {
			cfg.Debug = val
		}
	}

	return cfg
}

// LoadFile overlays values from a YAML file onto the config. Fields absent
// from the file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is usable. The API key is not
// checked here: its absence is reported by the provider at construction so
// commands that never contact the service still work.
func (c *Config) Validate() error {
	if c.ImageModel == "" {
		return fmt.Errorf("image model is required")
	}
	if c.TextModel == "" {
		return fmt.Errorf("text model is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	if c.HistorySize <= 0 {
		return fmt.Errorf("history size must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
