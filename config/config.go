package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Run     RunConfig     `mapstructure:"run"`
	Render  RenderConfig  `mapstructure:"render"`
	Wizard  WizardConfig  `mapstructure:"wizard"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// RunConfig selects what the tool does on startup
type RunConfig struct {
	Mode string `mapstructure:"mode"`
}

// RenderConfig holds renderer configuration
type RenderConfig struct {
	Input      string `mapstructure:"input"`
	RootDir    string `mapstructure:"root_dir"`
	Format     string `mapstructure:"format"`
	ToTempFile bool   `mapstructure:"to_temp_file"`
}

// WizardConfig holds init wizard configuration
type WizardConfig struct {
	OutputDir         string   `mapstructure:"output_dir"`
	AllowedExtensions []string `mapstructure:"allowed_extensions"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Mode  string `mapstructure:"mode"`
	Level string `mapstructure:"level"`
}

// New loads and validates the application configuration
func New() (*Config, error) {
	viper.SetConfigName("confbox")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	viper.SetDefault("run.mode", "render")
	viper.SetDefault("render.input", "config.yml")
	viper.SetDefault("render.root_dir", ".")
	viper.SetDefault("render.format", "yaml")
	viper.SetDefault("render.to_temp_file", false)
	viper.SetDefault("wizard.output_dir", ".")
	viper.SetDefault("wizard.allowed_extensions", []string{".yml", ".yaml"})
	viper.SetDefault("logging.mode", "production")
	viper.SetDefault("logging.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// If config file not found, continue with defaults
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return &config, nil
}

// validate ensures the configuration is valid
func (c *Config) validate() error {
	if c.Run.Mode != "render" && c.Run.Mode != "init" {
		return fmt.Errorf("invalid run.mode: %s, must be 'render' or 'init'", c.Run.Mode)
	}

	if c.Render.Format != "yaml" && c.Render.Format != "json" {
		return fmt.Errorf("invalid render.format: %s, must be 'yaml' or 'json'", c.Render.Format)
	}

	if c.Render.RootDir == "" {
		return fmt.Errorf("render.root_dir must not be empty")
	}

	if len(c.Wizard.AllowedExtensions) == 0 {
		return fmt.Errorf("wizard.allowed_extensions must not be empty")
	}
	for _, ext := range c.Wizard.AllowedExtensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("invalid wizard.allowed_extensions entry: %s, must start with '.'", ext)
		}
	}

	if c.Logging.Mode != "production" && c.Logging.Mode != "development" {
		return fmt.Errorf("invalid logging.mode: %s, must be 'production' or 'development'", c.Logging.Mode)
	}

	supportedLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !supportedLevels[c.Logging.Level] {
		return fmt.Errorf("invalid logging.level: %s", c.Logging.Level)
	}

	return nil
}
