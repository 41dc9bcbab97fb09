// Package config loads the bot settings from config.yaml and BOT_ environment
// variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	// DataDir holds the snapshot file. A leading ~ is the home directory.
	DataDir       string `yaml:"data_dir" mapstructure:"data_dir"`
	File          string `yaml:"file" mapstructure:"file"`
	BirthdaysDays int    `yaml:"birthdays_days" mapstructure:"birthdays_days"`
	LogLevel      string `yaml:"log_level" mapstructure:"log_level"`
	// Style is the glamour style used for markdown: auto, dark, light or notty.
	Style string `yaml:"style" mapstructure:"style"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir:       "~/.bot",
		File:          "assistant.json",
		BirthdaysDays: 7,
		LogLevel:      "warn",
		Style:         "auto",
	}
}

// searchPaths returns the directories where config.yaml is looked up, in
// order.
func searchPaths() []string {
	paths := []string{"."}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "bot"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "bot"))
	}
	return paths
}

// Load reads the configuration. A missing config file is not an error: the
// defaults and the environment apply.
func Load() (*Config, error) { return load(searchPaths()...) }

func load(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	// Defaults make every key known to viper, so that the environment can
	// override keys absent from the file.
	v.SetDefault("data_dir", cfg.DataDir)
	v.SetDefault("file", cfg.File)
	v.SetDefault("birthdays_days", cfg.BirthdaysDays)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("style", cfg.Style)

	v.SetEnvPrefix("BOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.File == "" {
		return fmt.Errorf("config: file is required")
	}
	if c.BirthdaysDays < 1 {
		return fmt.Errorf("config: birthdays_days must be positive, got %d", c.BirthdaysDays)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("config: log_level: %w", err)
	}
	switch c.Style {
	case "auto", "dark", "light", "notty":
	default:
		return fmt.Errorf("config: style %q must be auto, dark, light or notty", c.Style)
	}
	return nil
}

// Level returns the log level.
func (c *Config) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.LogLevel)
}

// Path returns the snapshot file: File itself when absolute, or File within
// DataDir.
func (c *Config) Path() string {
	if filepath.IsAbs(c.File) {
		return c.File
	}
	return filepath.Join(expandHome(c.DataDir), c.File)
}

func expandHome(dir string) string {
	if dir != "~" && !strings.HasPrefix(dir, "~/") {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return dir
	}
	return filepath.Join(home, strings.TrimPrefix(dir, "~"))
}
