package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/HaiFongPan/panes-cli/internal/panels"
)

// Config holds the complete application configuration
type Config struct {
	R2      R2Config      `mapstructure:"r2"`
	Log     LogConfig     `mapstructure:"log"`
	Persist PersistConfig `mapstructure:"persist"`
	UI      UIConfig      `mapstructure:"ui"`
	Panels  []PanelConfig `mapstructure:"panels"`
}

// R2Config holds R2/S3 specific configuration
type R2Config struct {
	AccountID       string `mapstructure:"account_id"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	AccessKeySecret string `mapstructure:"access_key_secret"`
	BucketName      string `mapstructure:"bucket_name"`
	Region          string `mapstructure:"region"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// Persistence backends
const (
	BackendNone   = "none"
	BackendFile   = "file"
	BackendR2     = "r2"
	BackendMemory = "memory"
)

// PersistConfig selects where layouts are saved
type PersistConfig struct {
	Backend    string `mapstructure:"backend"`
	Dir        string `mapstructure:"dir"`
	Prefix     string `mapstructure:"prefix"`
	DebounceMS int    `mapstructure:"debounce_ms"`
}

// UIConfig holds user interface configuration
type UIConfig struct {
	Direction  string `mapstructure:"direction"`
	AutoSaveID string `mapstructure:"auto_save_id"`
	ShowSizes  bool   `mapstructure:"show_sizes"`
}

// PanelConfig declares one panel of the group
type PanelConfig struct {
	ID          string   `mapstructure:"id"`
	Title       string   `mapstructure:"title"`
	Order       int      `mapstructure:"order"`
	MinSize     *float64 `mapstructure:"min_size"`
	MaxSize     *float64 `mapstructure:"max_size"`
	DefaultSize *float64 `mapstructure:"default_size"`
	Collapsible bool     `mapstructure:"collapsible"`
}

// PanelConfig converts the declaration into an engine panel config.
func (p PanelConfig) PanelConfig() panels.Config {
	return panels.Config{
		ID:          p.ID,
		Order:       p.Order,
		MinSize:     p.MinSize,
		MaxSize:     p.MaxSize,
		DefaultSize: p.DefaultSize,
		Collapsible: p.Collapsible,
	}
}

// DefaultPanels is the group shown when the config declares none.
func DefaultPanels() []PanelConfig {
	return []PanelConfig{
		{ID: "left", Title: "Left", Order: 1, Collapsible: true, MinSize: panels.Size(15)},
		{ID: "center", Title: "Center", Order: 2, MinSize: panels.Size(20)},
		{ID: "right", Title: "Right", Order: 3, Collapsible: true, MinSize: panels.Size(15)},
	}
}

// Load loads configuration from multiple sources with priority:
// 1. Command line flags (highest)
// 2. Environment variables
// 3. Configuration file
// 4. Defaults (lowest)
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Set environment variable prefix
	v.SetEnvPrefix("PANESCLI")
	v.AutomaticEnv()

	// Environment variable mappings
	v.BindEnv("r2.account_id", "PANESCLI_ACCOUNT_ID")
	v.BindEnv("r2.access_key_id", "PANESCLI_ACCESS_KEY_ID")
	v.BindEnv("r2.access_key_secret", "PANESCLI_ACCESS_KEY_SECRET")
	v.BindEnv("r2.bucket_name", "PANESCLI_BUCKET_NAME")
	v.BindEnv("r2.region", "PANESCLI_REGION")
	v.BindEnv("log.level", "PANESCLI_LOG_LEVEL")
	v.BindEnv("log.format", "PANESCLI_LOG_FORMAT")
	v.BindEnv("log.file", "PANESCLI_LOG_FILE")
	v.BindEnv("persist.backend", "PANESCLI_PERSIST_BACKEND")
	v.BindEnv("persist.dir", "PANESCLI_PERSIST_DIR")
	v.BindEnv("persist.prefix", "PANESCLI_PERSIST_PREFIX")
	v.BindEnv("persist.debounce_ms", "PANESCLI_PERSIST_DEBOUNCE_MS")
	v.BindEnv("ui.direction", "PANESCLI_UI_DIRECTION")
	v.BindEnv("ui.auto_save_id", "PANESCLI_UI_AUTO_SAVE_ID")
	v.BindEnv("ui.show_sizes", "PANESCLI_UI_SHOW_SIZES")

	// Configuration file handling
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")

		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.panes-cli")
		v.AddConfigPath("/etc/panes-cli/")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is not an error - we can use defaults and env vars
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if len(config.Panels) == 0 {
		config.Panels = DefaultPanels()
	}

	if err := Validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	// R2 defaults
	v.SetDefault("r2.region", "auto")

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("log.compress", false)

	// Persistence defaults
	v.SetDefault("persist.backend", BackendFile)
	v.SetDefault("persist.prefix", "layouts/")
	v.SetDefault("persist.debounce_ms", 100)

	// UI defaults
	v.SetDefault("ui.direction", "horizontal")
	v.SetDefault("ui.auto_save_id", "default")
	v.SetDefault("ui.show_sizes", true)
}

// GetDefaultConfigPath returns the default configuration file path
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./config.toml"
	}
	return filepath.Join(homeDir, ".panes-cli", "config.toml")
}
