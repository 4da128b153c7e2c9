package config

import (
	"fmt"
	"strings"

	"github.com/HaiFongPan/panes-cli/internal/panels"
)

// Validate validates the configuration and returns an error if invalid
func Validate(config *Config) error {
	if err := validateLogConfig(&config.Log); err != nil {
		return fmt.Errorf("log config validation failed: %w", err)
	}

	if err := validatePersistConfig(&config.Persist); err != nil {
		return fmt.Errorf("persist config validation failed: %w", err)
	}

	if config.Persist.Backend == BackendR2 {
		if err := validateR2Config(&config.R2); err != nil {
			return fmt.Errorf("R2 config validation failed: %w", err)
		}
	}

	if err := validateUIConfig(&config.UI); err != nil {
		return fmt.Errorf("ui config validation failed: %w", err)
	}

	if _, err := BuildPanels(config.Panels); err != nil {
		return fmt.Errorf("panels config validation failed: %w", err)
	}

	return nil
}

// BuildPanels validates the declarations and returns the sorted engine panels.
func BuildPanels(decls []PanelConfig) ([]*panels.Panel, error) {
	seen := make(map[string]bool, len(decls))
	list := make([]*panels.Panel, 0, len(decls))
	for _, decl := range decls {
		if strings.TrimSpace(decl.ID) == "" {
			return nil, fmt.Errorf("panel id is required")
		}
		if seen[decl.ID] {
			return nil, fmt.Errorf("duplicate panel id: %s", decl.ID)
		}
		seen[decl.ID] = true

		p, err := panels.NewPanel(decl.PanelConfig())
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}

	sorted := panels.SortPanels(list)
	if err := panels.ValidateGroup(sorted); err != nil {
		return nil, err
	}
	return sorted, nil
}

// validateR2Config validates R2 specific configuration
func validateR2Config(config *R2Config) error {
	if strings.TrimSpace(config.AccountID) == "" {
		return fmt.Errorf("account_id is required")
	}

	if strings.TrimSpace(config.AccessKeyID) == "" {
		return fmt.Errorf("access_key_id is required")
	}

	if strings.TrimSpace(config.AccessKeySecret) == "" {
		return fmt.Errorf("access_key_secret is required")
	}

	if strings.TrimSpace(config.BucketName) == "" {
		return fmt.Errorf("bucket_name is required")
	}

	// Validate bucket name format (simplified S3 bucket name rules)
	if !isValidBucketName(config.BucketName) {
		return fmt.Errorf("invalid bucket_name format: %s", config.BucketName)
	}

	return nil
}

// validateLogConfig validates log configuration
func validateLogConfig(config *LogConfig) error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"fatal": true,
		"panic": true,
	}

	level := strings.ToLower(config.Level)
	if !validLevels[level] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error, fatal, panic)", config.Level)
	}

	validFormats := map[string]bool{
		"text": true,
		"json": true,
	}

	format := strings.ToLower(config.Format)
	if !validFormats[format] {
		return fmt.Errorf("invalid log format: %s (valid: text, json)", config.Format)
	}

	if config.MaxSizeMB < 0 || config.MaxBackups < 0 || config.MaxAgeDays < 0 {
		return fmt.Errorf("log rotation limits must be non-negative")
	}

	return nil
}

// validatePersistConfig validates persistence configuration
func validatePersistConfig(config *PersistConfig) error {
	switch config.Backend {
	case BackendNone, BackendFile, BackendR2, BackendMemory:
	default:
		return fmt.Errorf("invalid backend: %s (valid: none, file, r2, memory)", config.Backend)
	}

	if config.DebounceMS < 0 {
		return fmt.Errorf("debounce_ms must be non-negative, got: %d", config.DebounceMS)
	}

	return nil
}

// validateUIConfig validates user interface configuration
func validateUIConfig(config *UIConfig) error {
	if _, err := panels.ParseDirection(config.Direction); err != nil {
		return err
	}
	return nil
}

// isValidBucketName checks if the bucket name follows basic S3 naming rules
func isValidBucketName(name string) bool {
	if len(name) < 3 || len(name) > 63 {
		return false
	}

	// Must start and end with letter or number
	if !isAlphaNum(name[0]) || !isAlphaNum(name[len(name)-1]) {
		return false
	}

	for i, char := range name {
		if !isAlphaNum(byte(char)) && char != '-' && char != '.' {
			return false
		}

		// Cannot have consecutive periods or period-dash combinations
		if i > 0 {
			prev := name[i-1]
			if char == '.' && (prev == '.' || prev == '-') {
				return false
			}
			if char == '-' && prev == '.' {
				return false
			}
		}
	}

	return true
}

// isAlphaNum checks if a byte is alphanumeric
func isAlphaNum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
