package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// Storage backends
const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// DefaultWindowWeeks is the seed width of the weekday-rule date window
// when the config does not override it.
const DefaultWindowWeeks = 4

// Config represents the application configuration
type Config struct {
	StorageBackend string `yaml:"storageBackend" validate:"required,oneof=postgres sqlite"`
	DatabaseURL    string `yaml:"databaseURL,omitempty"`
	SQLitePath     string `yaml:"sqlitePath,omitempty"`

	DefaultOrgID       string `yaml:"defaultOrgID,omitempty" validate:"omitempty,uuid"`
	DefaultWindowWeeks int    `yaml:"defaultWindowWeeks,omitempty" validate:"omitempty,min=1"`

	// BlackoutRules are rrule strings naming dates that must never be
	// scheduled (e.g. holiday closures).
	BlackoutRules []string `yaml:"blackoutRules,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// LoadWithEnv loads and validates the configuration for the given
// environment, from rota_admin_config.<env>.yaml
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(fmt.Sprintf("rota_admin_config.%s.yaml", env))
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}
	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.DefaultWindowWeeks == 0 {
		cfg.DefaultWindowWeeks = DefaultWindowWeeks
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct, the backend connection
// settings, and the syntax of each blackout rule
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	switch cfg.StorageBackend {
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("config validation failed: databaseURL is required for the postgres backend")
		}
	case BackendSQLite:
		if cfg.SQLitePath == "" {
			return fmt.Errorf("config validation failed: sqlitePath is required for the sqlite backend")
		}
	}

	for i, rule := range cfg.BlackoutRules {
		if _, err := rrule.StrToRRule(rule); err != nil {
			return fmt.Errorf("invalid rrule in blackoutRules[%d]: %w", i, err)
		}
	}

	return nil
}

// findConfigFile searches for the named config file in the current
// directory and then the home directory
func findConfigFile(name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homePath := filepath.Join(homeDir, name)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}

	return "", fmt.Errorf("config file %s not found in current directory or home directory", name)
}
