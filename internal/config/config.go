package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Department struct {
		Name string `yaml:"name" env:"DEPARTMENT_NAME"`
		Code string `yaml:"code" env:"DEPARTMENT_CODE"`
	} `yaml:"department"`

	Records struct {
		EnrollmentLimit int `yaml:"enrollment_limit" env:"RECORDS_ENROLLMENT_LIMIT"`
	} `yaml:"records"`

	Seed struct {
		CatalogPath string `yaml:"catalog_path" env:"SEED_CATALOG_PATH"`
	} `yaml:"seed"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables.
// A missing file is not an error; defaults and environment still apply.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			file, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}

			if err := yaml.Unmarshal(file, config); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Department.Name = "Computer Science"
	config.Department.Code = "CS"

	config.Records.EnrollmentLimit = 5

	config.Logging.Level = "info"
	config.Logging.Format = "text"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if strings.TrimSpace(config.Department.Name) == "" {
		return fmt.Errorf("department name is required")
	}

	if config.Records.EnrollmentLimit < 1 {
		return fmt.Errorf("records enrollment limit must be at least 1, got %d", config.Records.EnrollmentLimit)
	}

	switch strings.ToLower(config.Logging.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("unsupported logging format %q", config.Logging.Format)
	}

	return nil
}
