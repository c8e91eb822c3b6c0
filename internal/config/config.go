package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the config file location. It may also be set in a
// .env file in the working directory.
const EnvConfigPath = "PROFCALC_CONFIG"

type Config struct {
	WeeksPerMonth float64  `yaml:"WeeksPerMonth"`
	WorkDays      []string `yaml:"WorkDays"`
	Currency      string   `yaml:"Currency"`

	// Export settings
	OutputDir     string `yaml:"OutputDir"`
	FileName      string `yaml:"FileName"`
	DefaultFormat string `yaml:"DefaultFormat"`

	TimeZone string `yaml:"TimeZone"`

	path string
}

func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the YAML file at path. A missing file yields the defaults.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := getDefaultConfig()
			cfg.path = path
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// Apply defaults for missing values
	defaults := getDefaultConfig()
	if cfg.WeeksPerMonth == 0 {
		cfg.WeeksPerMonth = defaults.WeeksPerMonth
	}
	if len(cfg.WorkDays) == 0 {
		cfg.WorkDays = defaults.WorkDays
	}
	if cfg.Currency == "" {
		cfg.Currency = defaults.Currency
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = defaults.OutputDir
	}
	if cfg.FileName == "" {
		cfg.FileName = defaults.FileName
	}
	if cfg.DefaultFormat == "" {
		cfg.DefaultFormat = defaults.DefaultFormat
	}

	// Expand ~ in output dir
	if strings.HasPrefix(cfg.OutputDir, "~/") {
		home, _ := os.UserHomeDir()
		cfg.OutputDir = filepath.Join(home, cfg.OutputDir[2:])
	}

	cfg.path = path
	return &cfg, nil
}

// Save writes cfg back to the file it was loaded from.
func Save(cfg *Config) error {
	return SaveTo(cfg.File(), cfg)
}

func SaveTo(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Path returns $PROFCALC_CONFIG, or ~/.profcalc.yaml.
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".profcalc.yaml")
}

// File is the path cfg was loaded from, or the default path.
func (c *Config) File() string {
	if c.path == "" {
		return Path()
	}
	return c.path
}

func getDefaultConfig() *Config {
	return &Config{
		WeeksPerMonth: 4.5,
		WorkDays:      []string{"Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado"},
		Currency:      "R$",
		OutputDir:     ".",
		FileName:      "relatorio-salarial",
		DefaultFormat: "pdf",
	}
}

// GetLocation returns the configured time zone, falling back to local time.
func (c *Config) GetLocation() *time.Location {
	if c.TimeZone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Now returns the current time in the configured time zone.
func (c *Config) Now() time.Time {
	return time.Now().In(c.GetLocation())
}

// OutputPath joins the output dir, file name and extension.
func (c *Config) OutputPath(ext string) string {
	return filepath.Join(c.OutputDir, c.FileName+"."+ext)
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error: %s - %s", e.Field, e.Message)
}

// Validate checks the configuration for common issues
func (c *Config) Validate() error {
	if c.WeeksPerMonth <= 0 {
		return &ValidationError{Field: "WeeksPerMonth", Message: "Weeks per month must be positive"}
	}

	if len(c.WorkDays) == 0 {
		return &ValidationError{Field: "WorkDays", Message: "At least one work day is required"}
	}
	seen := make(map[string]bool, len(c.WorkDays))
	for _, day := range c.WorkDays {
		key := strings.ToLower(strings.TrimSpace(day))
		if key == "" {
			return &ValidationError{Field: "WorkDays", Message: "Work day labels must not be empty"}
		}
		if seen[key] {
			return &ValidationError{Field: "WorkDays", Message: fmt.Sprintf("Duplicate work day %q", day)}
		}
		seen[key] = true
	}

	if c.FileName == "" {
		return &ValidationError{Field: "FileName", Message: "File name is required"}
	}

	if c.TimeZone != "" {
		if _, err := time.LoadLocation(c.TimeZone); err != nil {
			return &ValidationError{Field: "TimeZone", Message: fmt.Sprintf("Unknown time zone %q", c.TimeZone)}
		}
	}

	return nil
}
