package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/VISHALVISHAL29/Dashboard/internal/normalize"
	"github.com/VISHALVISHAL29/Dashboard/internal/report"
	"github.com/VISHALVISHAL29/Dashboard/internal/schema"
)

// FileName is the default config file name.
const FileName = "dashboard.yaml"

// EnvPrefix prefixes environment overrides, e.g. DASHBOARD_LOG_LEVEL.
const EnvPrefix = "DASHBOARD"

// Config represents the top-level dashboard.yaml configuration.
type Config struct {
	Columns ColumnsConfig `yaml:"columns"`
	Dates   DatesConfig   `yaml:"dates"`
	Report  ReportConfig  `yaml:"report"`
	Logging LoggingConfig `yaml:"logging"`
}

// ColumnsConfig lists the header words that identify each column role.
type ColumnsConfig struct {
	Cost        []string `yaml:"cost" validate:"required,min=1,dive,required"`
	Date        []string `yaml:"date" validate:"required,min=1,dive,required"`
	Description []string `yaml:"description" validate:"required,min=1,dive,required"`
	Quantity    []string `yaml:"quantity,omitempty"`
}

// DatesConfig lists the accepted date layouts in Go reference-time form.
type DatesConfig struct {
	Layouts []string `yaml:"layouts" validate:"required,min=1,dive,required"`
}

// ReportConfig controls summary text.
type ReportConfig struct {
	CurrencySymbol string `yaml:"currency_symbol" validate:"required"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

// envOverrides are read from DASHBOARD_* variables.
type envOverrides struct {
	LogLevel       string `envconfig:"LOG_LEVEL"`
	LogFormat      string `envconfig:"LOG_FORMAT"`
	CurrencySymbol string `envconfig:"CURRENCY_SYMBOL"`
}

// Load reads a dashboard.yaml file from disk. Keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, returning defaults when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the built-in column vocabulary and date layouts.
func Default() *Config {
	syn := schema.DefaultSynonyms()
	return &Config{
		Columns: ColumnsConfig{
			Cost:        syn.Cost,
			Date:        syn.Date,
			Description: syn.Description,
			Quantity:    syn.Quantity,
		},
		Dates: DatesConfig{
			Layouts: append([]string(nil), normalize.DefaultLayouts...),
		},
		Report: ReportConfig{
			CurrencySymbol: report.DefaultCurrencySymbol,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// ApplyEnv overrides settings from DASHBOARD_* environment variables.
func (c *Config) ApplyEnv() error {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}
	if env.LogLevel != "" {
		c.Logging.Level = env.LogLevel
	}
	if env.LogFormat != "" {
		c.Logging.Format = env.LogFormat
	}
	if env.CurrencySymbol != "" {
		c.Report.CurrencySymbol = env.CurrencySymbol
	}
	return nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Synonyms returns the column vocabulary for the schema resolver.
func (c *Config) Synonyms() schema.Synonyms {
	return schema.Synonyms{
		Cost:        c.Columns.Cost,
		Date:        c.Columns.Date,
		Description: c.Columns.Description,
		Quantity:    c.Columns.Quantity,
	}
}
