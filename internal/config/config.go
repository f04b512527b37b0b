// Package config loads and validates the service configuration from
// environment variables (prefix FINBOARD) and an optional YAML file.
// Environment values win over file values.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"finboard/pkg/contracts/domain"
)

// EnvPrefix is the prefix for all environment variables.
const EnvPrefix = "FINBOARD"

// Config is the complete application configuration.
type Config struct {
	Server    ServerConfig     `yaml:"server" envconfig:"SERVER"`
	Logging   LoggingConfig    `yaml:"logging" envconfig:"LOGGING"`
	Upstream  UpstreamConfig   `yaml:"upstream" envconfig:"UPSTREAM"`
	RateLimit RateLimitConfig  `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
	Companies []domain.Company `yaml:"companies" ignored:"true" validate:"dive"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// UpstreamConfig selects and configures the sheet row source.
type UpstreamConfig struct {
	// Source is the row source kind: http, sheets_api or workbook.
	Source        string `yaml:"source" envconfig:"SOURCE" validate:"oneof=http sheets_api workbook"`
	BaseURL       string `yaml:"base_url" envconfig:"BASE_URL" validate:"required_if=Source http,omitempty,url"`
	SpreadsheetID string `yaml:"spreadsheet_id" envconfig:"SPREADSHEET_ID" validate:"required_unless=Source workbook"`
	APIKey        string `yaml:"api_key" envconfig:"API_KEY" validate:"required_if=Source sheets_api"`
	WorkbookPath  string `yaml:"workbook_path" envconfig:"WORKBOOK_PATH" validate:"required_if=Source workbook"`
}

// RateLimitConfig contains rate limiting configuration.
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED"`
	RPS     float64 `yaml:"rps" envconfig:"RPS" validate:"min=0"`
	Burst   int     `yaml:"burst" envconfig:"BURST" validate:"min=0"`
}

// defaultConfig returns the built-in defaults. File and environment values
// are layered on top of it, in that order.
func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "console",
			FilePath: "logs/finboard.log",
		},
		Upstream: UpstreamConfig{
			Source:  "http",
			BaseURL: "https://opensheet.elk.sh",
		},
		RateLimit: RateLimitConfig{
			Enabled: true,
			RPS:     100,
			Burst:   50,
		},
	}
}

// Load loads configuration from the environment and, when present, the file
// named by FINBOARD_CONFIG_FILE (default "config.yaml").
func Load() (*Config, error) {
	cfg := defaultConfig()

	configFile := os.Getenv(EnvPrefix + "_CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}
	if _, err := os.Stat(configFile); err == nil {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	// Environment overrides file values; envconfig also applies defaults
	// for anything still unset.
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	if len(cfg.Companies) == 0 {
		cfg.Companies = domain.DefaultCompanies()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
