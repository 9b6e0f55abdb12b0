package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for the open data tools
type Config struct {
	Environment string        `toml:"environment"`
	Server      ServerConfig  `toml:"server"`
	Clients     ClientsConfig `toml:"clients"`
	Logging     LoggingConfig `toml:"logging"`
}

// ServerConfig holds HTTP proxy server configuration
type ServerConfig struct {
	Host      string `toml:"host"`
	Port      int    `toml:"port"`
	StaticDir string `toml:"static_dir"`
}

// ClientsConfig holds API client configurations
type ClientsConfig struct {
	Utrecht      UtrechtConfig      `toml:"utrecht"`
	DataOverheid DataOverheidConfig `toml:"dataoverheid"`
}

// UtrechtConfig holds Utrecht Open Data API configuration
type UtrechtConfig struct {
	BaseURL   string `toml:"base_url"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
	UserAgent string `toml:"user_agent"`
}

// GetTimeout parses and returns the timeout duration
func (c *UtrechtConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// DataOverheidConfig holds data.overheid.nl CKAN API configuration
type DataOverheidConfig struct {
	BaseURL   string `toml:"base_url"`
	PortalURL string `toml:"portal_url"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
	UserAgent string `toml:"user_agent"`
}

// GetTimeout parses and returns the timeout duration
func (c *DataOverheidConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `toml:"level"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host:      "0.0.0.0",
			Port:      8080,
			StaticDir: ".",
		},
		Clients: ClientsConfig{
			Utrecht: UtrechtConfig{
				BaseURL:   "https://open.utrecht.nl/api",
				RateLimit: 5,
				Timeout:   "30s",
				UserAgent: "Utrecht-OpenData-MCP/1.0",
			},
			DataOverheid: DataOverheidConfig{
				BaseURL:   "https://data.overheid.nl/data/api/3/action",
				PortalURL: "https://data.overheid.nl",
				RateLimit: 5,
				Timeout:   "30s",
				UserAgent: "DataOverheid-Connector/1.0",
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Later files override earlier ones; missing files are skipped.
func LoadConfig(paths ...string) (*Config, error) {
	// A .env file next to the binary is optional
	_ = godotenv.Load()

	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("WOO_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("WOO_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("WOO_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("WOO_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if base := os.Getenv("WOO_UTRECHT_API"); base != "" {
		config.Clients.Utrecht.BaseURL = base
	}

	if base := os.Getenv("WOO_DATAOVERHEID_API"); base != "" {
		config.Clients.DataOverheid.BaseURL = base
	}
}
