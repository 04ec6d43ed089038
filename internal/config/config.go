package config

import (
	"fmt"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Datasets  DatasetsConfig  `mapstructure:"datasets"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host     string `mapstructure:"host"`      // Bind address (0.0.0.0 for all interfaces)
	HTTPPort int    `mapstructure:"http_port"` // HTTP server port
}

// AuthConfig represents authentication configuration
type AuthConfig struct {
	Enabled bool     `mapstructure:"enabled"`  // Enable/disable API key authentication
	APIKeys []string `mapstructure:"api_keys"` // List of valid API keys
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputPath string `mapstructure:"output_path"` // stdout, stderr, file path
	TimeFormat string `mapstructure:"time_format"` // RFC3339, Unix, Kitchen
}

// DatasetsConfig locates the CSV datasets served by name
type DatasetsConfig struct {
	DataDir       string `mapstructure:"data_dir"`       // Directory scanned for *.csv and *.csv.snappy
	DefaultColumn string `mapstructure:"default_column"` // Column used when a request names none
	MaxRows       int    `mapstructure:"max_rows"`       // Row limit per dataset and per inline sample (0 = unlimited)
}

// AnalyticsConfig selects the method used when a request leaves it empty
type AnalyticsConfig struct {
	Concentration string `mapstructure:"concentration"`
	Welfare       string `mapstructure:"welfare"`
	Inequality    string `mapstructure:"inequality"`
	Curve         string `mapstructure:"curve"`
	HistogramBins int    `mapstructure:"histogram_bins"` // Bins of the "hist" fallback plot
}

// DefaultMethod returns the configured default for family, or "" to let the
// family decide
func (c *AnalyticsConfig) DefaultMethod(family string) string {
	switch family {
	case "concentration":
		return c.Concentration
	case "welfare":
		return c.Welfare
	case "inequality":
		return c.Inequality
	case "curve":
		return c.Curve
	}
	return ""
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config: %w", err)
	}

	if err := c.Auth.Validate(); err != nil {
		return fmt.Errorf("auth config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	if err := c.Datasets.Validate(); err != nil {
		return fmt.Errorf("datasets config: %w", err)
	}

	if err := c.Analytics.Validate(); err != nil {
		return fmt.Errorf("analytics config: %w", err)
	}

	return nil
}

// Validate validates server configuration
func (c *ServerConfig) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid http_port: %d", c.HTTPPort)
	}
	return nil
}

// Validate validates auth configuration
func (c *AuthConfig) Validate() error {
	if c.Enabled && len(c.APIKeys) == 0 {
		return fmt.Errorf("auth.api_keys is required when auth is enabled")
	}
	return nil
}

// Validate validates logging configuration
func (c *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLevels[c.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}

	validFormats := map[string]bool{
		"json":    true,
		"console": true,
	}

	if !validFormats[c.Format] {
		return fmt.Errorf("logging.format must be 'json' or 'console'")
	}

	return nil
}

// Validate validates datasets configuration
func (c *DatasetsConfig) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("datasets.data_dir is required")
	}
	if c.DefaultColumn == "" {
		return fmt.Errorf("datasets.default_column is required")
	}
	if c.MaxRows < 0 {
		return fmt.Errorf("datasets.max_rows cannot be negative")
	}
	return nil
}

// Validate validates analytics configuration. Method names are checked
// against the registries by the services that use them.
func (c *AnalyticsConfig) Validate() error {
	if c.HistogramBins < 1 {
		return fmt.Errorf("analytics.histogram_bins must be at least 1")
	}
	return nil
}
