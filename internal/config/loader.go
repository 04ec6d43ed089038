package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/apode")
	}

	setDefaults(v)

	// APODE_SERVER_HTTP_PORT overrides server.http_port
	v.SetEnvPrefix("APODE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return parseConfig(v)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return parseConfig(v)
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.http_port", d.Server.HTTPPort)

	v.SetDefault("auth.enabled", d.Auth.Enabled)
	v.SetDefault("auth.api_keys", d.Auth.APIKeys)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.output_path", d.Logging.OutputPath)
	v.SetDefault("logging.time_format", d.Logging.TimeFormat)

	v.SetDefault("datasets.data_dir", d.Datasets.DataDir)
	v.SetDefault("datasets.default_column", d.Datasets.DefaultColumn)
	v.SetDefault("datasets.max_rows", d.Datasets.MaxRows)

	v.SetDefault("analytics.concentration", d.Analytics.Concentration)
	v.SetDefault("analytics.welfare", d.Analytics.Welfare)
	v.SetDefault("analytics.inequality", d.Analytics.Inequality)
	v.SetDefault("analytics.curve", d.Analytics.Curve)
	v.SetDefault("analytics.histogram_bins", d.Analytics.HistogramBins)
}

// parseConfig parses viper config into Config struct
func parseConfig(v *viper.Viper) (*Config, error) {
	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:     "0.0.0.0",
			HTTPPort: 5580,
		},
		Auth: AuthConfig{
			Enabled: false,
			APIKeys: []string{},
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "json",
			OutputPath: "stdout",
			TimeFormat: "RFC3339",
		},
		Datasets: DatasetsConfig{
			DataDir:       "./data",
			DefaultColumn: "x",
			MaxRows:       1_000_000,
		},
		Analytics: AnalyticsConfig{
			Concentration: "herfindahl",
			Welfare:       "utilitarian",
			Inequality:    "gini",
			Curve:         "lorenz",
			HistogramBins: 10,
		},
	}
}
