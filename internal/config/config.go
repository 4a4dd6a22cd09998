// Package config provides configuration loading and validation.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App       AppConfig                   `mapstructure:"app"`
	Publisher PublisherConfig             `mapstructure:"publisher"`
	Logging   LoggingConfig               `mapstructure:"logging"`
	Exchanges map[string][]ExchangeSetting `mapstructure:"exchanges"`
	Telemetry TelemetryConfig             `mapstructure:"telemetry"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	TUIMode     bool   `mapstructure:"-"` // Set at runtime, not from config file
}

// PublisherConfig holds the outbound summary broadcast server's bind settings.
type PublisherConfig struct {
	BindAddr string `mapstructure:"bind_addr"`
	Port     int    `mapstructure:"port"`
	Redis    string `mapstructure:"redis"` // optional redis:// URL for the pub/sub sink
}

// LoggingConfig holds log sink configuration.
type LoggingConfig struct {
	Path  string `mapstructure:"path"` // not read by cmd/feedengine
	Level string `mapstructure:"level"`
}

// ExchangeSetting configures one pair subscription on one exchange.
type ExchangeSetting struct {
	Pair     string `mapstructure:"pair"`
	WaitSecs uint   `mapstructure:"wait_secs"`
	WSAPI    bool   `mapstructure:"ws_api"`
}

// TelemetryConfig holds observability configuration.
type TelemetryConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	ServiceName    string `mapstructure:"service_name"`
	OTLPEndpoint   string `mapstructure:"otlp_endpoint"`
	OTLPHeaders    string `mapstructure:"otlp_headers"`
	TraceProvider  string `mapstructure:"trace_provider"` // otlp | zipkin | console | none; not read by cmd/feedengine, which always uses zipkin
	ZipkinEndpoint string `mapstructure:"zipkin_endpoint"`
	PrometheusPort int    `mapstructure:"prometheus_port"`
}

// Load loads configuration from file and environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("BOOKFEED")
	v.AutomaticEnv()

	bindEnvVars(v)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func bindEnvVars(v *viper.Viper) {
	v.BindEnv("app.name", "BOOKFEED_APP_NAME", "SERVICE_NAME")
	v.BindEnv("app.environment", "BOOKFEED_ENVIRONMENT", "ENVIRONMENT")

	v.BindEnv("publisher.bind_addr", "BOOKFEED_PUBLISHER_BIND_ADDR")
	v.BindEnv("publisher.port", "BOOKFEED_PUBLISHER_PORT")
	v.BindEnv("publisher.redis", "BOOKFEED_PUBLISHER_REDIS", "REDIS_URL")

	v.BindEnv("logging.path", "BOOKFEED_LOG_PATH", "LOG_PATH")
	v.BindEnv("logging.level", "BOOKFEED_LOG_LEVEL", "LOG_LEVEL")

	v.BindEnv("telemetry.enabled", "BOOKFEED_OTEL_ENABLED", "OTEL_ENABLED")
	v.BindEnv("telemetry.service_name", "BOOKFEED_OTEL_SERVICE_NAME", "OTEL_SERVICE_NAME")
	v.BindEnv("telemetry.otlp_endpoint", "BOOKFEED_OTEL_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT")
	v.BindEnv("telemetry.trace_provider", "BOOKFEED_TRACE_PROVIDER")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "bookfeed")
	v.SetDefault("app.environment", "development")

	v.SetDefault("publisher.bind_addr", "0.0.0.0")
	v.SetDefault("publisher.port", 8787)

	v.SetDefault("logging.level", "info")

	v.SetDefault("exchanges.binance", []ExchangeSetting{{Pair: "btcusdt", WaitSecs: 1, WSAPI: true}})

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.service_name", "bookfeed")
	v.SetDefault("telemetry.trace_provider", "console")
	v.SetDefault("telemetry.prometheus_port", 9090)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Publisher.Port <= 0 {
		return fmt.Errorf("publisher.port must be positive")
	}
	if len(c.Exchanges) == 0 {
		return fmt.Errorf("exchanges: at least one exchange must be configured")
	}
	for name, settings := range c.Exchanges {
		if len(settings) == 0 {
			return fmt.Errorf("exchanges.%s: at least one pair must be configured", name)
		}
		for _, s := range settings {
			if s.Pair == "" {
				return fmt.Errorf("exchanges.%s: pair cannot be empty", name)
			}
		}
	}
	return nil
}

// DefaultWaitSecs is applied by callers when an ExchangeSetting omits
// wait_secs (its zero value), per the poll-interval default.
const DefaultWaitSecs = 1 * time.Second
