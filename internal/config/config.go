// Package config holds the storefront's environment-driven configuration.
package config

import (
	"fmt"
	"time"

	"github.com/PrajwalKamdi/Women-Empower-sub000/pkg/config"
)

// Config is the full storefront configuration, populated from environment
// variables.
type Config struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"storefront"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort    int    `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	Backend   BackendConfig
	Session   SessionConfig
	Kafka     KafkaConfig
	Images    ImagesConfig
	RateLimit RateLimitConfig
	Tracing   TracingConfig

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// BackendConfig locates the marketplace REST backend.
type BackendConfig struct {
	BaseURL        string        `env:"BACKEND_BASE_URL" envDefault:"http://localhost:5000"`
	Timeout        time.Duration `env:"BACKEND_TIMEOUT" envDefault:"30s"`
	MaxRetries     int           `env:"BACKEND_MAX_RETRIES" envDefault:"3"`
	CircuitBreaker bool          `env:"BACKEND_CIRCUIT_BREAKER" envDefault:"true"`
}

// SessionConfig covers session persistence in Redis.
type SessionConfig struct {
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL           time.Duration `env:"SESSION_TTL" envDefault:"720h"`
}

// KafkaConfig covers activity event publishing. An empty broker list
// disables publishing.
type KafkaConfig struct {
	Brokers       []string `env:"KAFKA_BROKERS" envSeparator:","`
	ActivityTopic string   `env:"KAFKA_ACTIVITY_TOPIC" envDefault:"storefront.activity"`
}

// ImagesConfig covers image URL resolution.
type ImagesConfig struct {
	PublicBaseURL  string `env:"IMAGE_PUBLIC_BASE_URL" envDefault:"http://localhost:5000/images"`
	DirectBaseURL  string `env:"IMAGE_DIRECT_BASE_URL" envDefault:""`
	PlaceholderURL string `env:"IMAGE_PLACEHOLDER_URL" envDefault:"/static/placeholder.png"`
}

// RateLimitConfig bounds per-client request rates.
type RateLimitConfig struct {
	Enabled bool    `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RPS     float64 `env:"RATE_LIMIT_RPS" envDefault:"20"`
	Burst   int     `env:"RATE_LIMIT_BURST" envDefault:"40"`
}

// TracingConfig covers OpenTelemetry export.
type TracingConfig struct {
	Enabled      bool    `env:"TRACING_ENABLED" envDefault:"false"`
	OTLPEndpoint string  `env:"OTLP_ENDPOINT" envDefault:"localhost:4318"`
	SampleRate   float64 `env:"TRACING_SAMPLE_RATE" envDefault:"1.0"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP_PORT %d", c.HTTPPort)
	}
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("BACKEND_BASE_URL is required")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.RateLimit.Enabled && c.RateLimit.RPS <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be positive when rate limiting is enabled")
	}
	return nil
}
