package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPath        = "config.yaml"
	databaseURLEnv     = "DATABASE_URL"
	defaultHTTPAddress = ":8080"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Booking  BookingConfig  `yaml:"booking"`
	Log      LogConfig      `yaml:"log"`
}

type HTTPConfig struct {
	Address           string `yaml:"address"`
	BookRatePerMinute int    `yaml:"book_rate_per_minute"`
	// TrustedProxies lists the proxy addresses or CIDRs whose forwarded
	// headers name the client. Empty trusts none.
	TrustedProxies []string `yaml:"trusted_proxies"`
}

type DatabaseConfig struct {
	URL string `yaml:"url"`
}

func (d DatabaseConfig) DSN() string {
	return d.URL
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

type KafkaConfig struct {
	Brokers       []string `yaml:"brokers"`
	BookingsTopic string   `yaml:"bookings_topic"`
	GroupID       string   `yaml:"group_id"`
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0 && k.BookingsTopic != ""
}

type BookingConfig struct {
	FlightsCacheTTL int `yaml:"flights_cache_ttl_seconds"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// LoadConfig reads the YAML file at path and applies environment overrides.
// A missing file is only an error when the caller asked for a non-default path.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist) && path == DefaultPath:
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if url := os.Getenv(databaseURLEnv); url != "" {
		cfg.Database.URL = url
	}
	cfg.setDefaults()

	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("database url is not set: export %s or set database.url", databaseURLEnv)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = defaultHTTPAddress
	}
	if c.HTTP.BookRatePerMinute == 0 {
		c.HTTP.BookRatePerMinute = 60
	}
	if c.Booking.FlightsCacheTTL == 0 {
		c.Booking.FlightsCacheTTL = 30
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Kafka.GroupID == "" {
		c.Kafka.GroupID = "airline-worker"
	}
}
