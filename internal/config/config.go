// Package config loads the storefront configuration from a YAML file
// with environment-variable overrides for deploy-time settings.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all storefront configuration.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `yaml:"addr"`

	// AssetsBaseURL is where the header/footer fragments live.
	AssetsBaseURL string `yaml:"assets_base_url"`

	// CatalogURL points at the products JSON document.
	CatalogURL string `yaml:"catalog_url"`

	// AssetsDir, when set, is served under /assets/ by this process so
	// local dev needs no separate static host.
	AssetsDir string `yaml:"assets_dir"`

	// Redis configures the session store. An empty address falls back
	// to the in-memory store (state lost on restart).
	Redis RedisConfig `yaml:"redis"`

	// OrderLogPath is the SQLite database file for the order log.
	OrderLogPath string `yaml:"order_log_path"`

	// OTLPEndpoint enables trace export when set.
	OTLPEndpoint string `yaml:"otlp_endpoint"`

	// SessionTTL bounds how long idle session state is kept in redis,
	// e.g. "720h". Empty keeps it forever.
	SessionTTL string `yaml:"session_ttl"`
}

// RedisConfig configures the redis-backed session store.
type RedisConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the local-development configuration.
func Default() Config {
	return Config{
		Addr:          ":8080",
		AssetsBaseURL: "http://localhost:8080/assets",
		CatalogURL:    "http://localhost:8080/assets/data/products.json",
		OrderLogPath:  "./data/orders.db",
		SessionTTL:    "720h",
	}
}

// Load reads the YAML file at path, falling back to defaults when the
// file does not exist, then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %q: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("config: read %q: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

// ParsedSessionTTL returns the session TTL as a duration; zero means no
// expiry.
func (c Config) ParsedSessionTTL() (time.Duration, error) {
	if c.SessionTTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.SessionTTL)
	if err != nil {
		return 0, fmt.Errorf("config: parse session_ttl %q: %w", c.SessionTTL, err)
	}
	return d, nil
}

func (c *Config) applyEnv() {
	c.Addr = getEnv("STOREFRONT_ADDR", c.Addr)
	c.AssetsBaseURL = getEnv("ASSETS_BASE_URL", c.AssetsBaseURL)
	c.CatalogURL = getEnv("CATALOG_URL", c.CatalogURL)
	c.Redis.Addr = getEnv("REDIS_ADDR", c.Redis.Addr)
	c.OrderLogPath = getEnv("ORDER_LOG_PATH", c.OrderLogPath)
	c.OTLPEndpoint = getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", c.OTLPEndpoint)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
