// Package config loads the catalog server and shop client configuration from
// an optional YAML file, then applies environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Catalog sources
const (
	SourceStatic  = "static"
	SourceSpanner = "spanner"
)

// Client transports
const (
	TransportHTTP = "http"
	TransportGRPC = "grpc"
)

// Cart slot backends
const (
	SlotSQLite  = "sqlite"
	SlotRedis   = "redis"
	SlotSpanner = "spanner"
	SlotMemory  = "memory"
)

// Config holds all application configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Server  ServerConfig  `yaml:"server"`
	Catalog CatalogConfig `yaml:"catalog"`
	Client  ClientConfig  `yaml:"client"`
}

// LogConfig configures zap.
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// ServerConfig configures the HTTP and gRPC listeners.
type ServerConfig struct {
	HTTPPort        string        `yaml:"http_port"`
	GRPCPort        string        `yaml:"grpc_port"`
	PublicDir       string        `yaml:"public_dir"`
	EnableEcho      bool          `yaml:"enable_echo"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// CatalogConfig selects where the server reads products from.
type CatalogConfig struct {
	Source    string        `yaml:"source"` // static, spanner
	SpannerDB string        `yaml:"spanner_database"`
	CacheAddr string        `yaml:"cache_redis_addr"` // empty disables the cache
	CacheTTL  time.Duration `yaml:"cache_ttl"`
	CacheKey  string        `yaml:"cache_prefix"`
}

// ClientConfig configures the shop client session.
type ClientConfig struct {
	Transport      string        `yaml:"transport"` // http, grpc
	APIURL         string        `yaml:"api_url"`
	GRPCAddr       string        `yaml:"grpc_addr"`
	RequestTimeout time.Duration `yaml:"request_timeout"` // 0 means no timeout
	Slot           SlotConfig    `yaml:"slot"`
}

// SlotConfig configures the durable slot that holds the cart.
type SlotConfig struct {
	Backend     string `yaml:"backend"` // sqlite, redis, spanner, memory
	Key         string `yaml:"key"`
	SQLitePath  string `yaml:"sqlite_path"`
	RedisAddr   string `yaml:"redis_addr"`
	RedisPrefix string `yaml:"redis_prefix"`
	SpannerDB   string `yaml:"spanner_database"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	spannerDB := "projects/test-project/instances/dev-instance/databases/furniture-catalog-db"

	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Server: ServerConfig{
			HTTPPort:        "3000",
			GRPCPort:        "9090",
			PublicDir:       "public",
			EnableEcho:      true,
			ShutdownTimeout: 30 * time.Second,
		},
		Catalog: CatalogConfig{
			Source:    SourceStatic,
			SpannerDB: spannerDB,
			CacheTTL:  5 * time.Minute,
			CacheKey:  "catalog:",
		},
		Client: ClientConfig{
			Transport: TransportHTTP,
			APIURL:    "http://localhost:3000",
			GRPCAddr:  "localhost:9090",
			Slot: SlotConfig{
				Backend:     SlotSQLite,
				Key:         "cart",
				SQLitePath:  "./shop.db",
				RedisAddr:   "localhost:6379",
				RedisPrefix: "shop:",
				SpannerDB:   spannerDB,
			},
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the defaults.
// Environment variables override both.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.Catalog.Source {
	case SourceStatic, SourceSpanner:
	default:
		return fmt.Errorf("invalid catalog source %q", c.Catalog.Source)
	}

	switch c.Client.Transport {
	case TransportHTTP, TransportGRPC:
	default:
		return fmt.Errorf("invalid client transport %q", c.Client.Transport)
	}

	switch c.Client.Slot.Backend {
	case SlotSQLite, SlotRedis, SlotSpanner, SlotMemory:
	default:
		return fmt.Errorf("invalid cart slot backend %q", c.Client.Slot.Backend)
	}

	if c.Client.Slot.Key == "" {
		return fmt.Errorf("cart slot key cannot be empty")
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	setString := func(dst *string, keys ...string) {
		for _, key := range keys {
			if v := os.Getenv(key); v != "" {
				*dst = v
				return
			}
		}
	}

	setString(&c.Log.Level, "LOG_LEVEL")
	setString(&c.Server.HTTPPort, "HTTP_PORT", "PORT")
	setString(&c.Server.GRPCPort, "GRPC_PORT")
	setString(&c.Server.PublicDir, "PUBLIC_DIR")
	setString(&c.Catalog.Source, "CATALOG_SOURCE")
	setString(&c.Catalog.SpannerDB, "SPANNER_DATABASE")
	setString(&c.Catalog.CacheAddr, "CATALOG_CACHE_REDIS_ADDR")
	setString(&c.Client.Transport, "CATALOG_TRANSPORT")
	setString(&c.Client.APIURL, "CATALOG_API_URL")
	setString(&c.Client.GRPCAddr, "CATALOG_GRPC_ADDR")
	setString(&c.Client.Slot.Backend, "CART_SLOT_BACKEND")
	setString(&c.Client.Slot.Key, "CART_SLOT_KEY")
	setString(&c.Client.Slot.SQLitePath, "CART_SQLITE_PATH")
	setString(&c.Client.Slot.RedisAddr, "REDIS_ADDR")
	setString(&c.Client.Slot.SpannerDB, "SPANNER_DATABASE")

	if v := os.Getenv("ENABLE_ECHO"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Server.EnableEcho = b
		}
	}
	if v := os.Getenv("CATALOG_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Catalog.CacheTTL = d
		}
	}
}
