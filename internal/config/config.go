// Package config handles configuration for the chat server, including
// defaults, a YAML file overlay and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Store drivers.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverBolt     = "bolt"
)

// Config holds runtime settings for the chat server.
type Config struct {
	Store StoreConfig `yaml:"store"`
	GRPC  GRPCConfig  `yaml:"grpc"`
	HTTP  HTTPConfig  `yaml:"http"`
	Log   LogConfig   `yaml:"log"`
	Live  LiveConfig  `yaml:"live"`
}

// StoreConfig selects and locates the storage backend.
type StoreConfig struct {
	Driver        string `yaml:"driver"`
	MongoURI      string `yaml:"mongo_uri"`
	MongoDatabase string `yaml:"mongo_database"`
	DatabaseURL   string `yaml:"database_url"`
	BoltPath      string `yaml:"bolt_path"`
}

// GRPCConfig configures the gRPC listener. TLS is enabled when both
// TLSCert and TLSKey are set.
type GRPCConfig struct {
	Port       string `yaml:"port"`
	TLSCert    string `yaml:"tls_cert"`
	TLSKey     string `yaml:"tls_key"`
	RequireTLS bool   `yaml:"require_tls"`
}

// HTTPConfig configures the REST/WebSocket listener. An empty port
// disables it.
type HTTPConfig struct {
	Port string `yaml:"port"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// LiveConfig tunes live query watchers.
type LiveConfig struct {
	// RefreshInterval re-runs time-dependent presence queries.
	RefreshInterval time.Duration `yaml:"refresh_interval"`
	// MaxRefreshPerSec caps change-driven re-runs per watcher.
	MaxRefreshPerSec float64 `yaml:"max_refresh_per_sec"`
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Store.Driver = DriverMongo
	c.Store.MongoDatabase = "chat_db"
	c.Store.BoltPath = "chat.db"
	c.GRPC.Port = "50051"
	c.HTTP.Port = "8080"
	c.Log.Level = "info"
	c.Live.RefreshInterval = 30 * time.Second
	c.Live.MaxRefreshPerSec = 5
}

// LoadFile overlays the YAML file at path. Keys absent from the file keep
// their current values.
func (c *Config) LoadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays environment variables read through getenv. Unset or
// empty variables are skipped.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	str := func(key string, dst *string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}

	str("STORE_DRIVER", &c.Store.Driver)
	str("MONGODB_URI", &c.Store.MongoURI)
	str("MONGODB_DATABASE", &c.Store.MongoDatabase)
	str("DATABASE_URL", &c.Store.DatabaseURL)
	str("BOLT_PATH", &c.Store.BoltPath)
	str("PORT", &c.GRPC.Port)
	str("TLS_CERT", &c.GRPC.TLSCert)
	str("TLS_KEY", &c.GRPC.TLSKey)
	str("HTTP_PORT", &c.HTTP.Port)
	str("LOG_LEVEL", &c.Log.Level)

	if v := getenv("REQUIRE_TLS"); v != "" {
		c.GRPC.RequireTLS = v == "true"
	}
	if v := getenv("LOG_JSON"); v != "" {
		c.Log.JSON = v == "true"
	}
	if v := getenv("LIVE_REFRESH_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("LIVE_REFRESH_INTERVAL: %w", err)
		}
		c.Live.RefreshInterval = d
	}
	if v := getenv("LIVE_MAX_REFRESH_PER_SEC"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("LIVE_MAX_REFRESH_PER_SEC: %w", err)
		}
		c.Live.MaxRefreshPerSec = f
	}
	return nil
}

// Validate reports every inconsistent setting at once.
func (c *Config) Validate() error {
	var errs []error

	switch strings.ToLower(c.Store.Driver) {
	case DriverMongo:
		if c.Store.MongoURI == "" {
			errs = append(errs, errors.New("MONGODB_URI must be set for the mongo driver"))
		}
	case DriverPostgres:
		if c.Store.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL must be set for the postgres driver"))
		}
	case DriverBolt:
		if c.Store.BoltPath == "" {
			errs = append(errs, errors.New("BOLT_PATH must be set for the bolt driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown store driver %q", c.Store.Driver))
	}

	if c.GRPC.Port == "" {
		errs = append(errs, errors.New("gRPC port must be set"))
	}
	if (c.GRPC.TLSCert == "") != (c.GRPC.TLSKey == "") {
		errs = append(errs, errors.New("TLS_CERT and TLS_KEY must be set together"))
	}
	if c.GRPC.RequireTLS && c.GRPC.TLSCert == "" {
		errs = append(errs, errors.New("REQUIRE_TLS is true but TLS_CERT/TLS_KEY are not configured"))
	}
	if c.Live.RefreshInterval < 0 {
		errs = append(errs, errors.New("live refresh interval must not be negative"))
	}

	return errors.Join(errs...)
}

// TLSEnabled reports whether the gRPC listener should serve TLS.
func (c *Config) TLSEnabled() bool {
	return c.GRPC.TLSCert != "" && c.GRPC.TLSKey != ""
}

// Load applies defaults, then the optional YAML file, then the environment.
func Load(path string, getenv func(string) string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(getenv); err != nil {
		return nil, err
	}
	cfg.Store.Driver = strings.ToLower(cfg.Store.Driver)
	return cfg, nil
}
