// Package config holds all server configuration, sourced from the
// environment with development defaults.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"
)

// Config holds all server configuration.
type Config struct {
	// StoreHost/StorePort locate the shared Redis instance. An empty
	// StoreHost selects the embedded LevelDB backend instead.
	StoreHost   string
	StorePort   int
	StorePrefix string
	DataDir     string

	// WSHost/WSPort are the process's single listen address, serving both
	// the HTTP surface and the WebSocket upgrade endpoint.
	WSHost string
	WSPort int

	CORSOriginPattern string
	CleanupInterval   time.Duration
}

// Default returns a single-process development configuration.
func Default() *Config {
	return &Config{
		StorePort:         6379,
		StorePrefix:       "boardwalk",
		DataDir:           "./data",
		WSHost:            "0.0.0.0",
		WSPort:            8080,
		CORSOriginPattern: ".*",
		CleanupInterval:   5 * time.Minute,
	}
}

// FromEnv builds the configuration from environment variables, falling back
// on defaults for anything unset.
func FromEnv() (*Config, error) {
	cfg := Default()
	cfg.StoreHost = os.Getenv("STORE_HOST")
	if v := os.Getenv("STORE_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("STORE_PORT %q: %w", v, err)
		}
		cfg.StorePort = port
	}
	if v := os.Getenv("STORE_PREFIX"); v != "" {
		cfg.StorePrefix = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("WS_HOST"); v != "" {
		cfg.WSHost = v
	}
	if v := os.Getenv("WS_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("WS_PORT %q: %w", v, err)
		}
		cfg.WSPort = port
	}
	if v := os.Getenv("CORS_ORIGIN_PATTERN"); v != "" {
		cfg.CORSOriginPattern = v
	}
	return cfg, nil
}

// StoreAddr returns the Redis host:port, or "" for the embedded backend.
func (c *Config) StoreAddr() string {
	if c.StoreHost == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", c.StoreHost, c.StorePort)
}

// ListenAddr returns the HTTP/WS listen address.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.WSHost, c.WSPort)
}

// OriginRegexp compiles the CORS origin pattern.
func (c *Config) OriginRegexp() (*regexp.Regexp, error) {
	re, err := regexp.Compile(c.CORSOriginPattern)
	if err != nil {
		return nil, fmt.Errorf("CORS_ORIGIN_PATTERN %q: %w", c.CORSOriginPattern, err)
	}
	return re, nil
}
