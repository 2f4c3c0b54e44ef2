// Package listing provides configuration for capped list queries.
package listing

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
)

// Environment variable names for listing configuration.
const (
	EnvListingDefaultLimit = "LISTING_DEFAULT_LIMIT"
	EnvListingMaxLimit     = "LISTING_MAX_LIMIT"
)

// Config holds list-query settings shared by every resource handler.
type Config struct {
	DefaultLimit int `toml:"default_limit"`
	MaxLimit     int `toml:"max_limit"`
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies non-zero values from overlay onto the receiver.
func (c *Config) Merge(overlay *Config) {
	if overlay.DefaultLimit != 0 {
		c.DefaultLimit = overlay.DefaultLimit
	}
	if overlay.MaxLimit != 0 {
		c.MaxLimit = overlay.MaxLimit
	}
}

// LimitFromQuery resolves the result-count cap from the "limit" query
// parameter. A missing or unparseable value falls back to the default;
// anything above the maximum is clamped.
func (c Config) LimitFromQuery(values url.Values) int64 {
	limit := c.DefaultLimit
	if v := values.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > c.MaxLimit {
		limit = c.MaxLimit
	}
	return int64(limit)
}

func (c *Config) loadDefaults() {
	if c.DefaultLimit <= 0 {
		c.DefaultLimit = 50
	}
	if c.MaxLimit <= 0 {
		c.MaxLimit = 500
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvListingDefaultLimit); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.DefaultLimit = n
		}
	}
	if v := os.Getenv(EnvListingMaxLimit); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxLimit = n
		}
	}
}

func (c *Config) validate() error {
	if c.DefaultLimit < 1 {
		return fmt.Errorf("default_limit must be positive")
	}
	if c.MaxLimit < 1 {
		return fmt.Errorf("max_limit must be positive")
	}
	if c.DefaultLimit > c.MaxLimit {
		return fmt.Errorf("default_limit cannot exceed max_limit")
	}
	return nil
}
