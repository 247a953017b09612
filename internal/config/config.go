// Package config wraps viper with nil-safe accessors and loads the
// application configuration file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is a nil-safe reader over a viper instance. All accessors return
// zero values when the underlying viper is nil or the key is unset.
type Config struct {
	v *viper.Viper
}

// New wraps a viper instance. A nil viper yields an empty Config.
func New(v *viper.Viper) *Config {
	return &Config{v: v}
}

func (c *Config) GetString(key string) string {
	if c.v == nil {
		return ""
	}
	return c.v.GetString(key)
}

func (c *Config) GetInt(key string) int {
	if c.v == nil {
		return 0
	}
	return c.v.GetInt(key)
}

func (c *Config) GetBool(key string) bool {
	if c.v == nil {
		return false
	}
	return c.v.GetBool(key)
}

func (c *Config) GetDuration(key string) time.Duration {
	if c.v == nil {
		return 0
	}
	return c.v.GetDuration(key)
}

func (c *Config) IsSet(key string) bool {
	if c.v == nil {
		return false
	}
	return c.v.IsSet(key)
}

// Sub returns the subtree rooted at key. Always non-nil; a missing key
// yields an empty Config.
func (c *Config) Sub(key string) *Config {
	if c.v == nil {
		return &Config{}
	}
	return &Config{v: c.v.Sub(key)}
}

// Unmarshal decodes the full configuration into target.
func (c *Config) Unmarshal(target any) error {
	if c.v == nil {
		return nil
	}
	return c.v.Unmarshal(target)
}

// Load reads the application configuration: defaults, then an optional
// retrocircuit.yaml (from path or the working directory), then
// RETROCIRCUIT_* environment variables.
func Load(path string) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("store.path", "retrocircuit.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("plugins.catalog.enabled", true)
	v.SetDefault("plugins.finder.enabled", true)
	v.SetDefault("plugins.arena.enabled", true)

	v.SetConfigName("retrocircuit")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("RETROCIRCUIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine; defaults and env cover everything.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}
