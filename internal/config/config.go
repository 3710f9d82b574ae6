// Package config loads service configuration from file and environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full service configuration.
type Config struct {
	HTTP     HTTPConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Log      LogConfig
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RequestTimeout time.Duration
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	DSN      string
	MaxConns int32
	MinConns int32
}

// AuthConfig holds session token settings.
type AuthConfig struct {
	JWTSecret      string
	AccessTokenTTL time.Duration
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level       string
	Development bool
}

// Load reads configuration from an optional config file plus
// SKYFOLIO_* environment variables. A missing config file is not
// an error; environment and defaults still apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("http.port", "8080")
	v.SetDefault("http.read_timeout", 15*time.Second)
	v.SetDefault("http.write_timeout", 30*time.Second)
	v.SetDefault("http.idle_timeout", 60*time.Second)
	v.SetDefault("http.request_timeout", 10*time.Second)
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("auth.access_token_ttl", 15*time.Minute)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)

	v.SetEnvPrefix("SKYFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{
		HTTP: HTTPConfig{
			Port:           v.GetString("http.port"),
			ReadTimeout:    v.GetDuration("http.read_timeout"),
			WriteTimeout:   v.GetDuration("http.write_timeout"),
			IdleTimeout:    v.GetDuration("http.idle_timeout"),
			RequestTimeout: v.GetDuration("http.request_timeout"),
		},
		Database: DatabaseConfig{
			DSN:      v.GetString("database.dsn"),
			MaxConns: v.GetInt32("database.max_conns"),
			MinConns: v.GetInt32("database.min_conns"),
		},
		Auth: AuthConfig{
			JWTSecret:      v.GetString("auth.jwt_secret"),
			AccessTokenTTL: v.GetDuration("auth.access_token_ttl"),
		},
		Log: LogConfig{
			Level:       v.GetString("log.level"),
			Development: v.GetBool("log.development"),
		},
	}

	if cfg.Database.DSN == "" {
		return nil, fmt.Errorf("database.dsn is required (SKYFOLIO_DATABASE_DSN)")
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth.jwt_secret is required (SKYFOLIO_AUTH_JWT_SECRET)")
	}

	return cfg, nil
}
