// Package config loads application settings from a .env file and environment variables.
// Environment variables always take precedence over .env file values.
package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	// PostgreSQL: either set DatabaseURL directly, or the individual fields.
	DatabaseURL string
	DBUser      string
	DBPass      string
	DBHost      string
	DBPort      string
	DBName      string
	DBSSLMode   string

	// Score provider (ESPN scoreboard API).
	ProviderBaseURL string
	ProviderTimeout time.Duration

	// How often the scheduler kicks off a refresh cycle.
	UpdateInterval time.Duration

	// Server
	Debug      bool
	Port       string
	TLSDomains []string
}

// Load reads configuration from a .env file (if present) and then from
// environment variables. Environment variables always win.
func Load() *Config {
	v := newViper()

	// Defaults
	v.SetDefault("DB_USER", "gbupool")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "gbupool")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("PROVIDER_BASE_URL", "https://site.api.espn.com/apis/site/v2/sports/football/nfl")
	v.SetDefault("PROVIDER_TIMEOUT", "30s")
	v.SetDefault("UPDATE_INTERVAL", "1h")
	v.SetDefault("PORT", ":9000")
	v.SetDefault("TLS_DOMAINS", "gbupool.app,www.gbupool.app")
	v.SetDefault("DEBUG", false)

	cfg := &Config{
		DatabaseURL:     v.GetString("DATABASE_URL"),
		DBUser:          v.GetString("DB_USER"),
		DBPass:          v.GetString("DB_PASS"),
		DBHost:          v.GetString("DB_HOST"),
		DBPort:          v.GetString("DB_PORT"),
		DBName:          v.GetString("DB_NAME"),
		DBSSLMode:       v.GetString("DB_SSLMODE"),
		ProviderBaseURL: v.GetString("PROVIDER_BASE_URL"),
		ProviderTimeout: v.GetDuration("PROVIDER_TIMEOUT"),
		UpdateInterval:  v.GetDuration("UPDATE_INTERVAL"),
		Debug:           v.GetBool("DEBUG"),
		Port:            v.GetString("PORT"),
		TLSDomains:      splitTrimmed(v.GetString("TLS_DOMAINS")),
	}

	cfg.validate()
	return cfg
}

// PostgresDSN returns the full PostgreSQL connection string.
// DATABASE_URL takes precedence over individual fields.
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser,
		c.DBPass,
		c.DBHost,
		c.DBPort,
		c.DBName,
		c.DBSSLMode,
	)
}

func (c *Config) validate() {
	if c.DatabaseURL == "" && c.DBPass == "" {
		log.Fatal("config: DATABASE_URL or DB_PASS must be set")
	}
	if c.ProviderBaseURL == "" {
		log.Fatal("config: PROVIDER_BASE_URL must be set")
	}
}

func newViper() *viper.Viper {
	// Loading .env is best effort; production uses real env vars.
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using environment variables only")
	}

	v := viper.New()
	v.AutomaticEnv()
	return v
}

func splitTrimmed(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
