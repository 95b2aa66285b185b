package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// Server
	Port     string `mapstructure:"PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Database, optional. Without it the built-in reference tables are served.
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Redis, optional. Enables the result cache and the Redis push bus.
	RedisURL string        `mapstructure:"REDIS_URL"`
	CacheTTL time.Duration `mapstructure:"CACHE_TTL"`

	// CORS
	CorsOrigins []string `mapstructure:"CORS_ORIGINS"`

	// Rate limiting per client IP
	RateLimitRPS   float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `mapstructure:"RATE_LIMIT_BURST"`

	// Simulation
	SimulationTickInterval time.Duration `mapstructure:"SIMULATION_TICK_INTERVAL"`
	SimulationSeed         int64         `mapstructure:"SIMULATION_SEED"`
	FantasySeed            int64         `mapstructure:"FANTASY_SEED"`

	// Push feed
	PushEnabled  bool          `mapstructure:"PUSH_ENABLED"`
	PushSource   string        `mapstructure:"PUSH_SOURCE"` // "mock" or "redis"
	PushInterval time.Duration `mapstructure:"PUSH_INTERVAL"`
	PushMatchID  string        `mapstructure:"PUSH_MATCH_ID"`
	PushChannel  string        `mapstructure:"PUSH_CHANNEL"`
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")

	// Set defaults
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("CACHE_TTL", "10m")
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")
	v.SetDefault("RATE_LIMIT_RPS", 20)
	v.SetDefault("RATE_LIMIT_BURST", 40)
	v.SetDefault("SIMULATION_TICK_INTERVAL", "1500ms")
	v.SetDefault("SIMULATION_SEED", 0) // 0 seeds from the clock
	v.SetDefault("FANTASY_SEED", 0)
	v.SetDefault("PUSH_ENABLED", true)
	v.SetDefault("PUSH_SOURCE", "mock")
	v.SetDefault("PUSH_INTERVAL", "2s")
	v.SetDefault("PUSH_MATCH_ID", "demo-match-1")
	v.SetDefault("PUSH_CHANNEL", "match_updates")

	// Read from environment
	v.AutomaticEnv()

	// Read config file if exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Parse CORS origins from comma-separated string
	if corsStr := v.GetString("CORS_ORIGINS"); corsStr != "" {
		config.CorsOrigins = strings.Split(corsStr, ",")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	switch c.PushSource {
	case "mock":
	case "redis":
		if c.PushEnabled && c.RedisURL == "" {
			return fmt.Errorf("PUSH_SOURCE=redis requires REDIS_URL")
		}
	default:
		return fmt.Errorf("unknown PUSH_SOURCE %q, want mock or redis", c.PushSource)
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return fmt.Errorf("rate limit settings must not be negative")
	}
	if c.SimulationTickInterval <= 0 {
		return fmt.Errorf("SIMULATION_TICK_INTERVAL must be positive")
	}
	if c.PushInterval < time.Second {
		return fmt.Errorf("PUSH_INTERVAL must be at least 1s")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
