package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/session"
)

// Session store backends
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// Config holds all configuration for the application
type Config struct {
	Environment string              `mapstructure:"environment"`
	Server      ServerConfig        `mapstructure:"server"`
	Database    database.Config     `mapstructure:"database"`
	Session     SessionConfig       `mapstructure:"session"`
	Redis       session.RedisConfig `mapstructure:"redis"`
	App         AppConfig           `mapstructure:"app"`
	Logger      LoggerConfig        `mapstructure:"logger"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`
}

// SessionConfig contains session cookie and storage settings
type SessionConfig struct {
	Secret       string        `mapstructure:"secret"`
	Store        string        `mapstructure:"store"`
	TTL          time.Duration `mapstructure:"ttl"`
	CookieSecure bool          `mapstructure:"cookieSecure"`
}

// AppConfig contains portal settings shown to or seeded for users
type AppConfig struct {
	SupportContact string `mapstructure:"supportContact"`
	AdminUsername  string `mapstructure:"adminUsername"`
	AdminPassword  string `mapstructure:"adminPassword"`
	BcryptCost     int    `mapstructure:"bcryptCost"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level string `mapstructure:"level"`
}

// IsProduction reports whether the production environment is active
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}

// Validate ensures all required configuration values are present and sane
func (c *Config) Validate() error {
	var missing []string

	switch c.Environment {
	case Development, Production, Test:
	default:
		return fmt.Errorf("invalid environment value: %q, must be one of: %s, %s, or %s",
			c.Environment, Development, Production, Test)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		missing = append(missing, "server.shutdownTimeout")
	}

	if strings.TrimSpace(c.Database.URL) == "" {
		missing = append(missing, "database.url (RP_DATABASE_URL)")
	}
	if strings.TrimSpace(c.Session.Secret) == "" {
		missing = append(missing, "session.secret (RP_SESSION_SECRET)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configurations: %v", missing)
	}

	if err := c.Database.Validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	switch c.Session.Store {
	case SessionStoreMemory:
	case SessionStoreRedis:
		if c.Redis.Addr == "" {
			return errors.New("redis.addr is required for the redis session store")
		}
	default:
		return fmt.Errorf("invalid session store: %q, must be %s or %s", c.Session.Store, SessionStoreMemory, SessionStoreRedis)
	}
	if c.Session.TTL <= 0 {
		return errors.New("session.ttl must be positive")
	}

	switch c.Logger.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logger level: %q", c.Logger.Level)
	}

	return nil
}
