package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "RP"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// envAliases maps keys whose environment names do not follow the
// RP_<SECTION>_<KEY> pattern
var envAliases = map[string]string{
	"environment":          "RP_ENV",
	"app.supportContact":   "RP_APP_SUPPORT_CONTACT",
	"app.adminUsername":    "RP_ADMIN_USERNAME",
	"app.adminPassword":    "RP_ADMIN_PASSWORD",
	"app.bcryptCost":       "RP_APP_BCRYPT_COST",
	"session.ttl":          "RP_SESSION_TTL",
	"session.cookieSecure": "RP_SESSION_COOKIE_SECURE",
}

// LoadConfig loads the configuration for the environment named by RP_ENV
func LoadConfig() (*Config, error) {
	// A missing .env is normal outside local development
	_ = loadDotEnvFile()

	return Load(getEnvironment(), ConfigPaths...)
}

// Load builds the configuration from defaults, an optional <env>.yaml found in
// paths, and RP_* environment variables, in increasing precedence
func Load(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v, env)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, name := range envAliases {
		if err := v.BindEnv(key, name); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", name, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	return &config, nil
}

// loadDotEnvFile loads the first .env file found; existing variables win
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			return godotenv.Load(path)
		}
	}
	return errors.New("no .env file found in search paths")
}

// setDefaults registers every key so environment overrides reach Unmarshal
func setDefaults(v *viper.Viper, env string) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15*time.Second)
	v.SetDefault("server.writeTimeout", 15*time.Second)
	v.SetDefault("server.idleTimeout", 60*time.Second)
	v.SetDefault("server.readHeaderTimeout", 10*time.Second)
	v.SetDefault("server.shutdownTimeout", 10*time.Second)

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.url", "")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 5*time.Minute)
	v.SetDefault("database.connMaxIdleTime", 5*time.Minute)
	v.SetDefault("database.queryTimeout", 10*time.Second)
	v.SetDefault("database.logLevel", "warn")

	store := SessionStoreMemory
	if env == Production {
		store = SessionStoreRedis
	}
	v.SetDefault("session.secret", "")
	v.SetDefault("session.store", store)
	v.SetDefault("session.ttl", 24*time.Hour)
	v.SetDefault("session.cookieSecure", env == Production)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("app.supportContact", "")
	v.SetDefault("app.adminUsername", "")
	v.SetDefault("app.adminPassword", "")
	v.SetDefault("app.bcryptCost", 10)

	v.SetDefault("logger.level", "info")
}

// getEnvironment determines the environment from RP_ENV, development by default
func getEnvironment() string {
	env := os.Getenv("RP_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}
