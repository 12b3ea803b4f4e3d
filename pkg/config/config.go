package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	apperrors "github.com/killallgit/readwise-api/pkg/errors"
)

// EnvPrefix is the prefix for environment variable overrides (READWISE_SERVER_PORT etc.)
const EnvPrefix = "READWISE"

var (
	once    sync.Once
	initErr error

	// configPath is a var so tests can point it elsewhere
	configPath = "./config/settings.yaml"
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		// A missing .env is the normal case
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			initErr = fmt.Errorf("error loading .env file: %w", err)
			return
		}

		setDefaults()

		viper.SetEnvPrefix(EnvPrefix)
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		path := filepath.Clean(configPath)
		viper.SetConfigFile(path)

		if err := viper.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", path, err)
				return
			}
		}

		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// Reset clears loaded configuration so Init can run again (tests only)
func Reset() {
	viper.Reset()
	once = sync.Once{}
	initErr = nil
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return apperrors.ConfigError("server.port", fmt.Sprintf("%d is not a valid port", port))
	}

	switch driver := viper.GetString("database.driver"); driver {
	case "sqlite":
		if viper.GetString("database.path") == "" {
			return apperrors.ConfigError("database.path", "required for the sqlite driver")
		}
	case "postgres":
		if viper.GetString("database.dsn") == "" {
			return apperrors.ConfigError("database.dsn", "required for the postgres driver")
		}
	default:
		return apperrors.ConfigError("database.driver", fmt.Sprintf("unsupported driver %q", driver))
	}

	switch mode := viper.GetString("render.mode"); mode {
	case "offsets", "content":
	default:
		return apperrors.ConfigError("render.mode", fmt.Sprintf("%q is not offsets or content", mode))
	}

	// Auto-correct invalid upload limit
	if viper.GetInt64("documents.max_upload_bytes") <= 0 {
		log.Warn().Msg("documents.max_upload_bytes must be positive, using 1MB")
		viper.Set("documents.max_upload_bytes", 1<<20)
	}

	if viper.GetInt("rate_limiting.rps") <= 0 {
		viper.Set("rate_limiting.rps", 10)
	}
	if viper.GetInt("rate_limiting.burst") <= 0 {
		viper.Set("rate_limiting.burst", 20)
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Database.Driver {
	case "", "sqlite":
		if c.Database.Path == "" {
			return fmt.Errorf("database.path is required for the sqlite driver")
		}
	case "postgres":
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported database driver: %q", c.Database.Driver)
	}

	if c.Render.Mode == "" {
		c.Render.Mode = "offsets"
	}

	if c.Documents.MaxUploadBytes <= 0 {
		c.Documents.MaxUploadBytes = 1 << 20
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Reading sessions live in memory unless a file or postgres is configured
	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.path", "file::memory:?cache=shared")
	viper.SetDefault("database.dsn", "")
	viper.SetDefault("database.verbose", false)

	// Document defaults
	viper.SetDefault("documents.max_upload_bytes", 1048576)
	viper.SetDefault("documents.max_text_runes", 200000)

	// Render defaults
	viper.SetDefault("render.mode", "offsets")
	viper.SetDefault("render.cache_ttl", 10*time.Minute)

	// Cache defaults
	viper.SetDefault("cache.max_size_mb", 64)

	// Session sweeper defaults
	viper.SetDefault("sessions.ttl", 24*time.Hour)
	viper.SetDefault("sessions.sweep_schedule", "@every 10m")

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.rps", 10)
	viper.SetDefault("rate_limiting.burst", 20)

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.cors_origins", []string{"*"})

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "console")
}
