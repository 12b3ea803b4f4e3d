package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string             `mapstructure:"environment"`
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Documents    DocumentsConfig    `mapstructure:"documents"`
	Render       RenderConfig       `mapstructure:"render"`
	Cache        CacheConfig        `mapstructure:"cache"`
	Sessions     SessionsConfig     `mapstructure:"sessions"`
	RateLimiting RateLimitConfig    `mapstructure:"rate_limiting"`
	Security     SecurityConfig     `mapstructure:"security"`
	Logging      LoggingConfig      `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Driver  string `mapstructure:"driver"` // sqlite|postgres
	Path    string `mapstructure:"path"`   // sqlite file or memory DSN
	DSN     string `mapstructure:"dsn"`    // postgres connection string
	Verbose bool   `mapstructure:"verbose"`
}

// DocumentsConfig contains reading text limits
type DocumentsConfig struct {
	MaxUploadBytes int64 `mapstructure:"max_upload_bytes"`
	MaxTextRunes   int   `mapstructure:"max_text_runes"`
}

// RenderConfig contains highlight renderer settings
type RenderConfig struct {
	Mode     string        `mapstructure:"mode"` // offsets|content
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// CacheConfig contains in-memory cache settings
type CacheConfig struct {
	MaxSizeMB int64 `mapstructure:"max_size_mb"`
}

// SessionsConfig controls expiry of idle reading sessions
type SessionsConfig struct {
	TTL           time.Duration `mapstructure:"ttl"`
	SweepSchedule string        `mapstructure:"sweep_schedule"`
}

// RateLimitConfig contains rate limiting settings
type RateLimitConfig struct {
	Enabled bool `mapstructure:"enabled"`
	RPS     int  `mapstructure:"rps"`
	Burst   int  `mapstructure:"burst"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	EnableCORS  bool     `mapstructure:"enable_cors"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console|json
}
