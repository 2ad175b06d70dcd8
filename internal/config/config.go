package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"     validate:"required"`
	Store     StoreConfig     `mapstructure:"store"      validate:"required"`
	AccessLog AccessLogConfig `mapstructure:"access_log" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// StoreConfig locates the backing JSON document. The path is injected
// rather than hardcoded so tests can point the store at a scratch file.
type StoreConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// AccessLogConfig controls the append-only request log file.
type AccessLogConfig struct {
	Path       string `mapstructure:"path"        validate:"required"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" validate:"gte=1"`
	MaxBackups int    `mapstructure:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `mapstructure:"max_age_days" validate:"gte=0"`
}
