// Package config defines the service configuration and how it is loaded.
package config

import "time"

// Config contains process configuration.
type Config struct {
	// Environment selects the logger flavour: development or production.
	Environment string `koanf:"environment"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// GinMode is passed to gin.SetMode: debug, release or test.
	GinMode string `koanf:"gin_mode"`

	// RequestLogging turns the per-request log line on or off.
	RequestLogging bool `koanf:"request_logging"`

	// DebugErrors adds diagnostic detail to 500 responses.
	DebugErrors bool `koanf:"debug_errors"`

	// MetricsEnabled exposes GET /metrics and records request metrics.
	MetricsEnabled bool `koanf:"metrics_enabled"`

	// DBDriver is one of sqlite3, mysql or postgres.
	DBDriver string `koanf:"db_driver"`

	// DBDSN is the data source name handed to the driver. For sqlite3 it is a file path.
	DBDSN string `koanf:"db_dsn"`

	DBMaxOpenConns    int           `koanf:"db_max_open_conns"`
	DBMaxIdleConns    int           `koanf:"db_max_idle_conns"`
	DBConnMaxLifetime time.Duration `koanf:"db_conn_max_lifetime"`

	// ShutdownTimeout bounds the graceful HTTP shutdown.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// New returns a Config holding the defaults.
func New() *Config {
	return &Config{
		Environment:     "development",
		LogLevel:        "info",
		Addr:            ":8080",
		GinMode:         "debug",
		RequestLogging:  true,
		DebugErrors:     true,
		MetricsEnabled:  true,
		DBDriver:        "sqlite3",
		DBDSN:           "notebook.db",
		DBMaxOpenConns:  1,
		DBMaxIdleConns:  1,
		ShutdownTimeout: 10 * time.Second,
	}
}
