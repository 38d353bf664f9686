package config

import (
	"log/slog"
	"time"
)

const (
	ModeBatch  = "batch"
	ModeServer = "server"

	// StdoutReport as REPORT_FILE writes the report to standard output.
	StdoutReport = "-"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the application configuration.
type Config struct {
	LogLevel LogLeveler `mapstructure:"LOG_LEVEL"`
	Mode     string     `mapstructure:"APP_MODE"`
	Data     Data       `mapstructure:",squash"`
	Report   Report     `mapstructure:",squash"`
	HTTP     HTTP       `mapstructure:",squash"`
	Redis    Redis      `mapstructure:",squash"`
	Route    Route      `mapstructure:",squash"`
}

// Data locates the input files of a batch run. The flight data file is also
// the graph served in server mode.
type Data struct {
	FlightFile  string `mapstructure:"FLIGHT_DATA_FILE"`
	RequestFile string `mapstructure:"REQUEST_DATA_FILE"`
}

type Report struct {
	File   string `mapstructure:"REPORT_FILE"`
	Format string `mapstructure:"REPORT_FORMAT"`
}

type HTTP struct {
	Port      int           `mapstructure:"HTTP_PORT"`
	Timeout   time.Duration `mapstructure:"HTTP_TIMEOUT"`
	RateLimit int           `mapstructure:"HTTP_RATE_LIMIT"`
}

type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

type Route struct {
	CacheExpiration time.Duration `mapstructure:"ROUTE_CACHE_EXPIRATION"`
	LockTimeout     time.Duration `mapstructure:"ROUTE_LOCK_TIMEOUT"`
}
