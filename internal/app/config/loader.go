package config

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// MustInitConfig is InitConfig that panics on error.
func MustInitConfig(configFile string) Config {
	cfg, err := InitConfig(configFile)
	if err != nil {
		slog.Error("cannot unmarshal config", slog.String("error", err.Error()))
		panic(err)
	}

	return cfg
}

// InitConfig loads configuration from a .env file when present, otherwise from
// environment variables bound through the Config struct's mapstructure tags.
// Environment variables win over the file.
func InitConfig(configFile string) (Config, error) {
	var (
		vpr = viper.New()
		cfg Config
	)

	// Set default values
	vpr.SetDefault("LOG_LEVEL", "info")
	vpr.SetDefault("APP_MODE", ModeBatch)
	vpr.SetDefault("FLIGHT_DATA_FILE", "flightData.txt")
	vpr.SetDefault("REQUEST_DATA_FILE", "requestData.txt")
	vpr.SetDefault("REPORT_FILE", "OutputFile.txt")
	vpr.SetDefault("REPORT_FORMAT", "text")
	vpr.SetDefault("HTTP_PORT", 8080)
	vpr.SetDefault("HTTP_TIMEOUT", "10s")
	vpr.SetDefault("HTTP_RATE_LIMIT", 50)
	vpr.SetDefault("REDIS_ADDR", "localhost:6379")
	vpr.SetDefault("REDIS_TIMEOUT", "2s")
	vpr.SetDefault("ROUTE_CACHE_EXPIRATION", "10m")
	vpr.SetDefault("ROUTE_LOCK_TIMEOUT", "5s")

	vpr.AutomaticEnv()

	vpr.SetConfigFile(configFile)
	vpr.SetConfigType("env")

	if err := vpr.ReadInConfig(); err != nil {
		slog.Warn("config file not found or cannot be read, using environment variables",
			slog.String("file", configFile),
			slog.String("error", err.Error()))
	} else {
		slog.Debug("config file loaded successfully", slog.String("file", configFile))
	}

	// Automatically bind all environment variables from Config struct
	bindEnvFromStruct(vpr)

	// Unmarshal configuration into struct
	if err := vpr.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}

// bindEnvFromStruct binds every mapstructure key of Config to the
// environment so Unmarshal sees variables that are absent from the file.
func bindEnvFromStruct(vpr *viper.Viper) {
	for _, key := range envKeys(reflect.TypeOf(Config{})) {
		_ = vpr.BindEnv(key)
	}
}

// envKeys lists the mapstructure keys of t, descending into squashed and
// embedded structs.
func envKeys(t reflect.Type) []string {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return nil
	}

	var keys []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name, opts, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")

		nested := field.Type.Kind() == reflect.Struct &&
			(slices.Contains(strings.Split(opts, ","), "squash") || (name == "" && field.Anonymous))

		switch {
		case nested:
			keys = append(keys, envKeys(field.Type)...)
		case name != "" && name != "-":
			keys = append(keys, name)
		}
	}

	return keys
}
