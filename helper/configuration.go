package helper

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"testing"
)

// Environment variables read by NewConfiguration
const (
	EnvLogLevel          = "METAMODEL_LOG_LEVEL"
	EnvDebug             = "METAMODEL_DEBUG"
	EnvAttractorProperty = "METAMODEL_ATTRACTOR_PROPERTY"
)

// Configuration holds the environment driven settings
type Configuration struct {
	LogLevel          slog.Level
	Debug             bool
	AttractorProperty string
}

// NewConfiguration reads the configuration from environment variables.
// Unset variables keep their zero value (info level, no debug, default property).
func NewConfiguration() (*Configuration, error) {
	config := &Configuration{
		LogLevel:          slog.LevelInfo,
		AttractorProperty: strings.TrimSpace(os.Getenv(EnvAttractorProperty)),
	}

	if level := strings.TrimSpace(os.Getenv(EnvLogLevel)); level != "" {
		err := config.LogLevel.UnmarshalText([]byte(level))
		if err != nil {
			return nil, NewError("parse "+EnvLogLevel, fmt.Errorf("invalid log level %q: %w", level, err))
		}
	}

	if debug := strings.TrimSpace(os.Getenv(EnvDebug)); debug != "" {
		parsed, err := strconv.ParseBool(debug)
		if err != nil {
			return nil, NewError("parse "+EnvDebug, err)
		}
		config.Debug = parsed
	}

	return config, nil
}

// SetTestConfigurationEnvs sets the configuration environment variables for the duration of a test
func SetTestConfigurationEnvs(t *testing.T, logLevel string, debug bool) {
	t.Setenv(EnvLogLevel, logLevel)
	t.Setenv(EnvDebug, strconv.FormatBool(debug))
	t.Setenv(EnvAttractorProperty, "")
}
