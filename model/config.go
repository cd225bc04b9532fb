package model

import (
	"log/slog"

	"github.com/siherrmann/metamodel/helper"
)

// Config represents the property names and switches used to read a view
type Config struct {
	// Schema extraction
	MetaProperty  string `json:"meta_property"`  // Marks a group or referenced view as schema
	DebugProperty string `json:"debug_property"` // "true" enables tracing for that schema

	// Attractors
	AttractorProperty string `json:"attractor_property"` // Marks an attractor group
	RecursiveValue    string `json:"recursive_value"`    // Attractor value for recursive collection

	// Logging
	Debug    bool       `json:"debug"` // Trace every schema regardless of its debug property
	LogLevel slog.Level `json:"log_level"`
}

// DefaultConfig returns the property names used by the reference models
func DefaultConfig() Config {
	return Config{
		MetaProperty:      "meta",
		DebugProperty:     "debug",
		AttractorProperty: "Kernelement",
		RecursiveValue:    "recursive",
		Debug:             false,
		LogLevel:          slog.LevelInfo,
	}
}

// ApplyConfiguration overrides the config with environment settings.
// An empty attractor property keeps the current one.
func (c *Config) ApplyConfiguration(configuration *helper.Configuration) {
	if configuration == nil {
		return
	}
	c.LogLevel = configuration.LogLevel
	c.Debug = c.Debug || configuration.Debug
	if configuration.AttractorProperty != "" {
		c.AttractorProperty = configuration.AttractorProperty
	}
}
