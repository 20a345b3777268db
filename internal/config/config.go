// Package config provides configuration for the termichess programs.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration.
// Each cmd/ main fills it from flags and calls Validate before use.
type Config struct {
	Output    *OutputConfig
	Analysis  *AnalysisConfig
	Server    *ServerConfig
	Duplicate *DuplicateConfig

	// LogLevel is a zerolog level name: trace, debug, info, warn, error.
	LogLevel string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Output:     NewOutputConfig(),
		Analysis:   NewAnalysisConfig(),
		Server:     NewServerConfig(),
		Duplicate:  NewDuplicateConfig(),
		LogLevel:   "info",
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the result output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log output stream.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if err := validateLogLevel(c.LogLevel); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if err := c.Analysis.Validate(); err != nil {
		return err
	}
	if err := c.Duplicate.Validate(); err != nil {
		return err
	}
	return c.Server.Validate()
}
