package config

import (
	"fmt"

	"github.com/lgbarn/termichess-go/internal/errors"
)

// OutputFormat selects how move lists are rendered.
type OutputFormat int

const (
	Text OutputFormat = iota // "<fen>: <san> <san> ..."
	JSON                     // indented JSON documents
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	}
	return fmt.Sprintf("OutputFormat(%d)", int(f))
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies the rendering of results (Text or JSON)
	Format OutputFormat

	// ShowCount appends the number of legal moves in text output
	ShowCount bool

	// SkipErrors omits failed positions from the output; they are still logged
	SkipErrors bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format: Text,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Format != Text && o.Format != JSON {
		return fmt.Errorf("unknown output format %d: %w", int(o.Format), errors.ErrInvalidConfig)
	}
	return nil
}
