package config

import (
	"fmt"

	"github.com/lgbarn/termichess-go/internal/errors"
)

// DuplicateConfig holds settings for duplicate position detection.
type DuplicateConfig struct {
	// Suppress drops repeated positions from the input
	Suppress bool

	// DuplicatesOnly keeps only the repeats, dropping first occurrences
	DuplicatesOnly bool

	// MaxCapacity limits the number of remembered positions (0 = unlimited)
	MaxCapacity int
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}

// Enabled reports whether positions need to be checked for duplicates.
func (d *DuplicateConfig) Enabled() bool {
	return d.Suppress || d.DuplicatesOnly
}

// Validate checks that the duplicate configuration is valid.
func (d *DuplicateConfig) Validate() error {
	if d.Suppress && d.DuplicatesOnly {
		return fmt.Errorf("cannot both suppress and keep only duplicates: %w", errors.ErrInvalidConfig)
	}
	if d.MaxCapacity < 0 {
		return fmt.Errorf("duplicate capacity (%d) must not be negative: %w", d.MaxCapacity, errors.ErrInvalidConfig)
	}
	return nil
}
