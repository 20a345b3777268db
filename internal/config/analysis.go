package config

import (
	"fmt"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/lgbarn/termichess-go/internal/errors"
)

// DefaultMaxPerftDepth bounds perft requests unless configured otherwise.
const DefaultMaxPerftDepth = 5

// AnalysisConfig holds settings for move generation work.
type AnalysisConfig struct {
	// Workers is the number of positions analysed concurrently
	Workers int

	// PerftDepth requests a perft divide to this depth (0 = off)
	PerftDepth int

	// MaxPerftDepth is the deepest perft a caller may request
	MaxPerftDepth int

	// Piece narrows move lists to one piece letter (empty = all moves)
	Piece string
}

// NewAnalysisConfig creates an AnalysisConfig with default values.
func NewAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{
		Workers:       runtime.NumCPU(),
		MaxPerftDepth: DefaultMaxPerftDepth,
	}
}

// Validate checks that the analysis configuration is valid.
func (a *AnalysisConfig) Validate() error {
	if a.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", a.Workers, errors.ErrInvalidConfig)
	}
	if a.MaxPerftDepth < 1 {
		return fmt.Errorf("max perft depth (%d) must be at least 1: %w", a.MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if a.PerftDepth < 0 || a.PerftDepth > a.MaxPerftDepth {
		return fmt.Errorf("perft depth (%d) outside 0..%d: %w", a.PerftDepth, a.MaxPerftDepth, errors.ErrInvalidConfig)
	}
	return nil
}

func validateLogLevel(level string) error {
	if _, err := zerolog.ParseLevel(level); err != nil {
		return fmt.Errorf("log level %q: %w", level, errors.ErrInvalidConfig)
	}
	return nil
}
