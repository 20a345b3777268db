// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/termichess-go/internal/config"
)

var (
	// Input options
	fenString = flag.String("fen", "", "FEN of the position to analyse")
	inputFile = flag.String("f", "", "File with one FEN per line (- for stdin)")

	// Output options
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	showCount  = flag.Bool("count", false, "Append the number of legal moves")
	skipErrors = flag.Bool("skiperrors", false, "Leave failed positions out of the output")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate positions")
	outputDupsOnly     = flag.Bool("U", false, "Output only duplicate positions")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum remembered positions (0 = unlimited)")

	// Analysis options
	workers    = flag.Int("workers", 0, "Positions analysed in parallel (0 = number of CPUs)")
	perftDepth = flag.Int("perft", 0, "Also run a perft divide to depth N")
	maxPerft   = flag.Int("maxperft", config.DefaultMaxPerftDepth, "Deepest perft allowed")
	piece      = flag.String("piece", "", "List only moves of this piece: p, n, b, r, q or k")

	// Logging
	logLevel = flag.String("loglevel", "warn", "Log level: trace, debug, info, warn, error, disabled")

	// Information
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies the parsed flags into cfg.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applyAnalysisFlags(cfg)
	applyDuplicateFlags(cfg)
	cfg.LogLevel = *logLevel
}

// applyOutputFlags configures output rendering.
func applyOutputFlags(cfg *config.Config) {
	if *jsonOutput {
		cfg.Output.Format = config.JSON
	} else {
		cfg.Output.Format = config.Text
	}
	cfg.Output.ShowCount = *showCount
	cfg.Output.SkipErrors = *skipErrors
}

// applyAnalysisFlags configures workers, perft and the piece filter.
func applyAnalysisFlags(cfg *config.Config) {
	if *workers > 0 {
		cfg.Analysis.Workers = *workers
	}
	cfg.Analysis.PerftDepth = *perftDepth
	cfg.Analysis.MaxPerftDepth = *maxPerft
	cfg.Analysis.Piece = *piece
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Suppress = *suppressDuplicates
	cfg.Duplicate.DuplicatesOnly = *outputDupsOnly
	cfg.Duplicate.MaxCapacity = *duplicateCapacity
}
