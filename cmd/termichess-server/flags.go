// flags.go - Command-line flag definitions for the HTTP service
package main

import (
	"flag"
	"os"

	"github.com/lgbarn/termichess-go/internal/config"
)

var (
	// Listener
	listenAddr   = flag.String("addr", ":8080", "Address to listen on")
	allowOrigins = flag.String("origins", "*", "CORS allowed origins")

	// Limits
	batchLimit = flag.Int("batch", 256, "Most positions accepted by one batch request")
	maxPerft   = flag.Int("maxperft", config.DefaultMaxPerftDepth, "Deepest perft a request may ask for")
	workers    = flag.Int("workers", 0, "Positions analysed in parallel per batch (0 = number of CPUs)")

	// Logging
	logLevel = flag.String("loglevel", "info", "Log level: trace, debug, info, warn, error, disabled")

	// Information
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// buildConfig builds the service configuration from the parsed flags.
func buildConfig() *config.Config {
	b := config.NewConfigBuilder().
		WithListenAddr(*listenAddr).
		WithAllowOrigins(*allowOrigins).
		WithBatchLimit(*batchLimit).
		WithMaxPerftDepth(*maxPerft).
		WithLogLevel(*logLevel).
		WithLog(os.Stderr)
	if *workers > 0 {
		b.WithWorkers(*workers)
	}
	return b.Build()
}
