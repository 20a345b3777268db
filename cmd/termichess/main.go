// termichess lists the legal moves of chess positions in Standard
// Algebraic Notation.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"github.com/lgbarn/termichess-go/internal/config"
	"github.com/lgbarn/termichess-go/internal/logging"
	"github.com/lgbarn/termichess-go/internal/output"
	"github.com/lgbarn/termichess-go/internal/worker"
)

const programVersion = "0.1.0"

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: termichess [options] [FEN]\n\n")
	fmt.Fprintf(os.Stderr, "Prints the sorted SAN moves of each position. With no input the\n")
	fmt.Fprintf(os.Stderr, "initial position is used.\n\nOptions:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("termichess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfigBuilder().
		WithOutput(os.Stdout).
		WithLog(os.Stderr).
		Build()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fens, err := collectFENs(*fenString, *inputFile, flag.Args(), os.Stdin)
	if err != nil {
		log.Error().Err(err).Msg("reading positions")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, cfg, log, fens))
}

// run analyses fens and writes the results to cfg.OutputFile. It returns
// the process exit code: 1 if any position failed, else 0.
func run(ctx context.Context, cfg *config.Config, log zerolog.Logger, fens []string) int {
	process := worker.LegalMoves(cfg.Analysis.Piece)
	if cfg.Analysis.PerftDepth > 0 {
		process = worker.LegalMovesWithDivide(cfg.Analysis.PerftDepth, cfg.Analysis.Piece)
	}

	fens, dups, unique := filterDuplicates(fens, cfg.Duplicate)
	if dups > 0 {
		log.Debug().Int("duplicates", dups).Int("unique", unique).Msg("repeated positions")
	}

	results := worker.Run(ctx, fens, process, worker.WithWorkers(cfg.Analysis.Workers))

	w := output.NewWriter(cfg.OutputFile, cfg.Output)
	failed := 0
	for _, pr := range results {
		res := output.NewResult(pr.FEN, pr.Moves, pr.Err)
		res.Status = string(pr.Status)
		if pr.Err != nil {
			failed++
			log.Warn().Str("fen", pr.FEN).Err(pr.Err).Msg("position rejected")
		} else if pr.Divide != nil {
			res.SetDivide(cfg.Analysis.PerftDepth, pr.Divide)
		}
		if err := w.WriteResult(res); err != nil {
			log.Error().Err(err).Msg("writing output")
			return 1
		}
	}
	if err := w.Close(); err != nil {
		log.Error().Err(err).Msg("writing output")
		return 1
	}

	log.Info().Int("positions", len(fens)).Int("failed", failed).Int("workers", cfg.Analysis.Workers).Msg("done")
	if failed > 0 {
		return 1
	}
	return 0
}
