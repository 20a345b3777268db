package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/termichess-go/internal/config"
	"github.com/lgbarn/termichess-go/internal/engine"
	"github.com/lgbarn/termichess-go/internal/hashing"
)

// collectFENs gathers the positions to analyse. In order of precedence:
// the -fen flag, the -f file (or stdin for "-"), the positional arguments
// joined into one FEN, and finally the initial position.
func collectFENs(fen, file string, args []string, stdin io.Reader) ([]string, error) {
	switch {
	case fen != "":
		return []string{fen}, nil
	case file == "-":
		return readFENs(stdin)
	case file != "":
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		return readFENs(f)
	case len(args) > 0:
		return []string{strings.Join(args, " ")}, nil
	}
	return []string{engine.InitialFEN}, nil
}

// readFENs reads one FEN per line, skipping blank lines and # comments.
func readFENs(r io.Reader) ([]string, error) {
	var fens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fens = append(fens, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return fens, nil
}

// filterDuplicates applies duplicate suppression to fens in input order and
// returns the positions to analyse with the number of repeats seen and of
// distinct positions recorded. Unparseable FENs are never duplicates.
func filterDuplicates(fens []string, cfg *config.DuplicateConfig) (kept []string, dups, unique int) {
	if !cfg.Enabled() {
		return fens, 0, 0
	}

	detector := hashing.NewDuplicateDetector(cfg.MaxCapacity)
	kept = make([]string, 0, len(fens))
	for _, fen := range fens {
		dup := false
		if pos, err := engine.ParseFEN(fen); err == nil {
			dup = detector.CheckAndAdd(&pos)
		}
		if dup == cfg.DuplicatesOnly {
			kept = append(kept, fen)
		}
	}
	return kept, detector.DuplicateCount(), detector.UniqueCount()
}
