package main

import (
	"runtime"
	"testing"

	"github.com/lgbarn/termichess-go/internal/config"
)

// saveRestoreBool sets a bool flag pointer and returns a func restoring it.
// Usage: defer saveRestoreBool(jsonOutput, true)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

// ---------------------------------------------------------------------------
// applyOutputFlags
// ---------------------------------------------------------------------------

func TestApplyOutputFlags(t *testing.T) {
	t.Run("defaults to text", func(t *testing.T) {
		defer saveRestoreBool(jsonOutput, false)()
		cfg := config.NewConfig()
		applyOutputFlags(cfg)
		if cfg.Output.Format != config.Text {
			t.Errorf("Format = %v; want text", cfg.Output.Format)
		}
	})

	t.Run("J selects JSON", func(t *testing.T) {
		defer saveRestoreBool(jsonOutput, true)()
		cfg := config.NewConfig()
		applyOutputFlags(cfg)
		if cfg.Output.Format != config.JSON {
			t.Errorf("Format = %v; want json", cfg.Output.Format)
		}
	})

	t.Run("count and skiperrors", func(t *testing.T) {
		defer saveRestoreBool(showCount, true)()
		defer saveRestoreBool(skipErrors, true)()
		cfg := config.NewConfig()
		applyOutputFlags(cfg)
		if !cfg.Output.ShowCount {
			t.Error("ShowCount = false; want true")
		}
		if !cfg.Output.SkipErrors {
			t.Error("SkipErrors = false; want true")
		}
	})
}

// ---------------------------------------------------------------------------
// applyAnalysisFlags
// ---------------------------------------------------------------------------

func TestApplyAnalysisFlags(t *testing.T) {
	t.Run("zero workers keeps the CPU default", func(t *testing.T) {
		defer saveRestoreInt(workers, 0)()
		cfg := config.NewConfig()
		applyAnalysisFlags(cfg)
		if cfg.Analysis.Workers != runtime.NumCPU() {
			t.Errorf("Workers = %d; want %d", cfg.Analysis.Workers, runtime.NumCPU())
		}
	})

	t.Run("explicit workers", func(t *testing.T) {
		defer saveRestoreInt(workers, 3)()
		cfg := config.NewConfig()
		applyAnalysisFlags(cfg)
		if cfg.Analysis.Workers != 3 {
			t.Errorf("Workers = %d; want 3", cfg.Analysis.Workers)
		}
	})

	t.Run("perft depths", func(t *testing.T) {
		defer saveRestoreInt(perftDepth, 2)()
		defer saveRestoreInt(maxPerft, 4)()
		cfg := config.NewConfig()
		applyAnalysisFlags(cfg)
		if cfg.Analysis.PerftDepth != 2 {
			t.Errorf("PerftDepth = %d; want 2", cfg.Analysis.PerftDepth)
		}
		if cfg.Analysis.MaxPerftDepth != 4 {
			t.Errorf("MaxPerftDepth = %d; want 4", cfg.Analysis.MaxPerftDepth)
		}
	})

	t.Run("piece filter", func(t *testing.T) {
		defer saveRestoreString(piece, "n")()
		cfg := config.NewConfig()
		applyAnalysisFlags(cfg)
		if cfg.Analysis.Piece != "n" {
			t.Errorf("Piece = %q; want n", cfg.Analysis.Piece)
		}
	})

	t.Run("perft deeper than max fails validation", func(t *testing.T) {
		defer saveRestoreInt(perftDepth, 6)()
		defer saveRestoreInt(maxPerft, 5)()
		cfg := config.NewConfig()
		applyFlags(cfg)
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() = nil; want error")
		}
	})
}

// ---------------------------------------------------------------------------
// applyDuplicateFlags
// ---------------------------------------------------------------------------

func TestApplyDuplicateFlags(t *testing.T) {
	defer saveRestoreBool(suppressDuplicates, true)()
	defer saveRestoreBool(outputDupsOnly, false)()
	defer saveRestoreInt(duplicateCapacity, 100)()

	cfg := config.NewConfig()
	applyDuplicateFlags(cfg)
	if !cfg.Duplicate.Suppress {
		t.Error("Suppress = false; want true")
	}
	if cfg.Duplicate.DuplicatesOnly {
		t.Error("DuplicatesOnly = true; want false")
	}
	if cfg.Duplicate.MaxCapacity != 100 {
		t.Errorf("MaxCapacity = %d; want 100", cfg.Duplicate.MaxCapacity)
	}
}

func TestApplyFlags_LogLevel(t *testing.T) {
	defer saveRestoreString(logLevel, "debug")()
	cfg := config.NewConfig()
	applyFlags(cfg)
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q; want debug", cfg.LogLevel)
	}
}
