package config

import (
	"bytes"
	"errors"
	"testing"

	cerrors "github.com/lgbarn/termichess-go/internal/errors"
)

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.Format != Text {
		t.Errorf("Format = %v, want %v", cfg.Format, Text)
	}
	if cfg.ShowCount {
		t.Error("ShowCount should be false by default")
	}
	if cfg.SkipErrors {
		t.Error("SkipErrors should be false by default")
	}
}

func TestOutputFormat_String(t *testing.T) {
	if Text.String() != "text" || JSON.String() != "json" {
		t.Errorf("got %q and %q, want text and json", Text, JSON)
	}
	if got := OutputFormat(9).String(); got != "OutputFormat(9)" {
		t.Errorf("OutputFormat(9).String() = %q", got)
	}
}

// TestAnalysisConfig_Defaults verifies AnalysisConfig has sensible defaults
func TestAnalysisConfig_Defaults(t *testing.T) {
	cfg := NewAnalysisConfig()

	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want at least 1", cfg.Workers)
	}
	if cfg.PerftDepth != 0 {
		t.Errorf("PerftDepth = %d, want 0", cfg.PerftDepth)
	}
	if cfg.MaxPerftDepth != DefaultMaxPerftDepth {
		t.Errorf("MaxPerftDepth = %d, want %d", cfg.MaxPerftDepth, DefaultMaxPerftDepth)
	}
}

// TestServerConfig_Defaults verifies ServerConfig has sensible defaults
func TestServerConfig_Defaults(t *testing.T) {
	cfg := NewServerConfig()

	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q, want :8080", cfg.ListenAddr)
	}
	if cfg.BatchLimit != 256 {
		t.Errorf("BatchLimit = %d, want 256", cfg.BatchLimit)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"json output", func(c *Config) { c.Output.Format = JSON }, false},
		{"unknown output format", func(c *Config) { c.Output.Format = OutputFormat(7) }, true},
		{"zero workers", func(c *Config) { c.Analysis.Workers = 0 }, true},
		{"perft within limit", func(c *Config) { c.Analysis.PerftDepth = DefaultMaxPerftDepth }, false},
		{"perft above limit", func(c *Config) { c.Analysis.PerftDepth = DefaultMaxPerftDepth + 1 }, true},
		{"negative perft", func(c *Config) { c.Analysis.PerftDepth = -1 }, true},
		{"zero max perft", func(c *Config) { c.Analysis.MaxPerftDepth = 0 }, true},
		{"empty listen address", func(c *Config) { c.Server.ListenAddr = "" }, true},
		{"zero batch limit", func(c *Config) { c.Server.BatchLimit = 0 }, true},
		{"negative timeout", func(c *Config) { c.Server.ReadTimeout = -1 }, true},
		{"suppress duplicates", func(c *Config) { c.Duplicate.Suppress = true }, false},
		{"suppress and duplicates only", func(c *Config) {
			c.Duplicate.Suppress = true
			c.Duplicate.DuplicatesOnly = true
		}, true},
		{"negative duplicate capacity", func(c *Config) { c.Duplicate.MaxCapacity = -1 }, true},
		{"debug log level", func(c *Config) { c.LogLevel = "debug" }, false},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, cerrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	out := &bytes.Buffer{}
	log := &bytes.Buffer{}

	cfg.SetOutput(out)
	cfg.SetLog(log)

	if cfg.OutputFile != out {
		t.Error("SetOutput did not set OutputFile")
	}
	if cfg.LogFile != log {
		t.Error("SetLog did not set LogFile")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithJSONOutput(true).
		WithWorkers(3).
		WithPerftDepth(2).
		WithMaxPerftDepth(4).
		WithListenAddr("127.0.0.1:9000").
		WithBatchLimit(10).
		WithAllowOrigins("https://example.org").
		WithPiece("n").
		WithSuppressDuplicates(true).
		WithLogLevel("warn").
		WithOutput(buf).
		Build()

	if cfg.Output.Format != JSON {
		t.Errorf("Format = %v, want json", cfg.Output.Format)
	}
	if cfg.Analysis.Workers != 3 {
		t.Errorf("Workers = %d, want 3", cfg.Analysis.Workers)
	}
	if cfg.Analysis.PerftDepth != 2 || cfg.Analysis.MaxPerftDepth != 4 {
		t.Errorf("perft depths = %d/%d, want 2/4", cfg.Analysis.PerftDepth, cfg.Analysis.MaxPerftDepth)
	}
	if cfg.Server.ListenAddr != "127.0.0.1:9000" || cfg.Server.BatchLimit != 10 {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Server.AllowOrigins != "https://example.org" {
		t.Errorf("AllowOrigins = %q", cfg.Server.AllowOrigins)
	}
	if cfg.Analysis.Piece != "n" {
		t.Errorf("Piece = %q, want n", cfg.Analysis.Piece)
	}
	if !cfg.Duplicate.Suppress {
		t.Error("Duplicate.Suppress = false, want true")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
	if cfg.OutputFile != buf {
		t.Error("WithOutput did not set OutputFile")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	cfg = NewConfigBuilder().WithJSONOutput(true).WithJSONOutput(false).Build()
	if cfg.Output.Format != Text {
		t.Errorf("Format = %v, want text", cfg.Output.Format)
	}
}
