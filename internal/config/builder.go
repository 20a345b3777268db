package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithJSONOutput switches between JSON and text output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	if enabled {
		b.cfg.Output.Format = JSON
	} else {
		b.cfg.Output.Format = Text
	}
	return b
}

// WithWorkers sets the number of concurrent workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Analysis.Workers = n
	return b
}

// WithPerftDepth requests a perft divide to the given depth.
func (b *ConfigBuilder) WithPerftDepth(depth int) *ConfigBuilder {
	b.cfg.Analysis.PerftDepth = depth
	return b
}

// WithMaxPerftDepth sets the deepest allowed perft.
func (b *ConfigBuilder) WithMaxPerftDepth(depth int) *ConfigBuilder {
	b.cfg.Analysis.MaxPerftDepth = depth
	return b
}

// WithPiece lists only the moves of one piece type.
func (b *ConfigBuilder) WithPiece(letter string) *ConfigBuilder {
	b.cfg.Analysis.Piece = letter
	return b
}

// WithListenAddr sets the server listen address.
func (b *ConfigBuilder) WithListenAddr(addr string) *ConfigBuilder {
	b.cfg.Server.ListenAddr = addr
	return b
}

// WithBatchLimit sets the maximum batch size.
func (b *ConfigBuilder) WithBatchLimit(n int) *ConfigBuilder {
	b.cfg.Server.BatchLimit = n
	return b
}

// WithAllowOrigins sets the CORS origin list.
func (b *ConfigBuilder) WithAllowOrigins(origins string) *ConfigBuilder {
	b.cfg.Server.AllowOrigins = origins
	return b
}

// WithSuppressDuplicates enables dropping repeated positions.
func (b *ConfigBuilder) WithSuppressDuplicates(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	return b
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.LogLevel = level
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.SetOutput(w)
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.SetLog(w)
	return b
}
