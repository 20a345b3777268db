// Package output renders analysis results as text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/termichess-go/internal/config"
)

// ResultWriter is the interface for writing results to output.
// Different implementations handle different output formats (text, JSON).
type ResultWriter interface {
	// WriteResult writes a single result to the output.
	WriteResult(r *Result) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer for the configured output format.
func NewWriter(w io.Writer, cfg *config.OutputConfig) ResultWriter {
	if cfg.Format == config.JSON {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes one line per position: "<fen>: <san> <san> ...".
type TextWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteResult writes a result line, followed by any perft divide.
func (tw *TextWriter) WriteResult(r *Result) error {
	if r.Failed() && tw.cfg.SkipErrors {
		return nil
	}
	if _, err := io.WriteString(tw.w, FormatText(r, tw.cfg.ShowCount)); err != nil {
		return err
	}
	for _, line := range r.Divide {
		if _, err := fmt.Fprintf(tw.w, "  %-8s %-6s %d\n", line.SAN, line.UCI, line.Nodes); err != nil {
			return err
		}
	}
	if r.Divide != nil {
		if _, err := fmt.Fprintf(tw.w, "  perft(%d) = %d\n", r.Depth, r.Nodes); err != nil {
			return err
		}
	}
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// FormatText renders the one-line text form of r, newline included.
func FormatText(r *Result, showCount bool) string {
	var sb strings.Builder
	sb.WriteString(r.FEN)
	sb.WriteByte(':')
	if r.Failed() {
		sb.WriteString(" error: ")
		sb.WriteString(r.Error)
		sb.WriteByte('\n')
		return sb.String()
	}
	for _, san := range r.Moves {
		sb.WriteByte(' ')
		sb.WriteString(san)
	}
	if showCount {
		fmt.Fprintf(&sb, " (%d)", r.Count)
	}
	if r.Status != "" {
		sb.WriteByte(' ')
		sb.WriteString(r.Status)
	}
	sb.WriteByte('\n')
	return sb.String()
}

// JSONWriter writes results in JSON format.
// It buffers results and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	cfg     *config.OutputConfig
	results []*Result
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches results and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.OutputConfig) *JSONWriter {
	return &JSONWriter{
		w:       w,
		cfg:     cfg,
		results: make([]*Result, 0),
	}
}

// WriteResult buffers a result for JSON output.
func (jw *JSONWriter) WriteResult(r *Result) error {
	if r.Failed() && jw.cfg.SkipErrors {
		return nil
	}
	jw.results = append(jw.results, r)
	return nil
}

// Flush writes all buffered results as a JSON array.
func (jw *JSONWriter) Flush() error {
	if len(jw.results) == 0 {
		return nil
	}

	err := encodeIndented(jw.w, &JSONOutput{Results: jw.results})

	// Clear buffer after writing
	jw.results = jw.results[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func encodeIndented(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
