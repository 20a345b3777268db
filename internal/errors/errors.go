// Package errors provides sentinel errors and error types for the rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidEnPassant indicates an en-passant field that is not a
	// reachable target square.
	ErrInvalidEnPassant = errors.New("invalid en passant square")

	// ErrCastlingRights indicates a castling right whose king or rook is
	// not on its home square.
	ErrCastlingRights = errors.New("inconsistent castling rights")

	// ErrNoKing indicates the side to move has no king.
	ErrNoKing = errors.New("no king for side to move")

	// ErrTooManyKings indicates a colour with more than one king.
	ErrTooManyKings = errors.New("more than one king")

	// ErrInvalidDepth indicates a negative perft depth or one above the limit.
	ErrInvalidDepth = errors.New("invalid depth")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// PositionError wraps errors with position context: the FEN text and the
// field that failed. It supports unwrapping via errors.Is() and errors.As().
type PositionError struct {
	Err   error  // The underlying error
	FEN   string // The FEN text being decoded
	Field string // FEN field name, e.g. "board", "castling" (if applicable)
	Text  string // Offending fragment of the field (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *PositionError) Error() string {
	var parts []string

	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("fen %q", e.FEN))
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Text != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Text))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "position error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the PositionError wrapper.
func (e *PositionError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
