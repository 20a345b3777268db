package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/termichess-go/internal/errors"
)

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	// ListenAddr is the host:port the server binds
	ListenAddr string

	// BatchLimit caps the number of FENs in one batch request
	BatchLimit int

	// ReadTimeout and WriteTimeout bound each HTTP exchange
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// AllowOrigins is the CORS origin list, comma separated
	AllowOrigins string
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		ListenAddr:   ":8080",
		BatchLimit:   256,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		AllowOrigins: "*",
	}
}

// Validate checks that the server configuration is valid.
func (s *ServerConfig) Validate() error {
	if s.ListenAddr == "" {
		return fmt.Errorf("empty listen address: %w", errors.ErrInvalidConfig)
	}
	if s.BatchLimit < 1 {
		return fmt.Errorf("batch limit (%d) must be at least 1: %w", s.BatchLimit, errors.ErrInvalidConfig)
	}
	if s.ReadTimeout < 0 || s.WriteTimeout < 0 {
		return fmt.Errorf("negative timeout: %w", errors.ErrInvalidConfig)
	}
	return nil
}
