// Package config holds the editor's tunable settings.
package config

import (
	"errors"
	"time"
)

// Errors returned by configuration validation.
var (
	ErrNegativeMargin  = errors.New("scroll margin must not be negative")
	ErrBadPollTimeout  = errors.New("poll timeout must be positive")
	ErrBadFallbackSize = errors.New("fallback terminal size must be positive")
)

// Config carries the editor settings. Values come from flags; there is
// no config file.
type Config struct {
	// ScrollMargin is the number of columns reserved at the right edge
	// before the viewport scrolls horizontally.
	ScrollMargin int

	// PollTimeout bounds each blocking read of the event queue so
	// resize notifications are serviced promptly.
	PollTimeout time.Duration

	// FallbackCols and FallbackRows are used when the terminal size
	// cannot be queried.
	FallbackCols int
	FallbackRows int
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		ScrollMargin: 10,
		PollTimeout:  100 * time.Millisecond,
		FallbackCols: 80,
		FallbackRows: 24,
	}
}

// Validate checks the configuration for values the editor cannot run
// with.
func (c Config) Validate() error {
	if c.ScrollMargin < 0 {
		return ErrNegativeMargin
	}
	if c.PollTimeout <= 0 {
		return ErrBadPollTimeout
	}
	if c.FallbackCols < 1 || c.FallbackRows < 2 {
		return ErrBadFallbackSize
	}
	return nil
}
