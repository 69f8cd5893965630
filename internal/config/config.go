// Package config provides configuration for the chess rule engine and its prompt.
package config

import (
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Verbosity levels for the log stream.
const (
	Silent     = 0 // Nothing is logged
	Results    = 1 // Game results only
	Commentary = 2 // Running commentary of every selection and move
)

// Config holds all program configuration.
type Config struct {
	// Player names
	BottomName string
	TopName    string

	// Logging
	Verbosity int // 0=nothing, 1=results, 2=running commentary
	LogFile   io.Writer

	// Output
	OutputFile      io.Writer
	JSONFormat      bool
	ShowCoordinates bool
	UseColour       bool

	// Replay
	Duplicate DuplicateConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		BottomName:      "Player 1",
		TopName:         "Player 2",
		Verbosity:       Results,
		LogFile:         os.Stderr,
		OutputFile:      os.Stdout,
		ShowCoordinates: true,
	}
}

// Validate reports configuration values the engine cannot run with.
func (c *Config) Validate() error {
	bottom := strings.TrimSpace(c.BottomName)
	top := strings.TrimSpace(c.TopName)
	switch {
	case bottom == "" || top == "":
		return errors.Wrap(errors.ErrInvalidConfig, "player names must not be empty")
	case bottom == top:
		return errors.Wrapf(errors.ErrInvalidConfig, "player names must differ (both %q)", bottom)
	case c.Verbosity < Silent:
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d", c.Verbosity)
	}
	return nil
}

// Logging reports whether messages at level should be written.
func (c *Config) Logging(level int) bool {
	return c.LogFile != nil && c.Verbosity >= level
}
