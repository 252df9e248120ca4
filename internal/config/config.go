// Package config provides configuration for the chess-sim command.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-sim-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=results, 2=running commentary

	// Grouped settings
	Output OutputConfig
	Play   PlayConfig

	// File handling
	TranscriptFilename string

	// Output streams
	OutputFile     io.Writer
	LogFile        io.Writer
	TranscriptFile io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     *NewOutputConfig(),
		Play:       *NewPlayConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer the board and prompts are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks the configuration as a whole.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d out of range 0-2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if err := c.Play.Validate(); err != nil {
		return err
	}
	if c.TranscriptFilename != "" && c.Output.Transcript == NoTranscript {
		return fmt.Errorf("transcript file %q given without a transcript format: %w",
			c.TranscriptFilename, errors.ErrInvalidConfig)
	}
	return nil
}
