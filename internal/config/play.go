package config

import (
	"fmt"

	"github.com/lgbarn/chess-sim-go/internal/errors"
)

// PlayConfig holds settings for the game being played.
type PlayConfig struct {
	// StartFEN is the starting position; empty means the standard one
	StartFEN string

	// MaxPlies stops the game after this many half-moves (0 = no limit)
	MaxPlies uint

	// ShowHints lists the legal moves of the side to move before each prompt
	ShowHints bool
}

// NewPlayConfig creates a PlayConfig with default values.
// All fields use Go zero values: standard start, no ply limit, no hints.
func NewPlayConfig() *PlayConfig {
	return &PlayConfig{}
}

// Validate checks that the play configuration is valid. The start
// position itself is checked when the game is created.
func (p *PlayConfig) Validate() error {
	if p.MaxPlies > 10000 {
		return fmt.Errorf("ply limit %d too large: %w", p.MaxPlies, errors.ErrInvalidConfig)
	}
	return nil
}
