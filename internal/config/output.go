package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-sim-go/internal/errors"
)

// GlyphSet selects how pieces are drawn.
type GlyphSet int

const (
	UnicodeGlyphs GlyphSet = iota // ♔ ♕ ♖ ♗ ♘ ♙
	ASCIIGlyphs                   // FEN letters
)

// TranscriptFormat selects how the finished game is recorded.
type TranscriptFormat int

const (
	NoTranscript TranscriptFormat = iota
	TextTranscript
	JSONTranscript
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Glyphs selects Unicode or ASCII piece symbols
	Glyphs GlyphSet

	// Flip draws the board from Black's side
	Flip bool

	// ShowCoordinates prints file letters and rank digits around the board
	ShowCoordinates bool

	// ShowFEN prints the FEN of the position under the board
	ShowFEN bool

	// Transcript selects the transcript format written at the end of the game
	Transcript TranscriptFormat
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Glyphs:          UnicodeGlyphs,
		ShowCoordinates: true,
		Transcript:      NoTranscript,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Glyphs != UnicodeGlyphs && o.Glyphs != ASCIIGlyphs {
		return fmt.Errorf("unknown glyph set %d: %w", o.Glyphs, errors.ErrInvalidConfig)
	}
	if o.Transcript < NoTranscript || o.Transcript > JSONTranscript {
		return fmt.Errorf("unknown transcript format %d: %w", o.Transcript, errors.ErrInvalidConfig)
	}
	return nil
}

// ParseGlyphSet converts a flag value ("unicode" or "ascii") to a GlyphSet.
func ParseGlyphSet(s string) (GlyphSet, error) {
	switch strings.ToLower(s) {
	case "unicode", "":
		return UnicodeGlyphs, nil
	case "ascii":
		return ASCIIGlyphs, nil
	}
	return UnicodeGlyphs, fmt.Errorf("glyph set %q: %w", s, errors.ErrInvalidConfig)
}

// ParseTranscriptFormat converts a flag value ("none", "text" or "json")
// to a TranscriptFormat.
func ParseTranscriptFormat(s string) (TranscriptFormat, error) {
	switch strings.ToLower(s) {
	case "none", "":
		return NoTranscript, nil
	case "text", "san":
		return TextTranscript, nil
	case "json":
		return JSONTranscript, nil
	}
	return NoTranscript, fmt.Errorf("transcript format %q: %w", s, errors.ErrInvalidConfig)
}

// String returns the flag spelling of the format.
func (f TranscriptFormat) String() string {
	switch f {
	case TextTranscript:
		return "text"
	case JSONTranscript:
		return "json"
	default:
		return "none"
	}
}
