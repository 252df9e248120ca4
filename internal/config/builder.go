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

// WithGlyphs sets the piece glyph set.
func (b *ConfigBuilder) WithGlyphs(glyphs GlyphSet) *ConfigBuilder {
	b.cfg.Output.Glyphs = glyphs
	return b
}

// WithFlippedBoard draws the board from Black's side.
func (b *ConfigBuilder) WithFlippedBoard(flip bool) *ConfigBuilder {
	b.cfg.Output.Flip = flip
	return b
}

// WithTranscript sets the transcript format.
func (b *ConfigBuilder) WithTranscript(format TranscriptFormat) *ConfigBuilder {
	b.cfg.Output.Transcript = format
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Play.StartFEN = fen
	return b
}

// WithMaxPlies sets the ply limit.
func (b *ConfigBuilder) WithMaxPlies(plies uint) *ConfigBuilder {
	b.cfg.Play.MaxPlies = plies
	return b
}

// WithHints enables the legal move list before each prompt.
func (b *ConfigBuilder) WithHints(enabled bool) *ConfigBuilder {
	b.cfg.Play.ShowHints = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
