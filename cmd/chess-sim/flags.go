// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-sim-go/internal/config"
)

var (
	// Output options
	outputFile  = flag.String("o", "", "Output file for the board and prompts (default: stdout)")
	glyphSet    = flag.String("glyphs", "unicode", "Piece glyphs: unicode or ascii")
	flipBoard   = flag.Bool("flip", false, "Draw the board from Black's side")
	noCoords    = flag.Bool("nocoords", false, "Don't draw file letters and rank digits")
	showFEN     = flag.Bool("showfen", false, "Print the FEN of each position under the board")
	transcript  = flag.String("transcript", "none", "Transcript format written at the end: none, text, json")
	transcriptF = flag.String("T", "", "Write the transcript to this file (default: output)")

	// Game options
	startFEN  = flag.String("fen", "", "Start from this FEN position")
	maxPlies  = flag.Uint("maxply", 0, "Stop after this many half-moves (0 = no limit)")
	showHints = flag.Bool("hints", false, "List the legal moves before each prompt")

	// Diagnostics
	perftDepth = flag.Int("perft", 0, "Print a perft divide of the start position to this depth and exit")
	workers    = flag.Int("workers", 0, "Number of worker threads for -perft (0 = auto-detect based on CPU cores)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbose   = flag.Bool("verbose", false, "Log every move and rejection")
	quiet     = flag.Bool("s", false, "Silent mode: no diagnostics")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}
	applyPlayFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	return nil
}

// applyOutputFlags configures board drawing and transcript output.
func applyOutputFlags(cfg *config.Config) error {
	glyphs, err := config.ParseGlyphSet(*glyphSet)
	if err != nil {
		return err
	}
	format, err := config.ParseTranscriptFormat(*transcript)
	if err != nil {
		return err
	}

	cfg.Output.Glyphs = glyphs
	cfg.Output.Flip = *flipBoard
	cfg.Output.ShowCoordinates = !*noCoords
	cfg.Output.ShowFEN = *showFEN
	cfg.Output.Transcript = format
	cfg.TranscriptFilename = *transcriptF
	return nil
}

// applyPlayFlags configures the game itself.
func applyPlayFlags(cfg *config.Config) {
	cfg.Play.StartFEN = *startFEN
	cfg.Play.MaxPlies = *maxPlies
	cfg.Play.ShowHints = *showHints
}
