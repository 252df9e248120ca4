// chess-sim is an interactive two-player chess game for the terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chess-sim-go/internal/config"
	"github.com/lgbarn/chess-sim-go/internal/engine"
	"github.com/lgbarn/chess-sim-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-sim-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)
	setupTranscriptFile(cfg)

	game, err := newGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if *perftDepth > 0 {
		if err := runPerft(cfg, game, *perftDepth, numWorkers()); err != nil {
			fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	s := newSession(cfg, game)
	if err := s.Run(os.Stdin); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := s.WriteTranscript(); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error writing transcript: %v\n", err)
		os.Exit(1)
	}
}

// newGame creates the game from the configured start position.
func newGame(cfg *config.Config) (*engine.Game, error) {
	if cfg.Play.StartFEN == "" {
		return engine.NewGame(), nil
	}
	return engine.NewGameFromFEN(cfg.Play.StartFEN)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// setupTranscriptFile opens the transcript destination. Without -T the
// transcript follows the board on the output.
func setupTranscriptFile(cfg *config.Config) {
	if cfg.Output.Transcript == config.NoTranscript {
		return
	}
	if cfg.TranscriptFilename == "" {
		cfg.TranscriptFile = cfg.OutputFile
		return
	}

	file, err := os.Create(cfg.TranscriptFilename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating transcript file %s: %v\n", cfg.TranscriptFilename, err)
		os.Exit(1)
	}
	cfg.TranscriptFile = file
}

// newTranscriptWriter returns the configured transcript writer, or nil.
func newTranscriptWriter(cfg *config.Config) output.TranscriptWriter {
	if cfg.TranscriptFile == nil {
		return nil
	}
	return output.NewTranscriptWriter(cfg.TranscriptFile, cfg.Output.Transcript)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-sim [options]\n\n")
	fmt.Fprintf(os.Stderr, "Two players take turns entering moves at the prompt.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMove input:\n")
	fmt.Fprintf(os.Stderr, "  e2 e4     origin and destination, separated by a space\n")
	fmt.Fprintf(os.Stderr, "  e2e4      the same, run together\n")
	fmt.Fprintf(os.Stderr, "  e7 e8 n   promote to a knight (default: queen)\n")
	fmt.Fprintf(os.Stderr, "\nCommands:\n")
	fmt.Fprintf(os.Stderr, "  moves     list the legal moves\n")
	fmt.Fprintf(os.Stderr, "  fen       print the current position as FEN\n")
	fmt.Fprintf(os.Stderr, "  quit      end the game\n")
}
