package main

import (
	"testing"

	"github.com/lgbarn/chess-sim-go/internal/config"
	"github.com/lgbarn/chess-sim-go/internal/errors"
	"github.com/lgbarn/chess-sim-go/internal/testutil"
)

// saveRestoreBool sets a flag pointer and returns a func restoring it.
// Usage: defer saveRestoreBool(flipBoard, true)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreUint(ptr *uint, val uint) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

// ---------------------------------------------------------------------------
// applyOutputFlags
// ---------------------------------------------------------------------------

func TestApplyOutputFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := config.NewConfig()
		if err := applyOutputFlags(cfg); err != nil {
			t.Fatalf("applyOutputFlags() error = %v", err)
		}
		if cfg.Output.Glyphs != config.UnicodeGlyphs {
			t.Errorf("Glyphs = %d; want UnicodeGlyphs", cfg.Output.Glyphs)
		}
		if !cfg.Output.ShowCoordinates {
			t.Error("ShowCoordinates = false; want true")
		}
		if cfg.Output.Transcript != config.NoTranscript {
			t.Errorf("Transcript = %v; want none", cfg.Output.Transcript)
		}
	})

	t.Run("all set", func(t *testing.T) {
		defer saveRestoreString(glyphSet, "ASCII")()
		defer saveRestoreBool(flipBoard, true)()
		defer saveRestoreBool(noCoords, true)()
		defer saveRestoreBool(showFEN, true)()
		defer saveRestoreString(transcript, "json")()
		defer saveRestoreString(transcriptF, "game.json")()

		cfg := config.NewConfig()
		if err := applyOutputFlags(cfg); err != nil {
			t.Fatalf("applyOutputFlags() error = %v", err)
		}
		if cfg.Output.Glyphs != config.ASCIIGlyphs {
			t.Errorf("Glyphs = %d; want ASCIIGlyphs", cfg.Output.Glyphs)
		}
		if !cfg.Output.Flip {
			t.Error("Flip = false; want true")
		}
		if cfg.Output.ShowCoordinates {
			t.Error("ShowCoordinates = true; want false")
		}
		if !cfg.Output.ShowFEN {
			t.Error("ShowFEN = false; want true")
		}
		if cfg.Output.Transcript != config.JSONTranscript {
			t.Errorf("Transcript = %v; want json", cfg.Output.Transcript)
		}
		if cfg.TranscriptFilename != "game.json" {
			t.Errorf("TranscriptFilename = %q; want %q", cfg.TranscriptFilename, "game.json")
		}
	})

	tests := []struct {
		name       string
		glyphs     string
		transcript string
	}{
		{"bad glyphs", "braille", "none"},
		{"bad transcript", "unicode", "pgn4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreString(glyphSet, tt.glyphs)()
			defer saveRestoreString(transcript, tt.transcript)()
			err := applyOutputFlags(config.NewConfig())
			testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
		})
	}
}

// ---------------------------------------------------------------------------
// applyPlayFlags
// ---------------------------------------------------------------------------

func TestApplyPlayFlags(t *testing.T) {
	defer saveRestoreString(startFEN, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")()
	defer saveRestoreUint(maxPlies, 40)()
	defer saveRestoreBool(showHints, true)()

	cfg := config.NewConfig()
	applyPlayFlags(cfg)

	if cfg.Play.StartFEN != "4k3/8/8/8/8/8/8/4K3 w - - 0 1" {
		t.Errorf("StartFEN = %q", cfg.Play.StartFEN)
	}
	if cfg.Play.MaxPlies != 40 {
		t.Errorf("MaxPlies = %d; want 40", cfg.Play.MaxPlies)
	}
	if !cfg.Play.ShowHints {
		t.Error("ShowHints = false; want true")
	}
}

// ---------------------------------------------------------------------------
// applyFlags
// ---------------------------------------------------------------------------

func TestApplyFlags_Verbosity(t *testing.T) {
	tests := []struct {
		name    string
		quiet   bool
		verbose bool
		want    int
	}{
		{"default", false, false, 1},
		{"quiet", true, false, 0},
		{"verbose", false, true, 2},
		{"quiet wins", true, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(quiet, tt.quiet)()
			defer saveRestoreBool(verbose, tt.verbose)()
			cfg := config.NewConfig()
			if err := applyFlags(cfg); err != nil {
				t.Fatalf("applyFlags() error = %v", err)
			}
			if cfg.Verbosity != tt.want {
				t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, tt.want)
			}
		})
	}
}
