package engine

import (
	"testing"

	"github.com/lgbarn/chess-sim-go/internal/chess"
)

// mustBoard parses a FEN position or fails the test.
func mustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board
}

// mustGame creates a game from a FEN position or fails the test.
func mustGame(t testing.TB, fen string) *Game {
	t.Helper()
	game, err := NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q) error: %v", fen, err)
	}
	return game
}

// sq is shorthand for chess.MustSquare.
func sq(s string) chess.Square {
	return chess.MustSquare(s)
}

// play applies moves written as "e2e4" or "e7e8q" and fails on the first error.
func play(t testing.TB, game *Game, moves ...string) []MoveReport {
	t.Helper()
	var reports []MoveReport
	for _, m := range moves {
		promotion := ""
		if len(m) == 5 {
			promotion = m[4:]
		}
		report, err := game.ApplyMoveText(m[0:2], m[2:4], promotion)
		if err != nil {
			t.Fatalf("ApplyMoveText(%q) error: %v", m, err)
		}
		reports = append(reports, report)
	}
	return reports
}

// moveStrings renders moves in long algebraic form.
func moveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}
