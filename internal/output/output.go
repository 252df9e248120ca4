// Package output renders boards, move announcements and game transcripts.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-sim-go/internal/chess"
	"github.com/lgbarn/chess-sim-go/internal/engine"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// Announce describes an applied move in words, e.g. "Pawn to e4",
// "Knight to f6, takes Bishop" or "King castle".
func Announce(r engine.MoveReport) string {
	if r.Kind.IsCastle() {
		return "King castle"
	}

	s := fmt.Sprintf("%s to %s", r.Piece.Piece(), r.Move.To)
	if r.IsCapture() {
		s += fmt.Sprintf(", takes %s", r.Captured.Piece.Piece())
	}
	if r.IsPromotion() {
		s += fmt.Sprintf(", promotes to %s", r.Move.Promotion)
	}
	return s
}

// StatusLine describes the position for the operator: whose move it is,
// check, or how the game ended.
func StatusLine(s engine.BoardSnapshot) string {
	switch s.State {
	case engine.Checkmate:
		return fmt.Sprintf("Checkmate. %s wins", s.ToMove.Opposite())
	case engine.Stalemate:
		return "Stalemate. The game is drawn"
	case engine.Check:
		return fmt.Sprintf("%s to move, in check", s.ToMove)
	default:
		return fmt.Sprintf("%s to move", s.ToMove)
	}
}

// Result returns the PGN result token for a finished or unfinished game.
// winner is only consulted for checkmate.
func Result(state engine.GameState, winner chess.Colour) string {
	switch state {
	case engine.Checkmate:
		if winner == chess.White {
			return "1-0"
		}
		return "0-1"
	case engine.Stalemate:
		return "1/2-1/2"
	default:
		return "*"
	}
}
