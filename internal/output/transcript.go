package output

import (
	"github.com/google/uuid"

	"github.com/lgbarn/chess-sim-go/internal/chess"
	"github.com/lgbarn/chess-sim-go/internal/engine"
)

// Transcript is the record of one game: where it started and every move
// applied since.
type Transcript struct {
	ID       uuid.UUID
	StartFEN string
	Moves    []engine.MoveReport

	// State and side to move of the starting position, for games that
	// begin already finished.
	StartState  engine.GameState
	StartToMove chess.Colour
}

// NewTranscript starts a transcript from a game's starting position with
// a fresh game identifier.
func NewTranscript(start engine.BoardSnapshot) *Transcript {
	return &Transcript{
		ID:          uuid.New(),
		StartFEN:    start.FEN,
		StartState:  start.State,
		StartToMove: start.ToMove,
	}
}

// Record appends an applied move.
func (t *Transcript) Record(r engine.MoveReport) {
	t.Moves = append(t.Moves, r)
}

// State returns the state after the last move, or of the start position
// if no move was played.
func (t *Transcript) State() engine.GameState {
	if len(t.Moves) == 0 {
		return t.StartState
	}
	return t.Moves[len(t.Moves)-1].State
}

// Result returns the PGN result token.
func (t *Transcript) Result() string {
	if len(t.Moves) == 0 {
		return Result(t.StartState, t.StartToMove.Opposite())
	}
	last := t.Moves[len(t.Moves)-1]
	return Result(last.State, last.Colour())
}

// FinalFEN returns the position after the last move.
func (t *Transcript) FinalFEN() string {
	if len(t.Moves) == 0 {
		return t.StartFEN
	}
	return t.Moves[len(t.Moves)-1].FEN
}
