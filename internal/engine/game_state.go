package engine

import "github.com/lgbarn/chess-sim-go/internal/chess"

// GameState is the status of the side to move.
type GameState int

const (
	Normal GameState = iota
	Check
	Checkmate
	Stalemate
)

// String returns the name of the state.
func (s GameState) String() string {
	switch s {
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "Normal"
	}
}

// IsTerminal reports whether the game has ended.
func (s GameState) IsTerminal() bool {
	return s == Checkmate || s == Stalemate
}

// Status classifies the position for the side to move. The search for a
// legal move stops at the first one found.
func Status(board *chess.Board) GameState {
	colour := board.SideToMove()
	inCheck := IsInCheck(board, colour)

	if HasLegalMoves(board, colour) {
		if inCheck {
			return Check
		}
		return Normal
	}

	if inCheck {
		return Checkmate
	}
	return Stalemate
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	return Status(board) == Checkmate
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	return Status(board) == Stalemate
}
