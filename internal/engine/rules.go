// Package engine provides chess move validation and board manipulation.
package engine

import (
	"github.com/lgbarn/chess-sim-go/internal/chess"
	"github.com/lgbarn/chess-sim-go/internal/errors"
)

// Classify applies the movement rules of the piece on from to a move to
// the given square. It checks geometry, occupancy, en passant eligibility
// and the castling preconditions, but not whether the mover's own king is
// left attacked (see IsLegal). It never modifies the board.
func Classify(board *chess.Board, from, to chess.Square) chess.MoveKind {
	kind, _ := classify(board, from, to)
	return kind
}

// classify is Classify plus the reason an Illegal result was given:
// errors.ErrLeavesKingInCheck when only the castling attack conditions
// failed, errors.ErrIllegalForPiece otherwise.
func classify(board *chess.Board, from, to chess.Square) (chess.MoveKind, error) {
	piece := board.At(from)
	if piece.IsEmpty() || from == to {
		return chess.Illegal, errors.ErrIllegalForPiece
	}

	colour := piece.Colour()
	target := board.At(to)
	if target.BelongsTo(colour) || target.Is(colour.Opposite(), chess.King) {
		return chess.Illegal, errors.ErrIllegalForPiece
	}

	var kind chess.MoveKind
	switch piece.Piece() {
	case chess.Pawn:
		kind = classifyPawn(board, from, to, colour)
	case chess.Knight:
		kind = plainIf(isKnightMove(from, to))
	case chess.Bishop, chess.Rook, chess.Queen:
		kind = plainIf(slides(board, piece.Piece(), from, to))
	case chess.King:
		if isKingStep(from, to) {
			return chess.Plain, nil
		}
		return classifyCastle(board, from, to, colour)
	}

	if kind == chess.Illegal {
		return kind, errors.ErrIllegalForPiece
	}
	return kind, nil
}

// attacks reports whether the piece on from bears on to. It reads the
// same rules as Classify with two differences: a pawn attacks its forward
// diagonals whether or not anything stands there, and a king never castles.
// The occupant of to is ignored.
func attacks(board *chess.Board, from, to chess.Square) bool {
	piece := board.At(from)
	if piece.IsEmpty() || from == to {
		return false
	}

	switch piece.Piece() {
	case chess.Pawn:
		return isPawnAttack(from, to, piece.Colour())
	case chess.Knight:
		return isKnightMove(from, to)
	case chess.Bishop, chess.Rook, chess.Queen:
		return slides(board, piece.Piece(), from, to)
	case chess.King:
		return isKingStep(from, to)
	}
	return false
}

// plainIf maps a geometric test onto Plain or Illegal.
func plainIf(ok bool) chess.MoveKind {
	if ok {
		return chess.Plain
	}
	return chess.Illegal
}
