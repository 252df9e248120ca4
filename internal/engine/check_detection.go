package engine

import "github.com/lgbarn/chess-sim-go/internal/chess"

// IsAttacked returns true if any piece of colour's opponent bears on sq.
// It answers pure reachability and never consults the legality filter,
// so it is safe to call from castling and legality checks.
func IsAttacked(board *chess.Board, colour chess.Colour, sq chess.Square) bool {
	attacker := colour.Opposite()
	for i := 0; i < chess.NumSquares; i++ {
		from, _ := chess.SquareFromIndex(i)
		if !board.At(from).BelongsTo(attacker) {
			continue
		}
		if attacks(board, from, sq) {
			return true
		}
	}
	return false
}

// IsInCheck returns true if the given colour's king is attacked.
// A colour with no king on the board is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSquare, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	return IsAttacked(board, colour, kingSquare)
}

// Attackers lists the opposing pieces that bear on sq, in square order.
func Attackers(board *chess.Board, colour chess.Colour, sq chess.Square) []chess.PlacedPiece {
	var found []chess.PlacedPiece
	for _, p := range board.Pieces(colour.Opposite()) {
		if attacks(board, p.Square, sq) {
			found = append(found, p)
		}
	}
	return found
}
