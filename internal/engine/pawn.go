package engine

import "github.com/lgbarn/chess-sim-go/internal/chess"

// classifyPawn applies the pawn rules: single push, double push from the
// starting rank, diagonal capture, and en passant against the board's
// armed target.
func classifyPawn(board *chess.Board, from, to chess.Square, colour chess.Colour) chess.MoveKind {
	dir := chess.ColourOffset(colour)
	fileDiff := int(to.File) - int(from.File)
	rankDiff := int(to.Rank) - int(from.Rank)
	target := board.At(to)

	switch {
	case fileDiff == 0 && rankDiff == dir:
		if target.IsEmpty() {
			return chess.Plain
		}

	case fileDiff == 0 && rankDiff == 2*dir:
		if int(from.Rank) != chess.PawnRank(colour) {
			return chess.Illegal
		}
		middle, _ := from.Offset(0, dir)
		if board.IsEmpty(middle) && target.IsEmpty() {
			return chess.PawnDoubleStep
		}

	case abs(fileDiff) == 1 && rankDiff == dir:
		if target.BelongsTo(colour.Opposite()) {
			return chess.Plain
		}
		if target.IsEmpty() && isEnPassant(board, from, to, colour) {
			return chess.EnPassantCapture
		}
	}

	return chess.Illegal
}

// isEnPassant checks a diagonal step onto the armed en passant target with
// the enemy pawn that just double-stepped standing beside the mover.
func isEnPassant(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	target, ok := board.EnPassantTarget()
	if !ok || target != to {
		return false
	}
	return board.At(enPassantVictim(from, to)).Is(colour.Opposite(), chess.Pawn)
}

// enPassantVictim returns the square of the pawn taken en passant: the
// destination file on the origin rank.
func enPassantVictim(from, to chess.Square) chess.Square {
	return chess.Square{File: to.File, Rank: from.Rank}
}

// isPawnAttack reports whether a pawn of colour on from attacks to.
func isPawnAttack(from, to chess.Square, colour chess.Colour) bool {
	fileDiff := abs(int(to.File) - int(from.File))
	rankDiff := int(to.Rank) - int(from.Rank)
	return fileDiff == 1 && rankDiff == chess.ColourOffset(colour)
}

// isPromotion reports whether a pawn of colour arriving on to must promote.
func isPromotion(piece chess.ColouredPiece, to chess.Square) bool {
	return piece.Piece() == chess.Pawn && int(to.Rank) == chess.PromotionRank(piece.Colour())
}
