package engine

import "github.com/lgbarn/chess-sim-go/internal/chess"

// isKnightMove checks the (1,2)/(2,1) jump.
func isKnightMove(from, to chess.Square) bool {
	fileDiff := abs(int(to.File) - int(from.File))
	rankDiff := abs(int(to.Rank) - int(from.Rank))
	return (fileDiff == 1 && rankDiff == 2) || (fileDiff == 2 && rankDiff == 1)
}

// isKingStep checks a one-square move in any direction.
func isKingStep(from, to chess.Square) bool {
	fileDiff := abs(int(to.File) - int(from.File))
	rankDiff := abs(int(to.Rank) - int(from.Rank))
	return from != to && fileDiff <= 1 && rankDiff <= 1
}

// slides checks ray movement for bishops, rooks and queens.
func slides(board *chess.Board, pieceType chess.Piece, from, to chess.Square) bool {
	switch pieceType {
	case chess.Bishop:
		return isDiagonal(from, to) && isPathClear(board, from, to)

	case chess.Rook:
		return isStraight(from, to) && isPathClear(board, from, to)

	case chess.Queen:
		return (isDiagonal(from, to) || isStraight(from, to)) && isPathClear(board, from, to)
	}

	return false
}
