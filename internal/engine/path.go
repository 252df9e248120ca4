package engine

import "github.com/lgbarn/chess-sim-go/internal/chess"

// isPathClear checks that every square strictly between from and to is empty.
// from and to must share a file, rank or diagonal.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	fileDir := sign(int(to.File) - int(from.File))
	rankDir := sign(int(to.Rank) - int(from.Rank))

	sq, ok := from.Offset(fileDir, rankDir)
	for ok && sq != to {
		if !board.IsEmpty(sq) {
			return false
		}
		sq, ok = sq.Offset(fileDir, rankDir)
	}

	return ok
}

// isDiagonal reports whether from and to lie on a common diagonal.
func isDiagonal(from, to chess.Square) bool {
	fileDiff := abs(int(to.File) - int(from.File))
	rankDiff := abs(int(to.Rank) - int(from.Rank))
	return fileDiff == rankDiff && fileDiff != 0
}

// isStraight reports whether from and to share a file or rank.
func isStraight(from, to chess.Square) bool {
	return from != to && (from.File == to.File || from.Rank == to.Rank)
}
