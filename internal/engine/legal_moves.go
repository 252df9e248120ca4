package engine

import "github.com/lgbarn/chess-sim-go/internal/chess"

// promotionChoices lists the pieces a pawn may become, strongest first.
var promotionChoices = []chess.Piece{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// IsLegal returns true if the move obeys the moving piece's rules and does
// not leave the mover's own king attacked. The board is not modified.
func IsLegal(board *chess.Board, from, to chess.Square) bool {
	kind := Classify(board, from, to)
	return kind != chess.Illegal && keepsKingSafe(board, chess.Move{From: from, To: to}, kind)
}

// keepsKingSafe plays a classified move on a scratch copy of the board and
// checks whether the mover's king is attacked afterwards.
func keepsKingSafe(board *chess.Board, move chess.Move, kind chess.MoveKind) bool {
	colour := board.At(move.From).Colour()

	scratch := *board
	place(&scratch, move, kind)

	return !IsInCheck(&scratch, colour)
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, p := range board.Pieces(colour) {
		if hasLegalMovesForPiece(board, p.Square) {
			return true
		}
	}
	return false
}

// hasLegalMovesForPiece checks if a specific piece has any legal moves.
func hasLegalMovesForPiece(board *chess.Board, from chess.Square) bool {
	for i := 0; i < chess.NumSquares; i++ {
		to, _ := chess.SquareFromIndex(i)
		if IsLegal(board, from, to) {
			return true
		}
	}
	return false
}

// LegalMoves returns every legal move for the side to move, ordered by
// origin and then destination square. A promoting pawn move appears once
// per promotion piece.
func LegalMoves(board *chess.Board) []chess.Move {
	var moves []chess.Move
	for _, p := range board.Pieces(board.SideToMove()) {
		moves = appendLegalMovesFrom(moves, board, p.Square)
	}
	return moves
}

// LegalMovesFrom returns the legal moves of the piece on from.
func LegalMovesFrom(board *chess.Board, from chess.Square) []chess.Move {
	return appendLegalMovesFrom(nil, board, from)
}

func appendLegalMovesFrom(moves []chess.Move, board *chess.Board, from chess.Square) []chess.Move {
	piece := board.At(from)
	for i := 0; i < chess.NumSquares; i++ {
		to, _ := chess.SquareFromIndex(i)
		if !IsLegal(board, from, to) {
			continue
		}
		if !isPromotion(piece, to) {
			moves = append(moves, chess.Move{From: from, To: to})
			continue
		}
		for _, promo := range promotionChoices {
			moves = append(moves, chess.Move{From: from, To: to, Promotion: promo})
		}
	}
	return moves
}

// Perft counts the leaf positions reachable in depth half-moves.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	moves := LegalMoves(board)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, move := range moves {
		child := *board
		commit(&child, move, Classify(&child, move.From, move.To))
		nodes += Perft(&child, depth-1)
	}
	return nodes
}
