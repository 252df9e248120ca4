package engine

import "github.com/lgbarn/chess-sim-go/internal/chess"

// place moves the pieces for an already classified move: it removes the
// captured piece (beside the destination for en passant), relocates the
// mover and, when castling, the rook. A pawn reaching the last rank is
// replaced by the promotion piece, a queen when none was chosen.
// No other board state is touched. It returns the captured piece, with
// Piece set to NoPiece when nothing was taken.
func place(board *chess.Board, move chess.Move, kind chess.MoveKind) chess.PlacedPiece {
	piece := board.At(move.From)
	colour := piece.Colour()

	captured := chess.PlacedPiece{Square: move.To, Piece: board.At(move.To)}
	if kind == chess.EnPassantCapture {
		victim := enPassantVictim(move.From, move.To)
		captured = chess.PlacedPiece{Square: victim, Piece: board.At(victim)}
		board.Clear(victim)
	}

	board.Clear(move.From)
	board.Set(move.To, piece)

	if kind.IsCastle() {
		rookFrom, rookTo := castlingRookMove(colour, kind)
		rook := board.At(rookFrom)
		board.Clear(rookFrom)
		board.Set(rookTo, rook)
	}

	if isPromotion(piece, move.To) {
		board.Set(move.To, chess.MakeColouredPiece(colour, promotionPiece(move.Promotion)))
	}

	return captured
}

// commit applies a classified, legal move to the board: piece placement,
// castling rights, en passant target, clocks, side to move and the check
// flag for the side now to move.
func commit(board *chess.Board, move chess.Move, kind chess.MoveKind) chess.PlacedPiece {
	piece := board.At(move.From)
	colour := piece.Colour()

	captured := place(board, move, kind)

	// Update castling rights if king or rook moved, or a rook was captured
	switch piece.Piece() {
	case chess.King:
		board.RevokeAll(colour)
	case chess.Rook:
		revokeForRookSquare(board, colour, move.From)
	}
	if captured.Piece.Piece() == chess.Rook {
		revokeForRookSquare(board, captured.Piece.Colour(), captured.Square)
	}

	board.ClearEnPassant()
	if kind == chess.PawnDoubleStep {
		skipped, _ := move.From.Offset(0, chess.ColourOffset(colour))
		board.ArmEnPassant(skipped)
	}

	if piece.Piece() == chess.Pawn || !captured.Piece.IsEmpty() {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}

	board.ToggleSide()
	board.SetInCheck(IsInCheck(board, board.SideToMove()))

	return captured
}

// promotionPiece returns the piece a pawn becomes, defaulting to a queen.
func promotionPiece(choice chess.Piece) chess.Piece {
	if choice.IsPromotionChoice() {
		return choice
	}
	return chess.Queen
}
