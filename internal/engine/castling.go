package engine

import (
	"github.com/lgbarn/chess-sim-go/internal/chess"
	"github.com/lgbarn/chess-sim-go/internal/errors"
)

// classifyCastle recognises a two-file king move from its home square.
// Rights, rook presence and an empty path are checked first and reported
// as errors.ErrIllegalForPiece; the king being in check or crossing an
// attacked square is reported as errors.ErrLeavesKingInCheck. The attack
// checks go straight to the oracle and never try the king move itself.
func classifyCastle(board *chess.Board, from, to chess.Square, colour chess.Colour) (chess.MoveKind, error) {
	if from != chess.KingHome(colour) {
		return chess.Illegal, errors.ErrIllegalForPiece
	}

	var side chess.CastleSide
	var kind chess.MoveKind
	switch to {
	case chess.CastleKingTarget(colour, chess.Kingside):
		side, kind = chess.Kingside, chess.CastleKingside
	case chess.CastleKingTarget(colour, chess.Queenside):
		side, kind = chess.Queenside, chess.CastleQueenside
	default:
		return chess.Illegal, errors.ErrIllegalForPiece
	}

	rookSquare := chess.RookHome(colour, side)
	if !board.CastlingRights().Has(colour, side) ||
		!board.At(rookSquare).Is(colour, chess.Rook) ||
		!isPathClear(board, from, rookSquare) {
		return chess.Illegal, errors.ErrIllegalForPiece
	}

	if IsAttacked(board, colour, from) {
		return chess.Illegal, errors.ErrLeavesKingInCheck
	}
	step := sign(int(to.File) - int(from.File))
	for sq := from; sq != to; {
		sq, _ = sq.Offset(step, 0)
		if IsAttacked(board, colour, sq) {
			return chess.Illegal, errors.ErrLeavesKingInCheck
		}
	}

	return kind, nil
}

// castlingRookMove returns the rook relocation for a castling kind.
func castlingRookMove(colour chess.Colour, kind chess.MoveKind) (from, to chess.Square) {
	side := kind.CastleSide()
	return chess.RookHome(colour, side), chess.CastleRookTarget(colour, side)
}

// revokeForRookSquare removes the castling right tied to a rook's home
// square when that rook moves away or is captured there.
func revokeForRookSquare(board *chess.Board, colour chess.Colour, sq chess.Square) {
	for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
		if sq == chess.RookHome(colour, side) {
			board.Revoke(colour, side)
		}
	}
}
