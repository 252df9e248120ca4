package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-sim-go/internal/chess"
)

// Annotate renders a move report in Standard Algebraic Notation,
// e.g. "e4", "Nbd2", "exd6", "O-O", "e8=Q+" or "Qh4#".
func Annotate(r MoveReport) string {
	var sb strings.Builder

	switch {
	case r.Kind == chess.CastleKingside:
		sb.WriteString("O-O")
	case r.Kind == chess.CastleQueenside:
		sb.WriteString("O-O-O")
	case r.Piece.Piece() == chess.Pawn:
		if r.IsCapture() {
			sb.WriteByte(r.Move.From.FileLetter())
			sb.WriteByte('x')
		}
		sb.WriteString(r.Move.To.String())
		if r.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(r.Move.Promotion.Letter())
		}
	default:
		sb.WriteByte(r.Piece.Piece().Letter())
		sb.WriteString(r.Disambiguation)
		if r.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(r.Move.To.String())
	}

	switch r.State {
	case Checkmate:
		sb.WriteByte('#')
	case Check:
		sb.WriteByte('+')
	}

	return sb.String()
}

// disambiguation returns the origin qualifier SAN needs when another piece
// of the same kind and colour could also legally move to to: the file if
// that is enough, else the rank, else the full square.
func disambiguation(board *chess.Board, from, to chess.Square) string {
	piece := board.At(from)
	if piece.Piece() == chess.Pawn || piece.Piece() == chess.King {
		return ""
	}

	ambiguous, sameFile, sameRank := false, false, false
	for _, p := range board.Pieces(piece.Colour()) {
		if p.Square == from || p.Piece != piece {
			continue
		}
		if !IsLegal(board, p.Square, to) {
			continue
		}
		ambiguous = true
		sameFile = sameFile || p.Square.File == from.File
		sameRank = sameRank || p.Square.Rank == from.Rank
	}

	switch {
	case !ambiguous:
		return ""
	case !sameFile:
		return string(from.FileLetter())
	case !sameRank:
		return string(from.RankDigit())
	default:
		return from.String()
	}
}

// MoveText renders a move with its move number, e.g. "1. e4" or "1... e5".
func MoveText(r MoveReport) string {
	if r.Colour() == chess.White {
		return fmt.Sprintf("%d. %s", r.MoveNumber, Annotate(r))
	}
	return fmt.Sprintf("%d... %s", r.MoveNumber, Annotate(r))
}
