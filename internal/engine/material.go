package engine

import "github.com/lgbarn/chess-sim-go/internal/chess"

// pieceValues are the conventional material values; the king has none.
var pieceValues = [chess.NumPieceValues]int{
	chess.Pawn:   1,
	chess.Knight: 3,
	chess.Bishop: 3,
	chess.Rook:   5,
	chess.Queen:  9,
}

// PieceValue returns the material value of a piece kind.
func PieceValue(piece chess.Piece) int {
	if piece < 0 || piece >= chess.NumPieceValues {
		return 0
	}
	return pieceValues[piece]
}

// Material returns the total material value of a colour's pieces.
func Material(board *chess.Board, colour chess.Colour) int {
	total := 0
	for _, p := range board.Pieces(colour) {
		total += PieceValue(p.Piece.Piece())
	}
	return total
}

// MaterialBalance returns White's material minus Black's.
func MaterialBalance(board *chess.Board) int {
	return Material(board, chess.White) - Material(board, chess.Black)
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side. It is informational only: the game
// continues until checkmate or stalemate.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.Piece
	var whiteBishopOnLight, blackBishopOnLight bool

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, p := range board.Pieces(colour) {
			pieceType := p.Piece.Piece()

			// Kings don't count for material
			if pieceType == chess.King {
				continue
			}

			// Any pawn, rook, or queen means sufficient material
			if pieceType == chess.Pawn || pieceType == chess.Rook || pieceType == chess.Queen {
				return false
			}

			if colour == chess.White {
				whitePieces = append(whitePieces, pieceType)
				if pieceType == chess.Bishop {
					whiteBishopOnLight = p.Square.IsLight()
				}
			} else {
				blackPieces = append(blackPieces, pieceType)
				if pieceType == chess.Bishop {
					blackBishopOnLight = p.Square.IsLight()
				}
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}
