package engine

import "github.com/lgbarn/chess-sim-go/internal/chess"

// BoardSnapshot is a view of a game for renderers. It is a plain value
// and shares no memory with the game it was taken from.
type BoardSnapshot struct {
	// Occupancy indexed by Square.Index.
	Squares [chess.NumSquares]chess.ColouredPiece

	ToMove     chess.Colour
	InCheck    bool
	State      GameState
	Castling   chess.CastlingRights
	MoveNumber uint
	FEN        string

	EnPassant       bool
	EnPassantTarget chess.Square

	// White's material minus Black's.
	MaterialBalance int

	// Informational; the game is not ended by either.
	InsufficientMaterial bool
	Repetitions          int
}

// Snapshot captures the current position.
func (g *Game) Snapshot() BoardSnapshot {
	target, ok := g.board.EnPassantTarget()
	return BoardSnapshot{
		Squares:              g.board.Squares(),
		ToMove:               g.board.SideToMove(),
		InCheck:              g.board.InCheck(),
		State:                g.state,
		Castling:             g.board.CastlingRights(),
		MoveNumber:           g.board.MoveNumber,
		FEN:                  BoardToFEN(&g.board),
		EnPassant:            ok,
		EnPassantTarget:      target,
		MaterialBalance:      MaterialBalance(&g.board),
		InsufficientMaterial: HasInsufficientMaterial(&g.board),
		Repetitions:          g.Repetitions(),
	}
}

// At returns the piece on a square, or NoPiece.
func (s BoardSnapshot) At(sq chess.Square) chess.ColouredPiece {
	return s.Squares[sq.Index()]
}

// Pieces returns every piece on the board in square order.
func (s BoardSnapshot) Pieces() []chess.PlacedPiece {
	var pieces []chess.PlacedPiece
	for i, p := range s.Squares {
		if p.IsEmpty() {
			continue
		}
		sq, _ := chess.SquareFromIndex(i)
		pieces = append(pieces, chess.PlacedPiece{Piece: p, Square: sq})
	}
	return pieces
}
