package chess

// MoveKind classifies a proposed move. The applier needs the distinction
// because several kinds carry side effects beyond relocating one piece.
type MoveKind int

const (
	Illegal          MoveKind = iota
	Plain                     // Ordinary move or capture
	PawnDoubleStep            // Two-rank pawn advance; arms en passant
	EnPassantCapture          // Captured pawn sits beside the mover, not on the destination
	CastleKingside
	CastleQueenside
)

// String returns the name of the move kind.
func (k MoveKind) String() string {
	names := []string{"Illegal", "Plain", "PawnDoubleStep", "EnPassantCapture", "CastleKingside", "CastleQueenside"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// IsCastle returns true if this is a castling move.
func (k MoveKind) IsCastle() bool {
	switch k {
	case CastleKingside, CastleQueenside:
		return true
	default:
		return false
	}
}

// CastleSide returns the side castled on. Only meaningful when IsCastle.
func (k MoveKind) CastleSide() CastleSide {
	if k == CastleQueenside {
		return Queenside
	}
	return Kingside
}

// Move is a source-destination pair with an optional promotion piece
// (Empty when none).
type Move struct {
	From      Square
	To        Square
	Promotion Piece
}

// String returns long algebraic notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != Empty {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}

// PlacedPiece is a piece together with the square it stands on.
type PlacedPiece struct {
	Piece  ColouredPiece
	Square Square
}
