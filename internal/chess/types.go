// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece kind.
type Piece int

const (
	Empty Piece = iota // Empty square, or no piece chosen
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// IsPromotionChoice reports whether a pawn may promote to p.
func (p Piece) IsPromotionChoice() bool {
	switch p {
	case Knight, Bishop, Rook, Queen:
		return true
	default:
		return false
	}
}

// PieceFromLetter converts a piece letter (either case) to a piece kind.
// It returns Empty for anything else.
func PieceFromLetter(c byte) Piece {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return Empty
	}
}

// ColouredPiece is a piece kind together with its colour, as stored on a square.
// The zero value is NoPiece.
type ColouredPiece uint8

// NoPiece marks an empty square.
const NoPiece ColouredPiece = 0

// PieceShift is used for encoding coloured pieces.
const PieceShift = 1

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) ColouredPiece {
	if piece == Empty {
		return NoPiece
	}
	return ColouredPiece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) ColouredPiece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) ColouredPiece {
	return MakeColouredPiece(Black, piece)
}

// Colour extracts the colour. It is meaningless for NoPiece.
func (cp ColouredPiece) Colour() Colour {
	return Colour(cp & 0x01)
}

// Piece extracts the piece kind.
func (cp ColouredPiece) Piece() Piece {
	return Piece(cp >> PieceShift)
}

// IsEmpty reports whether cp is NoPiece.
func (cp ColouredPiece) IsEmpty() bool {
	return cp == NoPiece
}

// Is reports whether cp is a piece of the given colour and kind.
func (cp ColouredPiece) Is(colour Colour, piece Piece) bool {
	return cp != NoPiece && cp.Colour() == colour && cp.Piece() == piece
}

// BelongsTo reports whether cp is a piece of the given colour.
func (cp ColouredPiece) BelongsTo(colour Colour) bool {
	return cp != NoPiece && cp.Colour() == colour
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (cp ColouredPiece) Letter() byte {
	if cp == NoPiece {
		return ' '
	}
	letter := cp.Piece().Letter()
	if cp.Colour() == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns e.g. "White Knight", or "Empty".
func (cp ColouredPiece) String() string {
	if cp == NoPiece {
		return "Empty"
	}
	return cp.Colour().String() + " " + cp.Piece().String()
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank index for a colour.
func HomeRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the rank index pawns of a colour start on.
func PawnRank(colour Colour) int {
	if colour == White {
		return 1
	}
	return BoardSize - 2
}

// PromotionRank returns the farthest rank index for pawns of a colour.
func PromotionRank(colour Colour) int {
	return HomeRank(colour.Opposite())
}
