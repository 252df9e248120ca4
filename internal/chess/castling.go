package chess

// CastleSide selects the rook a king castles with.
type CastleSide int

const (
	Kingside CastleSide = iota
	Queenside
)

// String returns "kingside" or "queenside".
func (s CastleSide) String() string {
	if s == Kingside {
		return "kingside"
	}
	return "queenside"
}

// CastlingRights holds the four independent castling eligibility bits.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// CastlingRight returns the single bit for a colour and side.
func CastlingRight(colour Colour, side CastleSide) CastlingRights {
	switch {
	case colour == White && side == Kingside:
		return WhiteKingside
	case colour == White:
		return WhiteQueenside
	case side == Kingside:
		return BlackKingside
	default:
		return BlackQueenside
	}
}

// Has reports whether colour may still castle on side.
func (r CastlingRights) Has(colour Colour, side CastleSide) bool {
	return r&CastlingRight(colour, side) != 0
}

// Without returns r with the given right cleared.
func (r CastlingRights) Without(colour Colour, side CastleSide) CastlingRights {
	return r &^ CastlingRight(colour, side)
}

// String returns the FEN castling field ("KQkq", "-" when none).
func (r CastlingRights) String() string {
	var b []byte
	if r&WhiteKingside != 0 {
		b = append(b, 'K')
	}
	if r&WhiteQueenside != 0 {
		b = append(b, 'Q')
	}
	if r&BlackKingside != 0 {
		b = append(b, 'k')
	}
	if r&BlackQueenside != 0 {
		b = append(b, 'q')
	}
	if len(b) == 0 {
		return "-"
	}
	return string(b)
}

// Home squares used by castling. Only standard chess is supported.
const (
	KingHomeFile      = 4
	KingsideRookFile  = 7
	QueensideRookFile = 0
)

// KingHome returns the king's starting square for a colour.
func KingHome(colour Colour) Square {
	return Square{File: KingHomeFile, Rank: int8(HomeRank(colour))}
}

// RookHome returns the starting square of the rook that castles on side.
func RookHome(colour Colour, side CastleSide) Square {
	file := KingsideRookFile
	if side == Queenside {
		file = QueensideRookFile
	}
	return Square{File: int8(file), Rank: int8(HomeRank(colour))}
}

// CastleKingTarget returns where the king lands when castling on side.
func CastleKingTarget(colour Colour, side CastleSide) Square {
	file := 6
	if side == Queenside {
		file = 2
	}
	return Square{File: int8(file), Rank: int8(HomeRank(colour))}
}

// CastleRookTarget returns where the rook lands when castling on side.
func CastleRookTarget(colour Colour, side CastleSide) Square {
	file := 5
	if side == Queenside {
		file = 3
	}
	return Square{File: int8(file), Rank: int8(HomeRank(colour))}
}
