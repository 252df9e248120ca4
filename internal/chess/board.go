package chess

// Board holds piece placement and the global game state needed for move
// validation. It carries no rules of its own. Board is a value type: Copy
// (or plain assignment) yields an independent board.
type Board struct {
	squares [NumSquares]ColouredPiece

	// Who has the next move.
	toMove Colour

	// Remaining castling eligibility. Bits are only ever cleared.
	castling CastlingRights

	// Is en passant capture possible? If so then epTarget is the square
	// the double-stepping pawn skipped over.
	enPassant bool
	epTarget  Square

	// Whether the side to move is in check. Maintained by the move applier.
	inCheck bool

	// The current move number.
	MoveNumber uint

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{
		toMove:     White,
		MoveNumber: 1,
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.squares = [NumSquares]ColouredPiece{}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.squares[file] = W(backRank[file])
		b.squares[BoardSize+file] = W(Pawn)
		b.squares[6*BoardSize+file] = B(Pawn)
		b.squares[7*BoardSize+file] = B(backRank[file])
	}

	b.toMove = White
	b.castling = AllCastling
	b.enPassant = false
	b.inCheck = false
	b.MoveNumber = 1
	b.HalfmoveClock = 0
}

// At returns the piece on a square, or NoPiece.
func (b *Board) At(sq Square) ColouredPiece {
	return b.squares[sq.Index()]
}

// Set places a piece on a square, replacing any occupant.
func (b *Board) Set(sq Square, piece ColouredPiece) {
	b.squares[sq.Index()] = piece
}

// Clear empties a square.
func (b *Board) Clear(sq Square) {
	b.squares[sq.Index()] = NoPiece
}

// IsEmpty reports whether a square is unoccupied.
func (b *Board) IsEmpty(sq Square) bool {
	return b.squares[sq.Index()] == NoPiece
}

// SideToMove returns the colour to move.
func (b *Board) SideToMove() Colour {
	return b.toMove
}

// SetSideToMove is used when setting up a position.
func (b *Board) SetSideToMove(colour Colour) {
	b.toMove = colour
}

// ToggleSide passes the move to the other colour, advancing the move
// number after Black has moved.
func (b *Board) ToggleSide() {
	if b.toMove == Black {
		b.MoveNumber++
	}
	b.toMove = b.toMove.Opposite()
}

// CastlingRights returns the remaining castling rights.
func (b *Board) CastlingRights() CastlingRights {
	return b.castling
}

// GrantCastling is used when setting up a position.
func (b *Board) GrantCastling(rights CastlingRights) {
	b.castling |= rights
}

// Revoke permanently removes a castling right.
func (b *Board) Revoke(colour Colour, side CastleSide) {
	b.castling = b.castling.Without(colour, side)
}

// RevokeAll removes both castling rights of a colour.
func (b *Board) RevokeAll(colour Colour) {
	b.Revoke(colour, Kingside)
	b.Revoke(colour, Queenside)
}

// EnPassantTarget returns the square a pawn skipped over on the previous
// half-move, if any.
func (b *Board) EnPassantTarget() (Square, bool) {
	return b.epTarget, b.enPassant
}

// ArmEnPassant records target as capturable en passant on the next half-move only.
func (b *Board) ArmEnPassant(target Square) {
	b.enPassant = true
	b.epTarget = target
}

// ClearEnPassant removes any en passant target.
func (b *Board) ClearEnPassant() {
	b.enPassant = false
	b.epTarget = Square{}
}

// InCheck returns the cached "side to move is in check" flag.
func (b *Board) InCheck() bool {
	return b.inCheck
}

// SetInCheck stores the check flag. Only the move applier and position
// setup call this.
func (b *Board) SetInCheck(inCheck bool) {
	b.inCheck = inCheck
}

// Pieces returns the active pieces of a colour in square order.
func (b *Board) Pieces(colour Colour) []PlacedPiece {
	pieces := make([]PlacedPiece, 0, 16)
	for i, p := range b.squares {
		if p.BelongsTo(colour) {
			sq, _ := SquareFromIndex(i)
			pieces = append(pieces, PlacedPiece{Piece: p, Square: sq})
		}
	}
	return pieces
}

// FindKing finds the king of the given colour on the board.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	king := MakeColouredPiece(colour, King)
	for i, p := range b.squares {
		if p == king {
			return SquareFromIndex(i)
		}
	}
	return Square{}, false
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Squares returns a copy of the occupancy array, indexed by Square.Index.
func (b *Board) Squares() [NumSquares]ColouredPiece {
	return b.squares
}
