package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-sim-go/internal/errors"
)

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	RankBase = '1'
	ColBase  = 'a'
)

// Square is an on-board coordinate. File and Rank are both 0-7,
// so a1 is {0, 0} and h8 is {7, 7}.
type Square struct {
	File int8
	Rank int8
}

// NewSquare returns the square at the given file and rank indices.
// The second result is false when the coordinate is off the board.
func NewSquare(file, rank int) (Square, bool) {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return Square{}, false
	}
	return Square{File: int8(file), Rank: int8(rank)}, true
}

// MustSquare parses an algebraic square and panics on failure.
// Intended for constants and tests.
func MustSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// ParseSquare parses algebraic notation such as "e4" (case-insensitive).
func ParseSquare(s string) (Square, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	if len(t) != 2 {
		return Square{}, fmt.Errorf("square %q: %w", s, errors.ErrOutOfBounds)
	}
	sq, ok := NewSquare(int(t[0])-ColBase, int(t[1])-RankBase)
	if !ok {
		return Square{}, fmt.Errorf("square %q: %w", s, errors.ErrOutOfBounds)
	}
	return sq, nil
}

// SquareFromIndex is the inverse of Index.
func SquareFromIndex(i int) (Square, bool) {
	if i < 0 || i >= NumSquares {
		return Square{}, false
	}
	return Square{File: int8(i % BoardSize), Rank: int8(i / BoardSize)}, true
}

// Index returns rank*8+file. It defines the iteration order a1, b1, ..., h8.
func (s Square) Index() int {
	return int(s.Rank)*BoardSize + int(s.File)
}

// Less orders squares by Index.
func (s Square) Less(o Square) bool {
	return s.Index() < o.Index()
}

// Offset returns the square df files and dr ranks away, if it is on the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	return NewSquare(int(s.File)+df, int(s.Rank)+dr)
}

// FileLetter returns 'a'-'h'.
func (s Square) FileLetter() byte {
	return byte(ColBase + int(s.File))
}

// RankDigit returns '1'-'8'.
func (s Square) RankDigit() byte {
	return byte(RankBase + int(s.Rank))
}

// String returns the algebraic name of the square.
func (s Square) String() string {
	return string([]byte{s.FileLetter(), s.RankDigit()})
}

// IsLight reports whether the square is a light square.
func (s Square) IsLight() bool {
	return (int(s.File)+int(s.Rank))%2 == 1
}

// AllSquares returns every square in Index order.
func AllSquares() []Square {
	squares := make([]Square, 0, NumSquares)
	for i := 0; i < NumSquares; i++ {
		sq, _ := SquareFromIndex(i)
		squares = append(squares, sq)
	}
	return squares
}
