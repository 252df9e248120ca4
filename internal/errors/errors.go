// Package errors provides sentinel errors and error types for the chess
// rules engine. It defines the move rejection kinds and a structured error
// type that preserves move context while allowing error inspection with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for move rejection and position setup.
// Use these with errors.Is() to check for specific error types.
// Every one of them is recoverable: the caller should ask for another move.
var (
	// ErrOutOfBounds indicates a coordinate that does not name a board square.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrEmptyOrigin indicates there is no piece on the origin square.
	ErrEmptyOrigin = errors.New("no piece on origin square")

	// ErrWrongSideToMove indicates the origin piece belongs to the side not on move.
	ErrWrongSideToMove = errors.New("wrong side to move")

	// ErrIllegalForPiece indicates the piece cannot move that way.
	ErrIllegalForPiece = errors.New("illegal move for piece")

	// ErrLeavesKingInCheck indicates the move would leave the mover's king attacked.
	ErrLeavesKingInCheck = errors.New("move leaves king in check")

	// ErrGameAlreadyOver indicates a move attempted after checkmate or stalemate.
	ErrGameAlreadyOver = errors.New("game already over")

	// ErrInvalidPromotion indicates a promotion choice other than N, B, R or Q.
	ErrInvalidPromotion = errors.New("invalid promotion piece")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration settings.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a rejection with the move that caused it.
// It implements the error interface and supports unwrapping via
// errors.Is() and errors.As().
type MoveError struct {
	Err  error  // The underlying error
	From string // Origin square as given (if known)
	To   string // Destination square as given (if known)
	Ply  int    // 1-based half-move the move was attempted at (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	}

	context := strings.Join(parts, ", ")

	switch {
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	default:
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
