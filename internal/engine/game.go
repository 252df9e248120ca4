package engine

import (
	"github.com/lgbarn/chess-sim-go/internal/chess"
	"github.com/lgbarn/chess-sim-go/internal/errors"
	"github.com/lgbarn/chess-sim-go/internal/hashing"
)

// MoveReport describes a move that has been applied.
type MoveReport struct {
	// The move as played. Promotion holds the piece actually promoted to.
	Move chess.Move

	// Outcome of classification.
	Kind chess.MoveKind

	// The piece that moved, as it stood before the move.
	Piece chess.ColouredPiece

	// The piece captured and where it stood (NoPiece if no capture).
	Captured chess.PlacedPiece

	// State of the side now to move.
	State GameState

	// 1-based half-move index and the full-move number the move belongs to.
	Ply        int
	MoveNumber uint

	// SAN disambiguation ("", file, rank or square), worked out before the move.
	Disambiguation string

	// FEN of the position after the move.
	FEN string
}

// IsCapture returns true if this move captured a piece.
func (r MoveReport) IsCapture() bool {
	return !r.Captured.Piece.IsEmpty()
}

// IsPromotion returns true if a pawn was promoted.
func (r MoveReport) IsPromotion() bool {
	return r.Move.Promotion != chess.Empty
}

// Colour returns the colour that made the move.
func (r MoveReport) Colour() chess.Colour {
	return r.Piece.Colour()
}

// Game owns the authoritative board and the move history. It is not safe
// for concurrent use.
type Game struct {
	board     chess.Board
	state     GameState
	history   []MoveReport
	positions *hashing.RepetitionTable
}

// NewGame creates a game from the standard starting position.
func NewGame() *Game {
	return newGameFromBoard(NewInitialBoard())
}

// NewGameFromFEN creates a game from a FEN position.
func NewGameFromFEN(fen string) (*Game, error) {
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return newGameFromBoard(board), nil
}

func newGameFromBoard(board *chess.Board) *Game {
	g := &Game{board: *board, state: Status(board), positions: hashing.NewRepetitionTable()}
	g.positions.Add(board)
	return g
}

// State returns the state of the side to move.
func (g *Game) State() GameState {
	return g.state
}

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// History returns the moves played so far.
func (g *Game) History() []MoveReport {
	history := make([]MoveReport, len(g.history))
	copy(history, g.history)
	return history
}

// Repetitions returns how many times the current position has occurred,
// counting the current occurrence. Repetition never ends the game.
func (g *Game) Repetitions() int {
	return g.positions.Count(&g.board)
}

// LegalMoves returns the legal moves for the side to move.
func (g *Game) LegalMoves() []chess.Move {
	if g.state.IsTerminal() {
		return nil
	}
	return LegalMoves(&g.board)
}

// ApplyMove validates a move in full and, if it is legal, commits it.
// promotion is the piece a pawn reaching the last rank becomes; chess.Empty
// means a queen. It is ignored for other moves. On error the game is
// unchanged and the returned error wraps one of the sentinel errors in
// package errors.
func (g *Game) ApplyMove(from, to chess.Square, promotion chess.Piece) (MoveReport, error) {
	ply := len(g.history) + 1
	reject := func(err error) (MoveReport, error) {
		return MoveReport{}, &errors.MoveError{Err: err, From: from.String(), To: to.String(), Ply: ply}
	}

	if g.state.IsTerminal() {
		return reject(errors.ErrGameAlreadyOver)
	}

	piece := g.board.At(from)
	if piece.IsEmpty() {
		return reject(errors.ErrEmptyOrigin)
	}
	if piece.Colour() != g.board.SideToMove() {
		return reject(errors.ErrWrongSideToMove)
	}

	kind, err := classify(&g.board, from, to)
	if kind == chess.Illegal {
		return reject(err)
	}

	move := chess.Move{From: from, To: to}
	if isPromotion(piece, to) {
		if promotion != chess.Empty && !promotion.IsPromotionChoice() {
			return reject(errors.ErrInvalidPromotion)
		}
		move.Promotion = promotionPiece(promotion)
	}

	if !keepsKingSafe(&g.board, move, kind) {
		return reject(errors.ErrLeavesKingInCheck)
	}

	report := MoveReport{
		Move:           move,
		Kind:           kind,
		Piece:          piece,
		Ply:            ply,
		MoveNumber:     g.board.MoveNumber,
		Disambiguation: disambiguation(&g.board, from, to),
	}

	report.Captured = commit(&g.board, move, kind)
	g.state = Status(&g.board)
	g.positions.Add(&g.board)

	report.State = g.state
	report.FEN = BoardToFEN(&g.board)
	g.history = append(g.history, report)

	return report, nil
}

// ApplyMoveText parses squares such as "e2" and "e4" and an optional
// piece letter for the promotion ("q", "r", "b", "n", either case), then
// applies the move with ApplyMove, so a letter on a non-promoting move is
// ignored. Text that names no piece is rejected with ErrInvalidPromotion.
// Parse failures are reported like move rejections.
func (g *Game) ApplyMoveText(from, to, promotion string) (MoveReport, error) {
	ply := len(g.history) + 1

	fromSquare, err := chess.ParseSquare(from)
	if err != nil {
		return MoveReport{}, &errors.MoveError{Err: err, From: from, To: to, Ply: ply}
	}
	toSquare, err := chess.ParseSquare(to)
	if err != nil {
		return MoveReport{}, &errors.MoveError{Err: err, From: from, To: to, Ply: ply}
	}

	choice := chess.Empty
	if promotion != "" {
		if len(promotion) != 1 {
			return MoveReport{}, &errors.MoveError{Err: errors.ErrInvalidPromotion, From: from, To: to, Ply: ply}
		}
		choice = chess.PieceFromLetter(promotion[0])
		if choice == chess.Empty {
			return MoveReport{}, &errors.MoveError{Err: errors.ErrInvalidPromotion, From: from, To: to, Ply: ply}
		}
	}

	return g.ApplyMove(fromSquare, toSquare, choice)
}
