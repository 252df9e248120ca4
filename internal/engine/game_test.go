package engine

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/lgbarn/chess-sim-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-sim-go/internal/errors"
	"github.com/lgbarn/chess-sim-go/internal/testutil"
)

func TestGame_ApplyMove_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		setup     []string
		from, to  string
		promotion string
		want      error
	}{
		{"off the board", InitialFEN, nil, "i9", "e4", "", chesserrors.ErrOutOfBounds},
		{"destination off the board", InitialFEN, nil, "e2", "e9", "", chesserrors.ErrOutOfBounds},
		{"empty origin", InitialFEN, nil, "e4", "e5", "", chesserrors.ErrEmptyOrigin},
		{"wrong side", InitialFEN, nil, "e7", "e5", "", chesserrors.ErrWrongSideToMove},
		{"wrong side after a move", InitialFEN, []string{"e2e4"}, "d2", "d4", "", chesserrors.ErrWrongSideToMove},
		{"illegal for piece", InitialFEN, nil, "b1", "b3", "", chesserrors.ErrIllegalForPiece},
		{"capture own piece", InitialFEN, nil, "a1", "a2", "", chesserrors.ErrIllegalForPiece},
		{"pinned piece", "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1", nil, "e2", "d3", "", chesserrors.ErrLeavesKingInCheck},
		{"king into check", "4k3/8/8/8/8/8/8/r3K3 w - - 0 1", nil, "e1", "d1", "", chesserrors.ErrLeavesKingInCheck},
		{"check ignored", "4k3/8/8/8/8/8/7P/r3K3 w - - 0 1", nil, "h2", "h3", "", chesserrors.ErrLeavesKingInCheck},
		{"castle through attack", "4k3/8/8/8/8/8/5r2/4K2R w K - 0 1", nil, "e1", "g1", "", chesserrors.ErrLeavesKingInCheck},
		{"castle blocked", InitialFEN, nil, "e1", "g1", "", chesserrors.ErrIllegalForPiece},
		{"promote to king", testutil.PromotionFEN, nil, "a7", "a8", "k", chesserrors.ErrInvalidPromotion},
		{"promote to pawn", testutil.PromotionFEN, nil, "a7", "a8", "p", chesserrors.ErrInvalidPromotion},
		{"unknown promotion letter", testutil.PromotionFEN, nil, "a7", "a8", "x", chesserrors.ErrInvalidPromotion},
		{"game over", InitialFEN, testutil.FoolsMate, "e1", "f2", "", chesserrors.ErrGameAlreadyOver},
		{"stalemate", testutil.StalemateFEN, nil, "h8", "g8", "", chesserrors.ErrGameAlreadyOver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := mustGame(t, tt.fen)
			play(t, game, tt.setup...)
			before := game.Snapshot()

			_, err := game.ApplyMoveText(tt.from, tt.to, tt.promotion)
			testutil.AssertErrorIs(t, err, tt.want, "ApplyMoveText(%s, %s, %q)", tt.from, tt.to, tt.promotion)

			var moveErr *chesserrors.MoveError
			if !errors.As(err, &moveErr) {
				t.Fatalf("ApplyMoveText() error %T, want *MoveError", err)
			}
			testutil.AssertEqual(t, moveErr.Ply, len(tt.setup)+1, "MoveError.Ply")

			testutil.AssertEqual(t, game.Snapshot(), before, "game changed by rejected move")
			testutil.AssertEqual(t, len(game.History()), len(tt.setup), "history length")
		})
	}
}

func TestGame_FoolsMate(t *testing.T) {
	game := NewGame()
	reports := play(t, game, testutil.FoolsMate...)

	last := reports[len(reports)-1]
	testutil.AssertEqual(t, last.State, Checkmate)
	testutil.AssertEqual(t, Annotate(last), "Qh4#")
	testutil.AssertEqual(t, game.State(), Checkmate)
	testutil.AssertTrue(t, game.Board().InCheck(), "White should be in check")
	testutil.AssertEqual(t, len(game.LegalMoves()), 0, "legal moves after mate")
}

func TestGame_Stalemate(t *testing.T) {
	game := mustGame(t, "7k/8/6K1/8/8/8/8/5Q2 w - - 0 1")
	reports := play(t, game, "f1f7")

	testutil.AssertEqual(t, reports[0].State, Stalemate)
	testutil.AssertEqual(t, Annotate(reports[0]), "Qf7")
	testutil.AssertFalse(t, game.Board().InCheck(), "stalemated side in check")

	_, err := game.ApplyMoveText("h8", "g8", "")
	testutil.AssertErrorIs(t, err, chesserrors.ErrGameAlreadyOver)
}

func TestGame_EnPassant(t *testing.T) {
	game := NewGame()
	reports := play(t, game, "e2e4", "a7a6", "e4e5", "d7d5", "e5d6")

	report := reports[4]
	testutil.AssertEqual(t, report.Kind, chess.EnPassantCapture)
	testutil.AssertEqual(t, report.Captured, chess.PlacedPiece{Piece: chess.B(chess.Pawn), Square: sq("d5")})
	testutil.AssertEqual(t, Annotate(report), "exd6")

	board := game.Board()
	testutil.AssertTrue(t, board.IsEmpty(sq("d5")), "captured pawn still on d5")
	testutil.AssertTrue(t, board.IsEmpty(sq("e5")), "capturing pawn still on e5")
	testutil.AssertEqual(t, board.At(sq("d6")), chess.W(chess.Pawn))
}

func TestGame_EnPassantExpires(t *testing.T) {
	game := NewGame()
	play(t, game, "e2e4", "a7a6", "e4e5", "d7d5", "a2a3", "a6a5")

	_, err := game.ApplyMoveText("e5", "d6", "")
	testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalForPiece)
}

func TestGame_EnPassantTarget(t *testing.T) {
	game := NewGame()
	play(t, game, "e2e4")

	target, ok := game.Board().EnPassantTarget()
	testutil.AssertTrue(t, ok, "en passant armed after double step")
	testutil.AssertEqual(t, target, sq("e3"))

	play(t, game, "g8f6")
	_, ok = game.Board().EnPassantTarget()
	testutil.AssertFalse(t, ok, "en passant still armed a move later")
}

func TestGame_Castling(t *testing.T) {
	game := mustGame(t, testutil.CastlingFEN)
	reports := play(t, game, "e1g1", "e8c8")

	testutil.AssertEqual(t, reports[0].Kind, chess.CastleKingside)
	testutil.AssertEqual(t, Annotate(reports[0]), "O-O")
	testutil.AssertEqual(t, reports[1].Kind, chess.CastleQueenside)
	testutil.AssertEqual(t, Annotate(reports[1]), "O-O-O")

	board := game.Board()
	testutil.AssertEqual(t, board.At(sq("g1")), chess.W(chess.King))
	testutil.AssertEqual(t, board.At(sq("f1")), chess.W(chess.Rook))
	testutil.AssertTrue(t, board.IsEmpty(sq("h1")), "h1 rook not moved")
	testutil.AssertEqual(t, board.At(sq("c8")), chess.B(chess.King))
	testutil.AssertEqual(t, board.At(sq("d8")), chess.B(chess.Rook))
	testutil.AssertTrue(t, board.IsEmpty(sq("a8")), "a8 rook not moved")
	testutil.AssertEqual(t, board.CastlingRights(), chess.NoCastling)
}

func TestGame_CastlingRightsLost(t *testing.T) {
	tests := []struct {
		name     string
		setup    []string
		from, to string
		wantErr  error
	}{
		{"king moved and returned", []string{"e1e2", "a8a7", "e2e1", "a7a8"}, "e1", "g1", chesserrors.ErrIllegalForPiece},
		{"king moved, queenside", []string{"e1e2", "a8a7", "e2e1", "a7a8"}, "e1", "c1", chesserrors.ErrIllegalForPiece},
		{"kingside rook moved", []string{"h1h2", "h8h7", "h2h1", "h7h8"}, "e1", "g1", chesserrors.ErrIllegalForPiece},
		{"other rook untouched", []string{"h1h2", "h8h7", "h2h1", "h7h8"}, "e1", "c1", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := mustGame(t, testutil.CastlingFEN)
			play(t, game, tt.setup...)

			_, err := game.ApplyMoveText(tt.from, tt.to, "")
			if tt.wantErr == nil {
				testutil.AssertNoError(t, err)
				return
			}
			testutil.AssertErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGame_RookCaptureRevokesCastling(t *testing.T) {
	game := mustGame(t, testutil.CastlingFEN)
	reports := play(t, game, "a1a8")

	testutil.AssertEqual(t, reports[0].Captured, chess.PlacedPiece{Piece: chess.B(chess.Rook), Square: sq("a8")})
	testutil.AssertEqual(t, Annotate(reports[0]), "Rxa8+")
	testutil.AssertEqual(t, game.Board().CastlingRights(), chess.WhiteKingside|chess.BlackKingside)
}

func TestGame_Promotion(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		move      string
		promotion string
		wantPiece chess.ColouredPiece
		wantSAN   string
	}{
		{"default queen", testutil.PromotionFEN, "a7a8", "", chess.W(chess.Queen), "a8=Q"},
		{"explicit queen", testutil.PromotionFEN, "a7a8", "Q", chess.W(chess.Queen), "a8=Q"},
		{"knight", testutil.PromotionFEN, "a7a8", "n", chess.W(chess.Knight), "a8=N"},
		{"bishop", testutil.PromotionFEN, "a7a8", "b", chess.W(chess.Bishop), "a8=B"},
		{"capture to rook with check", "1n5k/P7/8/8/8/8/8/4K3 w - - 0 1", "a7b8", "r", chess.W(chess.Rook), "axb8=R+"},
		{"black promotes", "4k3/8/8/8/8/8/7p/K7 b - - 0 1", "h2h1", "", chess.B(chess.Queen), "h1=Q+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := mustGame(t, tt.fen)
			report, err := game.ApplyMoveText(tt.move[:2], tt.move[2:], tt.promotion)
			if err != nil {
				t.Fatalf("ApplyMoveText(%s) error: %v", tt.move, err)
			}

			testutil.AssertEqual(t, game.Board().At(sq(tt.move[2:])), tt.wantPiece)
			testutil.AssertEqual(t, report.Move.Promotion, tt.wantPiece.Piece())
			testutil.AssertEqual(t, report.Piece, chess.MakeColouredPiece(tt.wantPiece.Colour(), chess.Pawn))
			testutil.AssertEqual(t, Annotate(report), tt.wantSAN)
		})
	}
}

func TestGame_PromotionIgnoredOnOrdinaryMove(t *testing.T) {
	game := NewGame()
	report, err := game.ApplyMove(sq("e2"), sq("e4"), chess.Queen)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, report.Move.Promotion, chess.Empty)
	testutil.AssertEqual(t, game.Board().At(sq("e4")), chess.W(chess.Pawn))
}

// TestGame_ApplyMoveText_MatchesApplyMove checks the text entry point
// treats promotion letters exactly as ApplyMove treats pieces.
func TestGame_ApplyMoveText_MatchesApplyMove(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		from   string
		to     string
		letter string
		piece  chess.Piece
	}{
		{"king letter on pawn push", InitialFEN, "e2", "e4", "k", chess.King},
		{"pawn letter on knight move", InitialFEN, "g1", "f3", "P", chess.Pawn},
		{"queen letter on pawn push", InitialFEN, "d2", "d3", "q", chess.Queen},
		{"king letter on promotion", testutil.PromotionFEN, "a7", "a8", "k", chess.King},
		{"knight letter on promotion", testutil.PromotionFEN, "a7", "a8", "N", chess.Knight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			byPiece, errPiece := mustGame(t, tt.fen).ApplyMove(sq(tt.from), sq(tt.to), tt.piece)
			byText, errText := mustGame(t, tt.fen).ApplyMoveText(tt.from, tt.to, tt.letter)

			if (errPiece == nil) != (errText == nil) {
				t.Fatalf("ApplyMove error = %v, ApplyMoveText error = %v", errPiece, errText)
			}
			if errPiece != nil {
				testutil.AssertErrorIs(t, errText, chesserrors.ErrInvalidPromotion)
				return
			}
			testutil.AssertEqual(t, byText.Move, byPiece.Move)
			testutil.AssertEqual(t, byText.FEN, byPiece.FEN)
		})
	}
}

func TestGame_ReportNumbering(t *testing.T) {
	game := NewGame()
	reports := play(t, game, "e2e4", "e7e5", "g1f3")

	var got []string
	for _, r := range reports {
		got = append(got, MoveText(r))
	}
	testutil.AssertEqual(t, got, []string{"1. e4", "1... e5", "2. Nf3"})

	for i, r := range reports {
		testutil.AssertEqual(t, r.Ply, i+1, "ply of move %d", i)
	}
	testutil.AssertEqual(t, reports[1].FEN, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2")
	testutil.AssertEqual(t, reports[2].FEN, "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2")
}

func TestGame_HistoryIsACopy(t *testing.T) {
	game := NewGame()
	play(t, game, "e2e4", "e7e5")

	history := game.History()
	history[0] = MoveReport{}

	testutil.AssertEqual(t, game.History()[0].Move.String(), "e2e4")
}

func TestGame_BoardIsACopy(t *testing.T) {
	game := NewGame()
	board := game.Board()
	board.Clear(sq("e1"))

	testutil.AssertEqual(t, game.Board().At(sq("e1")), chess.W(chess.King))
}

func TestGame_Snapshot(t *testing.T) {
	game := NewGame()
	play(t, game, "e2e4", "d7d5", "e4d5")

	snap := game.Snapshot()
	testutil.AssertEqual(t, snap.ToMove, chess.Black)
	testutil.AssertEqual(t, snap.MoveNumber, uint(2))
	testutil.AssertEqual(t, snap.State, Normal)
	testutil.AssertEqual(t, snap.MaterialBalance, 1)
	testutil.AssertEqual(t, snap.At(sq("d5")), chess.W(chess.Pawn))
	testutil.AssertEqual(t, len(snap.Pieces()), 31)
	testutil.AssertFalse(t, snap.EnPassant, "en passant after a capture")
	testutil.AssertFalse(t, snap.InsufficientMaterial, "insufficient material at move 2")
	testutil.AssertEqual(t, snap.FEN, "rnbqkbnr/ppp1pppp/8/3P4/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 2")
}

// TestGame_RandomPlayout plays seeded random games and checks after every
// move that each side has exactly one king and the cached check flag
// agrees with the attack oracle.
func TestGame_RandomPlayout(t *testing.T) {
	rng := rand.New(rand.NewSource(20240601))

	for g := 0; g < 20; g++ {
		game := NewGame()
		for ply := 0; ply < 100 && !game.State().IsTerminal(); ply++ {
			moves := game.LegalMoves()
			if len(moves) == 0 {
				t.Fatalf("game %d ply %d: no legal moves in state %v", g, ply, game.State())
			}
			move := moves[rng.Intn(len(moves))]

			report, err := game.ApplyMove(move.From, move.To, move.Promotion)
			if err != nil {
				t.Fatalf("game %d: legal move %s rejected: %v", g, move, err)
			}

			board := game.Board()
			for _, colour := range []chess.Colour{chess.White, chess.Black} {
				kings := 0
				for _, p := range board.Pieces(colour) {
					if p.Piece != board.At(p.Square) {
						t.Fatalf("game %d: roster %v disagrees with board", g, p)
					}
					if p.Piece.Piece() == chess.King {
						kings++
					}
				}
				if kings != 1 {
					t.Fatalf("game %d after %s: %d %v kings", g, move, kings, colour)
				}
			}

			if board.InCheck() != IsInCheck(board, board.SideToMove()) {
				t.Fatalf("game %d after %s: InCheck() = %v, oracle disagrees", g, move, board.InCheck())
			}
			if IsInCheck(board, report.Colour()) {
				t.Fatalf("game %d: %s left own king in check", g, move)
			}
			if report.FEN != BoardToFEN(board) {
				t.Fatalf("game %d: report FEN %q, board %q", g, report.FEN, BoardToFEN(board))
			}
		}
	}
}

func TestGame_Repetitions(t *testing.T) {
	game := NewGame()
	if got := game.Repetitions(); got != 1 {
		t.Fatalf("Repetitions() at start = %d; want 1", got)
	}

	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	play(t, game, shuffle...)
	if got := game.Repetitions(); got != 2 {
		t.Errorf("Repetitions() after one shuffle = %d; want 2", got)
	}

	play(t, game, shuffle...)
	snap := game.Snapshot()
	if snap.Repetitions != 3 {
		t.Errorf("Snapshot().Repetitions = %d; want 3", snap.Repetitions)
	}
	if game.State().IsTerminal() {
		t.Error("repetition ended the game")
	}

	// A rejected move records nothing.
	if _, err := game.ApplyMoveText("e2", "e5", ""); err == nil {
		t.Fatal("ApplyMoveText(e2e5) succeeded")
	}
	if got := game.Repetitions(); got != 3 {
		t.Errorf("Repetitions() after rejection = %d; want 3", got)
	}

	play(t, game, "e2e4")
	if got := game.Repetitions(); got != 1 {
		t.Errorf("Repetitions() after e4 = %d; want 1", got)
	}
}
