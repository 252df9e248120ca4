package testutil

// Well-known positions shared by the engine, output and command tests.
const (
	InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	// Kiwipete exercises castling, en passant, promotion and pins at once.
	KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	// Black to move and stalemated.
	StalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"

	// Both sides may castle on either wing.
	CastlingFEN = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"

	// White pawn on a7 ready to promote.
	PromotionFEN = "8/P6k/8/8/8/8/8/4K3 w - - 0 1"
)

// FoolsMate is the shortest checkmate, in long algebraic form.
var FoolsMate = []string{"f2f3", "e7e5", "g2g4", "d8h4"}

// PerftCase holds published leaf counts for a position, indexed by depth-1.
type PerftCase struct {
	Name  string
	FEN   string
	Nodes []uint64
}

// PerftCases are the standard move generator test positions.
var PerftCases = []PerftCase{
	{Name: "initial", FEN: InitialFEN, Nodes: []uint64{20, 400, 8902}},
	{Name: "kiwipete", FEN: KiwipeteFEN, Nodes: []uint64{48, 2039}},
	{Name: "rook endgame", FEN: "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", Nodes: []uint64{14, 191, 2812}},
	{Name: "promotions", FEN: "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", Nodes: []uint64{6, 264}},
	{Name: "discovered checks", FEN: "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", Nodes: []uint64{44, 1486}},
}
