package output

import (
	"strings"

	"github.com/lgbarn/chess-sim-go/internal/engine"
)

// JSONGame represents a transcript in JSON format.
type JSONGame struct {
	ID         string     `json:"id"`
	InitialFEN string     `json:"initialFEN,omitempty"`
	Moves      []JSONMove `json:"moves,omitempty"`
	Result     string     `json:"result"`
	PlyCount   int        `json:"plyCount"`
	FinalFEN   string     `json:"finalFEN"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Kind       string `json:"kind"`
	State      string `json:"state,omitempty"`
	FEN        string `json:"fen,omitempty"`
}

// TranscriptToJSON converts a transcript to JSON format. The initial FEN
// is omitted for games from the standard starting position.
func TranscriptToJSON(t *Transcript) *JSONGame {
	jg := &JSONGame{
		ID:       t.ID.String(),
		Result:   t.Result(),
		PlyCount: len(t.Moves),
		FinalFEN: t.FinalFEN(),
	}
	if t.StartFEN != engine.InitialFEN {
		jg.InitialFEN = t.StartFEN
	}

	jg.Moves = make([]JSONMove, 0, len(t.Moves))
	for _, r := range t.Moves {
		jg.Moves = append(jg.Moves, moveToJSON(r))
	}
	return jg
}

// moveToJSON converts a single move report.
func moveToJSON(r engine.MoveReport) JSONMove {
	jm := JSONMove{
		MoveNumber: int(r.MoveNumber),
		Color:      strings.ToLower(r.Colour().String()),
		SAN:        engine.Annotate(r),
		UCI:        r.Move.String(),
		From:       r.Move.From.String(),
		To:         r.Move.To.String(),
		Piece:      strings.ToLower(r.Piece.Piece().String()),
		Kind:       r.Kind.String(),
		FEN:        r.FEN,
	}
	if r.IsCapture() {
		jm.Captured = strings.ToLower(r.Captured.Piece.Piece().String())
	}
	if r.IsPromotion() {
		jm.Promotion = strings.ToLower(r.Move.Promotion.String())
	}
	if r.State != engine.Normal {
		jm.State = r.State.String()
	}
	return jm
}
