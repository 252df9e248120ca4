package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-sim-go/internal/chess"
	"github.com/lgbarn/chess-sim-go/internal/config"
	"github.com/lgbarn/chess-sim-go/internal/engine"
)

// unicodeGlyphs maps each piece kind to its black and white chess symbol,
// indexed by chess.Colour.
var unicodeGlyphs = [chess.NumPieceValues][2]string{
	chess.Pawn:   {"♟", "♙"},
	chess.Knight: {"♞", "♘"},
	chess.Bishop: {"♝", "♗"},
	chess.Rook:   {"♜", "♖"},
	chess.Queen:  {"♛", "♕"},
	chess.King:   {"♚", "♔"},
}

// Glyph returns the symbol drawn for a piece, a space for an empty square.
func Glyph(piece chess.ColouredPiece, glyphs config.GlyphSet) string {
	if piece.IsEmpty() {
		return " "
	}
	if glyphs == config.ASCIIGlyphs {
		return string(piece.Letter())
	}
	return unicodeGlyphs[piece.Piece()][piece.Colour()]
}

const rankSeparator = "  |--- --- --- --- --- --- --- ---|"

// RenderBoard draws the position as a text grid, rank 8 at the top unless
// the board is flipped.
func RenderBoard(w io.Writer, snap engine.BoardSnapshot, cfg *config.OutputConfig) error {
	var sb strings.Builder

	files := fileOrder(cfg.Flip)
	fileHeader := func() {
		if !cfg.ShowCoordinates {
			return
		}
		sb.WriteString("   ")
		for _, file := range files {
			fmt.Fprintf(&sb, " %c  ", 'a'+file)
		}
		sb.WriteString("\n")
	}

	fileHeader()
	sb.WriteString("   -------------------------------\n")

	for i, rank := range rankOrder(cfg.Flip) {
		if i > 0 {
			sb.WriteString(rankSeparator)
			sb.WriteString("\n")
		}

		label := " "
		if cfg.ShowCoordinates {
			label = string(rune('1' + rank))
		}
		sb.WriteString(label)
		sb.WriteString(" |")
		for _, file := range files {
			sq, _ := chess.NewSquare(file, rank)
			fmt.Fprintf(&sb, " %s |", Glyph(snap.At(sq), cfg.Glyphs))
		}
		if cfg.ShowCoordinates {
			sb.WriteString(" ")
			sb.WriteString(label)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("   -------------------------------\n")
	fileHeader()

	if cfg.ShowFEN {
		sb.WriteString(snap.FEN)
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// rankOrder lists ranks from the top of the drawing down.
func rankOrder(flip bool) []int {
	ranks := make([]int, chess.BoardSize)
	for i := range ranks {
		if flip {
			ranks[i] = i
		} else {
			ranks[i] = chess.BoardSize - 1 - i
		}
	}
	return ranks
}

// fileOrder lists files from left to right.
func fileOrder(flip bool) []int {
	files := make([]int, chess.BoardSize)
	for i := range files {
		if flip {
			files[i] = chess.BoardSize - 1 - i
		} else {
			files[i] = i
		}
	}
	return files
}
