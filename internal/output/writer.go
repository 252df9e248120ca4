package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-sim-go/internal/chess"
	"github.com/lgbarn/chess-sim-go/internal/config"
	"github.com/lgbarn/chess-sim-go/internal/engine"
)

// TranscriptWriter is the interface for writing game transcripts.
// Different implementations handle different output formats (text, JSON).
type TranscriptWriter interface {
	// WriteTranscript writes a single game to the output.
	WriteTranscript(t *Transcript) error

	// Close flushes any buffered output. It does not close the
	// underlying writer.
	Close() error
}

// NewTranscriptWriter returns the writer for a transcript format, or nil
// for config.NoTranscript.
func NewTranscriptWriter(w io.Writer, format config.TranscriptFormat) TranscriptWriter {
	switch format {
	case config.TextTranscript:
		return NewTextWriter(w)
	case config.JSONTranscript:
		return NewJSONWriter(w)
	default:
		return nil
	}
}

// TextWriter writes transcripts as a tag header followed by SAN movetext.
type TextWriter struct {
	w             *bufio.Writer
	maxLineLength int
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{
		w:             bufio.NewWriter(w),
		maxLineLength: 80,
	}
}

// WriteTranscript writes a game in text format.
func (tw *TextWriter) WriteTranscript(t *Transcript) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "[Game %q]\n", t.ID.String())
	if t.StartFEN != engine.InitialFEN {
		fmt.Fprintf(&sb, "[FEN %q]\n", t.StartFEN)
	}
	fmt.Fprintf(&sb, "[Result %q]\n\n", t.Result())

	out := NewOutputWriter(&sb, tw.maxLineLength)
	for i, r := range t.Moves {
		switch {
		case r.Colour() == chess.White:
			out.Write(fmt.Sprintf("%d.", r.MoveNumber))
		case i == 0:
			out.Write(fmt.Sprintf("%d...", r.MoveNumber))
		}
		out.Write(engine.Annotate(r))
	}
	out.Write(t.Result())
	out.NewLine()
	sb.WriteByte('\n')

	_, err := tw.w.WriteString(sb.String())
	return err
}

// Close flushes the text writer.
func (tw *TextWriter) Close() error {
	return tw.w.Flush()
}

// JSONWriter writes each transcript as one indented JSON object.
type JSONWriter struct {
	w *bufio.Writer
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: bufio.NewWriter(w)}
}

// WriteTranscript writes a game in JSON format.
func (jw *JSONWriter) WriteTranscript(t *Transcript) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(TranscriptToJSON(t))
}

// Close flushes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.w.Flush()
}
