// session.go - The interactive move loop
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-sim-go/internal/chess"
	"github.com/lgbarn/chess-sim-go/internal/config"
	"github.com/lgbarn/chess-sim-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-sim-go/internal/errors"
	"github.com/lgbarn/chess-sim-go/internal/output"
)

const prompt = "Enter the square of the piece to move and its destination, separated by a space: "

// session plays one game between two players sharing a terminal.
type session struct {
	cfg        *config.Config
	game       *engine.Game
	transcript *output.Transcript
}

func newSession(cfg *config.Config, game *engine.Game) *session {
	return &session{
		cfg:        cfg,
		game:       game,
		transcript: output.NewTranscript(game.Snapshot()),
	}
}

// Run reads moves from r until the game ends, the players quit, the ply
// limit is reached or input runs out.
func (s *session) Run(r io.Reader) error {
	out := s.cfg.OutputFile
	scanner := bufio.NewScanner(r)

	if err := s.showPosition(); err != nil {
		return err
	}

	for !s.game.State().IsTerminal() {
		if s.limitReached() {
			fmt.Fprintf(out, "Move limit of %d plies reached\n", s.cfg.Play.MaxPlies)
			break
		}
		if s.cfg.Play.ShowHints {
			s.showHints()
		}

		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}

		done, err := s.handleLine(scanner.Text())
		if err != nil {
			return err
		}
		if done {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return chesserrors.Wrap(err, "reading moves")
	}

	snap := s.game.Snapshot()
	fmt.Fprintf(out, "Result: %s\n", output.Result(snap.State, snap.ToMove.Opposite()))
	return nil
}

// handleLine acts on one line of input. It reports whether the players
// asked to stop.
func (s *session) handleLine(line string) (bool, error) {
	out := s.cfg.OutputFile
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case "quit", "exit":
		return true, nil
	case "moves":
		s.showHints()
		return false, nil
	case "fen":
		fmt.Fprintln(out, s.game.Snapshot().FEN)
		return false, nil
	}

	from, to, promotion, ok := splitMove(fields)
	if !ok {
		fmt.Fprintln(out, "Invalid square")
		return false, nil
	}

	report, err := s.game.ApplyMoveText(from, to, promotion)
	if err != nil {
		if s.cfg.Verbosity > 1 {
			fmt.Fprintf(s.cfg.LogFile, "rejected %s\n", err)
		}
		fmt.Fprintln(out, rejectionMessage(err, s.game.Snapshot().ToMove))
		return false, nil
	}

	s.transcript.Record(report)
	if s.cfg.Verbosity > 1 {
		fmt.Fprintf(s.cfg.LogFile, "ply %d: %s %s (%s)\n", report.Ply, report.Move, engine.Annotate(report), report.Kind)
	}

	fmt.Fprintln(out, output.Announce(report))
	return false, s.showPosition()
}

// showPosition draws the board followed by the status line.
func (s *session) showPosition() error {
	snap := s.game.Snapshot()
	if err := output.RenderBoard(s.cfg.OutputFile, snap, &s.cfg.Output); err != nil {
		return chesserrors.Wrap(err, "drawing board")
	}
	fmt.Fprintln(s.cfg.OutputFile, output.StatusLine(snap))
	if s.cfg.Verbosity > 0 {
		if snap.InsufficientMaterial {
			fmt.Fprintln(s.cfg.LogFile, "Neither side has mating material")
		}
		if snap.Repetitions >= 3 {
			fmt.Fprintf(s.cfg.LogFile, "Position has occurred %d times\n", snap.Repetitions)
		}
	}
	return nil
}

// showHints lists the legal moves wrapped to the terminal width.
func (s *session) showHints() {
	ow := output.NewOutputWriter(s.cfg.OutputFile, 79)
	ow.Write("Legal moves:")
	for _, m := range s.game.LegalMoves() {
		ow.Write(m.String())
	}
	ow.NewLine()
}

func (s *session) limitReached() bool {
	return s.cfg.Play.MaxPlies > 0 && uint(len(s.transcript.Moves)) >= s.cfg.Play.MaxPlies
}

// WriteTranscript writes the game record in the configured format.
func (s *session) WriteTranscript() error {
	tw := newTranscriptWriter(s.cfg)
	if tw == nil {
		return nil
	}
	if err := tw.WriteTranscript(s.transcript); err != nil {
		return err
	}
	return tw.Close()
}

// splitMove accepts "e2 e4", "e7 e8 q", "e2e4" and "e7e8q".
func splitMove(fields []string) (from, to, promotion string, ok bool) {
	switch len(fields) {
	case 1:
		f := fields[0]
		if len(f) != 4 && len(f) != 5 {
			return "", "", "", false
		}
		return f[0:2], f[2:4], f[4:], true
	case 2:
		return fields[0], fields[1], "", true
	case 3:
		return fields[0], fields[1], fields[2], true
	default:
		return "", "", "", false
	}
}

// rejectionMessage turns a move error into the line shown to the players.
func rejectionMessage(err error, toMove chess.Colour) string {
	switch {
	case errors.Is(err, chesserrors.ErrOutOfBounds):
		return "Invalid square"
	case errors.Is(err, chesserrors.ErrEmptyOrigin), errors.Is(err, chesserrors.ErrWrongSideToMove):
		return fmt.Sprintf("%s to move", toMove)
	case errors.Is(err, chesserrors.ErrLeavesKingInCheck):
		return "Invalid move, king would be in check"
	case errors.Is(err, chesserrors.ErrInvalidPromotion):
		return "Invalid promotion piece"
	case errors.Is(err, chesserrors.ErrGameAlreadyOver):
		return "The game is over"
	default:
		return "Invalid move"
	}
}
