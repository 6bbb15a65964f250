// Package console is the text menu that drives a game: it reads one menu
// code per line, applies the bound action and renders both containers.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/roach88/nextpiece/internal/game"
)

// Recorder receives every processed non-quit command.
type Recorder interface {
	Record(ctx context.Context, m game.Move) error
}

// Session runs the interactive loop for one game.
type Session struct {
	game     *game.Game
	out      io.Writer
	printer  *message.Printer
	recorder Recorder
	logger   *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLanguage selects the output language.
func WithLanguage(tag language.Tag) Option {
	return func(s *Session) {
		s.printer = NewPrinter(tag)
	}
}

// WithRecorder attaches a move recorder (e.g. the journal).
func WithRecorder(r Recorder) Option {
	return func(s *Session) {
		s.recorder = r
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession creates a session writing to out.
func NewSession(g *game.Game, out io.Writer, opts ...Option) *Session {
	s := &Session{
		game:    g,
		out:     out,
		printer: NewPrinter(language.English),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run fills the queue, then processes commands from in until the user
// selects 0, in is exhausted or ctx is cancelled.
//
// Action errors are reported and never end the loop. Run returns an error
// only for read failures or context cancellation.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	s.println(s.printer.Sprintf(msgBanner))
	s.println("")
	s.println(s.printer.Sprintf(msgFilling, s.game.State().QueueCap))
	s.game.Fill()
	s.renderState()

	reader := bufio.NewReader(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printMenu()
		line, truncated, err := readLine(reader)
		if errors.Is(err, io.EOF) {
			s.logger.Debug("input closed")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read selection: %w", err)
		}
		s.println("")

		input := strings.TrimSpace(line)
		var sel game.Selection
		if truncated {
			s.logger.Debug("input line too long", "limit", maxInputLen)
			err = game.NewInvalidSelectionError(input)
		} else {
			sel, err = game.ParseSelection(line)
		}
		if err == nil && sel == game.SelectionQuit {
			s.println(s.printer.Sprintf(msgQuit))
			return nil
		}

		move := s.step(sel, err)
		move.Input = input
		s.record(ctx, move)

		s.println(s.printer.Sprintf(msgNewState))
		s.renderState()
	}
}

// step applies sel (or reports parseErr) and prints the result.
func (s *Session) step(sel game.Selection, parseErr error) game.Move {
	var (
		out game.Outcome
		err = parseErr
	)
	if err == nil {
		out, err = s.game.Apply(sel)
	}

	st := s.game.State()
	if err != nil {
		s.logger.Debug("action rejected", "selection", int(sel), "code", game.CodeOf(err))
		s.println(DescribeError(s.printer, err, st))
	} else {
		for _, line := range DescribeOutcome(s.printer, out) {
			s.println(line)
		}
	}
	s.println("")

	return game.Move{Selection: sel, Outcome: out, Err: err, State: st}
}

func (s *Session) record(ctx context.Context, m game.Move) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Record(ctx, m); err != nil {
		s.logger.Error("failed to record move", "error", err)
	}
}

func (s *Session) printMenu() {
	p := s.printer
	reserveCap := s.game.State().ReserveCap
	s.println(msgMenuRule)
	s.println(p.Sprintf(msgMenuPlay))
	s.println(p.Sprintf(msgMenuReserve))
	s.println(p.Sprintf(msgMenuUse))
	s.println(p.Sprintf(msgMenuSwapTop))
	s.println(p.Sprintf(msgMenuSwapBlock, reserveCap, reserveCap))
	s.println(p.Sprintf(msgMenuQuit))
	s.println(msgMenuRule)
	fmt.Fprint(s.out, p.Sprintf(msgPrompt))
}

func (s *Session) renderState() {
	st := s.game.State()
	s.println(RenderQueue(s.printer, st))
	s.println(RenderReserve(s.printer, st))
	s.println("")
}

// maxInputLen bounds how much of one input line is kept.
const maxInputLen = 256

// readLine reads one line without its terminator, keeping at most maxInputLen
// bytes. The rest of a longer line is consumed and truncated is set. A final
// line without a newline is returned normally; io.EOF means no input was left.
func readLine(r *bufio.Reader) (line string, truncated bool, err error) {
	var (
		buf   []byte
		total int
		read  bool
	)
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			if read && errors.Is(err, io.EOF) {
				err = nil
			}
			return string(buf), total > maxInputLen, err
		}
		read = true
		total += len(chunk)
		if room := maxInputLen - len(buf); room > 0 {
			buf = append(buf, chunk[:min(room, len(chunk))]...)
		}
		if !isPrefix {
			return string(buf), total > maxInputLen, nil
		}
	}
}

func (s *Session) println(line string) {
	fmt.Fprintln(s.out, line)
}
