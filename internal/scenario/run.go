package scenario

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/roach88/nextpiece/internal/config"
	"github.com/roach88/nextpiece/internal/game"
	"github.com/roach88/nextpiece/internal/piece"
)

// TraceEvent records one applied step.
//
// Swapped lists exchanged pairs as "queuePiece/reservePiece", naming the
// pieces as they were before the swap.
type TraceEvent struct {
	Step      int      `json:"step"`
	Selection int      `json:"selection"`
	Action    string   `json:"action,omitempty"`
	Status    string   `json:"status"`
	ErrorCode string   `json:"error_code,omitempty"`
	Piece     string   `json:"piece,omitempty"`
	Generated string   `json:"generated,omitempty"`
	Swapped   []string `json:"swapped,omitempty"`
	Queue     []string `json:"queue"`
	Reserve   []string `json:"reserve"`
}

// Result holds the outcome of a scenario run.
type Result struct {
	Pass   bool
	Errors []string
	Trace  []TraceEvent
	Final  game.State
}

func (r *Result) fail(format string, args ...any) {
	r.Pass = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Runner executes scenarios.
type Runner struct {
	logger *slog.Logger
}

// NewRunner creates a runner. A nil logger discards diagnostics.
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{logger: logger}
}

// Run executes a scenario with a silent logger.
func Run(s *Scenario) (*Result, error) {
	return NewRunner(nil).Run(s)
}

// Run executes a scenario against a fresh game.
//
// Expectation and assertion mismatches are reported in Result.Errors.
// The returned error is reserved for scenarios that cannot be run at all
// (invalid configuration or sequence).
func (r *Runner) Run(s *Scenario) (*Result, error) {
	g, err := r.newGame(s)
	if err != nil {
		return nil, err
	}
	g.Fill()

	result := &Result{Pass: true}
	for i, step := range s.Steps {
		sel, err := selectionOf(step)
		if err != nil {
			return nil, fmt.Errorf("steps[%d]: %w", i, err)
		}

		out, actErr := g.Apply(sel)
		st := g.State()
		event := traceEvent(i, sel, out, actErr, st)
		result.Trace = append(result.Trace, event)

		r.logger.Debug("step applied", "step", i, "selection", int(sel), "status", event.Status)
		checkExpect(result, i, step.Expect, event)
	}

	result.Final = g.State()
	for i, a := range s.Assertions {
		checkAssertion(result, i, a, result.Final)
	}

	return result, nil
}

func (r *Runner) newGame(s *Scenario) (*game.Game, error) {
	cfg := config.Default()
	if o := s.Config; o != nil {
		if o.QueueCapacity != 0 {
			cfg.QueueCapacity = o.QueueCapacity
		}
		if o.ReserveCapacity != 0 {
			cfg.ReserveCapacity = o.ReserveCapacity
		}
		if o.Kinds != "" {
			cfg.Kinds = o.Kinds
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario config: %w", err)
	}

	alphabet, err := cfg.Alphabet()
	if err != nil {
		return nil, err
	}

	sequence := alphabet
	if len(s.Sequence) > 0 {
		sequence = make([]piece.Kind, len(s.Sequence))
		for i, k := range s.Sequence {
			kind := piece.Kind(k)
			if !slices.Contains(alphabet, kind) {
				return nil, fmt.Errorf("sequence[%d]: kind %q not in alphabet %q", i, k, cfg.Kinds)
			}
			sequence[i] = kind
		}
	}

	src := piece.NewSource(alphabet, piece.NewSequencePicker(alphabet, sequence...))
	return game.NewWithCapacity(cfg.QueueCapacity, cfg.ReserveCapacity, src, game.WithLogger(r.logger)), nil
}

func selectionOf(step Step) (game.Selection, error) {
	if step.Code != nil {
		return game.Selection(*step.Code), nil
	}
	sel, ok := game.SelectionFor(game.Action(step.Action))
	if !ok {
		return 0, fmt.Errorf("unknown action %q", step.Action)
	}
	return sel, nil
}

func traceEvent(i int, sel game.Selection, out game.Outcome, err error, st game.State) TraceEvent {
	ev := TraceEvent{
		Step:      i,
		Selection: int(sel),
		Action:    string(out.Action),
		Status:    "ok",
		Queue:     piece.Labels(st.Queue),
		Reserve:   piece.Labels(st.Reserve),
	}
	if err != nil {
		ev.Status = "error"
		ev.ErrorCode = string(game.CodeOf(err))
		return ev
	}
	if out.Piece != nil {
		ev.Piece = out.Piece.Label()
	}
	if out.Generated != nil {
		ev.Generated = out.Generated.Label()
	}
	for _, ex := range out.Exchanges {
		ev.Swapped = append(ev.Swapped, ex.ToReserve.Label()+"/"+ex.ToQueue.Label())
	}
	return ev
}

func checkExpect(r *Result, i int, want *Expect, got TraceEvent) {
	if want == nil || want.Error == "" {
		if got.Status != "ok" {
			r.fail("steps[%d]: expected success, got %s", i, got.ErrorCode)
			return
		}
	} else if got.ErrorCode != want.Error {
		r.fail("steps[%d]: expected error %s, got %s", i, want.Error, statusOf(got))
		return
	}

	if want == nil {
		return
	}
	if want.Piece != "" && want.Piece != got.Piece {
		r.fail("steps[%d]: expected piece %s, got %q", i, want.Piece, got.Piece)
	}
	if want.Generated != "" && want.Generated != got.Generated {
		r.fail("steps[%d]: expected generated %s, got %q", i, want.Generated, got.Generated)
	}
}

func statusOf(ev TraceEvent) string {
	if ev.Status == "ok" {
		return "success"
	}
	return ev.ErrorCode
}

func checkAssertion(r *Result, i int, a Assertion, st game.State) {
	switch a.Type {
	case AssertQueue:
		if got := piece.Labels(st.Queue); !slices.Equal(got, a.Pieces) {
			r.fail("assertions[%d]: queue = %v, expected %v", i, got, a.Pieces)
		}
	case AssertReserve:
		if got := piece.Labels(st.Reserve); !slices.Equal(got, a.Pieces) {
			r.fail("assertions[%d]: reserve = %v, expected %v", i, got, a.Pieces)
		}
	case AssertQueueLen:
		if len(st.Queue) != a.Count {
			r.fail("assertions[%d]: queue length = %d, expected %d", i, len(st.Queue), a.Count)
		}
	case AssertReserveLen:
		if len(st.Reserve) != a.Count {
			r.fail("assertions[%d]: reserve length = %d, expected %d", i, len(st.Reserve), a.Count)
		}
	case AssertNextID:
		if st.NextID != a.Count {
			r.fail("assertions[%d]: next id = %d, expected %d", i, st.NextID, a.Count)
		}
	}
}
