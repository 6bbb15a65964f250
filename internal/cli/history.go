package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/nextpiece/internal/journal"
	"github.com/roach88/nextpiece/internal/piece"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Journal string
	Session string // optional - list this session's moves
}

// SessionMoves is the history output for a single session.
type SessionMoves struct {
	Session journal.SessionRecord `json:"session"`
	Moves   []journal.MoveRecord  `json:"moves"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show journaled sessions and moves",
		Long: `Show what a journal recorded.

Without --session, lists every session with its settings and move count.
With --session, lists that session's moves in order, including rejected
ones with their error code.

Examples:
  nextpiece history --journal ./moves.db
  nextpiece history --journal ./moves.db --session 0190b7c2-...
  nextpiece history --journal ./moves.db --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Journal, "journal", "", "path to the SQLite journal (required)")
	_ = cmd.MarkFlagRequired("journal")
	cmd.Flags().StringVar(&opts.Session, "session", "", "session id to list moves for")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	// Opening creates missing files; history never should.
	if _, err := os.Stat(opts.Journal); err != nil {
		return out.Fail(ExitCommandError, ErrCodeJournal, "journal not found", err)
	}

	j, err := journal.Open(opts.Journal)
	if err != nil {
		return out.Fail(ExitCommandError, ErrCodeJournal, "failed to open journal", err)
	}
	defer j.Close()

	sessions, err := j.Sessions(ctx)
	if err != nil {
		return out.Fail(ExitCommandError, ErrCodeJournal, "failed to list sessions", err)
	}

	if opts.Session == "" {
		return out.Success(sessions, func(w io.Writer) {
			writeSessionsText(w, sessions)
		})
	}

	var found *journal.SessionRecord
	for i := range sessions {
		if sessions[i].ID == opts.Session {
			found = &sessions[i]
			break
		}
	}
	if found == nil {
		return out.Fail(ExitCommandError, ErrCodeSessionNotFound, fmt.Sprintf("session not found: %s", opts.Session), nil)
	}

	moves, err := j.Moves(ctx, opts.Session)
	if err != nil {
		return out.Fail(ExitCommandError, ErrCodeJournal, "failed to list moves", err)
	}

	result := SessionMoves{Session: *found, Moves: moves}
	return out.Success(result, func(w io.Writer) {
		writeMovesText(w, result)
	})
}

func writeSessionsText(w io.Writer, sessions []journal.SessionRecord) {
	if len(sessions) == 0 {
		fmt.Fprintln(w, "No sessions recorded.")
		return
	}
	for _, s := range sessions {
		fmt.Fprintf(w, "%s  seed=%d queue=%d reserve=%d kinds=%s lang=%s moves=%d\n",
			s.ID, s.Seed, s.QueueCapacity, s.ReserveCapacity, s.Kinds, s.Lang, s.Moves)
	}
}

func writeMovesText(w io.Writer, sm SessionMoves) {
	fmt.Fprintf(w, "Session %s (%d moves)\n", sm.Session.ID, len(sm.Moves))
	for _, m := range sm.Moves {
		action := m.Action
		if action == "" {
			action = "-"
		}
		status := m.Status
		if m.ErrorCode != "" {
			status = m.ErrorCode
		}
		fmt.Fprintf(w, "  #%d  %d %-12s %-20s queue=[%s] reserve=[%s]\n",
			m.Seq, m.Selection, action, status,
			strings.Join(piece.Labels(m.Queue), " "),
			strings.Join(piece.Labels(m.Reserve), " "),
		)
	}
}
