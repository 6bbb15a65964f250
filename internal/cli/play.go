package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/nextpiece/internal/config"
	"github.com/roach88/nextpiece/internal/console"
	"github.com/roach88/nextpiece/internal/game"
	"github.com/roach88/nextpiece/internal/journal"
	"github.com/roach88/nextpiece/internal/piece"
)

// PlayOptions holds flags for the play command.
type PlayOptions struct {
	*RootOptions
	QueueCapacity   int
	ReserveCapacity int
	Kinds           string
	Seed            uint64
	Journal         string
}

// NewPlayCommand creates the play command.
func NewPlayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PlayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start an interactive session",
		Long: `Start an interactive next-pieces session on stdin/stdout.

The queue is pre-filled, then the menu loop reads one choice per line:
  1 play, 2 reserve, 3 use reserved, 4 swap top, 5 swap block, 0 quit.

Settings are resolved from defaults, the --config file, NEXTPIECE_*
environment variables and finally these flags. A seed of 0 derives
one from the clock.

Examples:
  nextpiece play
  nextpiece play --seed 42 --journal ./moves.db
  nextpiece play --queue 7 --reserve 2 --kinds IOTLSZJ --lang pt-BR`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.QueueCapacity, "queue", config.DefaultQueueCapacity, "queue capacity")
	cmd.Flags().IntVar(&opts.ReserveCapacity, "reserve", config.DefaultReserveCapacity, "reserve stack capacity")
	cmd.Flags().StringVar(&opts.Kinds, "kinds", piece.DefaultAlphabet, "piece kinds, one character each")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "random seed (0 derives one from the clock)")
	cmd.Flags().StringVar(&opts.Journal, "journal", "", "record moves to this SQLite file")

	return cmd
}

func runPlay(opts *PlayOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := newLogger(opts.RootOptions, cmd.ErrOrStderr())
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	cfg, err := loadConfig(opts.RootOptions)
	if err != nil {
		return out.Fail(ExitCommandError, ErrCodeConfig, "failed to load config", err)
	}
	flags := cmd.Flags()
	if flags.Changed("queue") {
		cfg.QueueCapacity = opts.QueueCapacity
	}
	if flags.Changed("reserve") {
		cfg.ReserveCapacity = opts.ReserveCapacity
	}
	if flags.Changed("kinds") {
		cfg.Kinds = opts.Kinds
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.Seed
	}
	if flags.Changed("journal") {
		cfg.Journal = opts.Journal
	}
	if err := cfg.Validate(); err != nil {
		return out.Fail(ExitCommandError, ErrCodeConfig, "invalid config", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	alphabet, err := cfg.Alphabet()
	if err != nil {
		return out.Fail(ExitCommandError, ErrCodeConfig, "invalid config", err)
	}
	lang, err := config.MatchLang(cfg.Lang)
	if err != nil {
		return out.Fail(ExitCommandError, ErrCodeConfig, "invalid config", err)
	}

	src := piece.NewSource(alphabet, piece.NewRandomPicker(cfg.Seed))
	g := game.NewWithCapacity(cfg.QueueCapacity, cfg.ReserveCapacity, src, game.WithLogger(logger))

	sessionOpts := []console.Option{
		console.WithLanguage(lang),
		console.WithLogger(logger),
	}

	if cfg.Journal != "" {
		j, err := journal.Open(cfg.Journal)
		if err != nil {
			return out.Fail(ExitCommandError, ErrCodeJournal, "failed to open journal", err)
		}
		defer j.Close()

		id, err := j.Begin(ctx, journal.SessionInfo{
			Seed:            cfg.Seed,
			QueueCapacity:   cfg.QueueCapacity,
			ReserveCapacity: cfg.ReserveCapacity,
			Kinds:           cfg.Kinds,
			Lang:            cfg.Lang,
		})
		if err != nil {
			return out.Fail(ExitCommandError, ErrCodeJournal, "failed to start journal session", err)
		}
		logger.Info("journal session started", "session", id, "path", cfg.Journal)
		sessionOpts = append(sessionOpts, console.WithRecorder(j))
	}

	logger.Debug("starting session",
		"queue_capacity", cfg.QueueCapacity,
		"reserve_capacity", cfg.ReserveCapacity,
		"kinds", cfg.Kinds,
		"seed", cfg.Seed,
		"lang", cfg.Lang,
	)

	session := console.NewSession(g, cmd.OutOrStdout(), sessionOpts...)
	if err := session.Run(ctx, cmd.InOrStdin()); err != nil {
		return out.Fail(ExitCommandError, ErrCodeSession, "session aborted", err)
	}
	return nil
}
