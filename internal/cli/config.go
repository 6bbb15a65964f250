package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewConfigCommand creates the config command.
func NewConfigCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Resolve and validate the configuration the play command would start from.

Layers, lowest to highest: built-in defaults, the --config CUE file,
NEXTPIECE_* environment variables, the --lang flag.

Examples:
  nextpiece config
  nextpiece config --config ./nextpiece.cue --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			cfg, err := loadConfig(rootOpts)
			if err != nil {
				return out.Fail(ExitCommandError, ErrCodeConfig, "failed to load config", err)
			}
			if err := cfg.Validate(); err != nil {
				return out.Fail(ExitCommandError, ErrCodeConfig, "invalid config", err)
			}

			return out.Success(cfg, func(w io.Writer) {
				fmt.Fprintf(w, "queue_capacity:   %d\n", cfg.QueueCapacity)
				fmt.Fprintf(w, "reserve_capacity: %d\n", cfg.ReserveCapacity)
				fmt.Fprintf(w, "kinds:            %s\n", cfg.Kinds)
				if cfg.Seed == 0 {
					fmt.Fprintln(w, "seed:             0 (from clock)")
				} else {
					fmt.Fprintf(w, "seed:             %d\n", cfg.Seed)
				}
				fmt.Fprintf(w, "lang:             %s\n", cfg.Lang)
				if cfg.Journal != "" {
					fmt.Fprintf(w, "journal:          %s\n", cfg.Journal)
				}
			})
		},
	}
}
