// Package cli implements the dummysheet command.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-tuple-utils/internal/logging"
	"github.com/hasbyte1/go-tuple-utils/sheet"
)

// NewRootCmd returns the dummysheet command. It prints the absolute path of
// the generated workbook on stdout and logs to stderr.
func NewRootCmd() *cobra.Command {
	cfg := sheet.DefaultConfig()
	var logLevel string

	cmd := &cobra.Command{
		Use:          "dummysheet",
		Short:        "Generate a dummy .xlsx workbook filled with random text",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level := logging.LevelFromEnv()
			if logLevel != "" {
				l, err := logging.ParseLevel(logLevel)
				if err != nil {
					return err
				}
				level = l
			}

			g, err := sheet.New(cfg, logging.New(cmd.ErrOrStderr(), level))
			if err != nil {
				return err
			}
			res, err := g.Generate(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Path)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.Dir, "dir", "d", cfg.Dir, "Output directory")
	flags.StringVar(&cfg.SheetName, "sheet", cfg.SheetName, "Worksheet name")
	flags.IntVar(&cfg.MinRows, "min-rows", cfg.MinRows, "Minimum number of data rows")
	flags.IntVar(&cfg.MaxRows, "max-rows", cfg.MaxRows, "Maximum number of data rows")
	flags.IntVarP(&cfg.Columns, "columns", "c", cfg.Columns, "Number of columns")
	flags.IntVar(&cfg.MinCellLength, "min-cell", cfg.MinCellLength, "Minimum cell text length")
	flags.IntVar(&cfg.MaxCellLength, "max-cell", cfg.MaxCellLength, "Maximum cell text length")
	flags.Uint64Var(&cfg.Seed, "seed", 0, "Random seed (0 picks one)")
	flags.StringVar(&logLevel, "log-level", "", "Log level: error, warn, info, debug, trace or no (default $"+logging.EnvLogLevel+" or info)")

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
