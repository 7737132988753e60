package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/shadeforge/internal/logger"
)

type rootFlags struct {
	verbose   bool
	logFormat string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "shadeforge",
		Short:         "Shadeforge derives color ramps and CSS theme variables from seed colors",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch logger.Format(flags.logFormat) {
			case logger.FormatConsole, logger.FormatJSON:
				return nil
			default:
				return fmt.Errorf("unknown log format %q (want console or json)", flags.logFormat)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", string(logger.FormatConsole), "Log format: console or json")

	cmd.AddCommand(newPaletteCmd(flags))
	cmd.AddCommand(newCSSCmd(flags))
	cmd.AddCommand(newPresetsCmd())
	cmd.AddCommand(newPlaygroundCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger builds the command logger. Logs go to the command's error
// stream so generated output on stdout stays clean.
func (f *rootFlags) newLogger(cmd *cobra.Command) (*logger.Logger, error) {
	level := "info"
	if f.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{
		Level:  level,
		Format: logger.Format(f.logFormat),
		Writer: cmd.ErrOrStderr(),
	})
}
