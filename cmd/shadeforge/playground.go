package main

import (
	"errors"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/shadeforge/internal/config"
	"github.com/alexisbeaulieu97/shadeforge/internal/stylesheet"
	"github.com/alexisbeaulieu97/shadeforge/internal/theme"
	"github.com/alexisbeaulieu97/shadeforge/internal/tui/playground"
)

type playgroundOptions struct {
	configPath string
	out        string
}

func newPlaygroundCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &playgroundOptions{}

	cmd := &cobra.Command{
		Use:   "playground",
		Short: "Launch the interactive theme playground",
		Long: `Launch the interactive playground: pick primary and neutral seeds from the
presets or type a custom hex color, adjust font and radius, and copy or save
the generated stylesheet.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := rootFlags.newLogger(cmd)
			if err != nil {
				return err
			}

			if !isTerminal(os.Stdin) || !isTerminal(cmd.OutOrStdout()) {
				return newCommandError("launch playground", "checking terminal", errors.New("stdin and stdout must be a terminal"), "Use 'shadeforge css' or 'shadeforge palette' for non-interactive output.")
			}

			settings := theme.DefaultSettings()
			styleOpts := stylesheet.Options{}
			out := opts.out
			if opts.configPath != "" {
				cfg, err := config.ParseConfig(opts.configPath)
				if err != nil {
					return newCommandError("launch playground", "loading theme file", err, "Fix the theme file or start without --config.")
				}
				if settings, err = cfg.Settings(); err != nil {
					return newCommandError("launch playground", "resolving theme settings", err, "Fix the theme file or start without --config.")
				}
				if styleOpts, err = cfg.StylesheetOptions(); err != nil {
					return newCommandError("launch playground", "reading output options", err, "Use output.block theme or root.")
				}
				if out == "" {
					out = cfg.OutputPath()
				}
			}
			if out != "" {
				if out, err = filepath.Abs(out); err != nil {
					return err
				}
			}

			live, err := theme.NewLive(settings)
			if err != nil {
				return newCommandError("launch playground", "deriving initial theme", err, "Check the seed colors.")
			}

			log.Debug("launching playground", map[string]any{"output": out})
			model := playground.New(live, playground.Options{Stylesheet: styleOpts, OutputPath: out})
			if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
				log.Error(err, "playground exited with error")
				return newCommandError("run playground", "running terminal UI", err, "Try a different terminal or use 'shadeforge css'.")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Start from this theme file")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Stylesheet path used by the save key")

	return cmd
}
